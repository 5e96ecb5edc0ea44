// Package config holds the run parameters of the cloudalign CLI.
//
// A Config is a plain value: it is loaded from an optional TOML file,
// overridden by command-line flags and passed by value into the commands.
// Nothing in this package keeps process-wide state.
//
// Example file:
//
//	input  = "./data/armadillo.xyz"
//	output = "./data/output.xyz"
//	flip   = true
//	method = "svd"
//
//	[rotate]
//	x = 0
//	y = 90
//	z = 0
//	about_origin = false
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/cloudalign/align"
	"github.com/katalvlaran/cloudalign/transform"
)

var (
	// ErrMissingInput indicates no input file was configured.
	ErrMissingInput = errors.New("config: input file is required")

	// ErrMissingOutput indicates no output file was configured.
	ErrMissingOutput = errors.New("config: output file is required")

	// ErrUnknownKey indicates a key in the TOML file that Config does not define.
	ErrUnknownKey = errors.New("config: unknown key")
)

// Rotation holds manual rotation angles in degrees.
type Rotation struct {
	X           float64 `toml:"x"`
	Y           float64 `toml:"y"`
	Z           float64 `toml:"z"`
	AboutOrigin bool    `toml:"about_origin"`
}

// Config is the full parameter set of one CLI run.
type Config struct {
	Input          string   `toml:"input"`
	Output         string   `toml:"output"`
	FlipUpsideDown bool     `toml:"flip"`
	Method         string   `toml:"method"`
	Rotate         Rotation `toml:"rotate"`
	Verbose        bool     `toml:"verbose"`
}

// Default returns the configuration used when neither file nor flags set a value.
func Default() Config {
	return Config{Method: align.DefaultMethod.String()}
}

// Load reads a TOML file over Default().
// Keys Config does not define are rejected so typos do not pass silently.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("config: %s: %s: %w", path, strings.Join(keys, ", "), ErrUnknownKey)
	}

	return cfg, nil
}

// Angles converts the rotation section to transform.Angles.
func (c Config) Angles() transform.Angles {
	return transform.Angles{X: c.Rotate.X, Y: c.Rotate.Y, Z: c.Rotate.Z}
}

// AlignMethod parses Method.
func (c Config) AlignMethod() (align.Method, error) {
	return align.ParseMethod(c.Method)
}

// Validate checks that the file paths are set and the method is known.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Input) == "" {
		errs = append(errs, ErrMissingInput)
	}
	if strings.TrimSpace(c.Output) == "" {
		errs = append(errs, ErrMissingOutput)
	}
	if _, err := c.AlignMethod(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
