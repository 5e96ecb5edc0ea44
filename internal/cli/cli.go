// Package cli implements the cloudalign command-line interface.
//
// The CLI reads a point cloud from a text file (one "x y z" point per line),
// transforms it and writes the result to another file. It is built on cobra
// and logs through charmbracelet/log.
//
// # Commands
//
//   - align: rotate the cloud about its centroid so its dominant axis is vertical
//   - rotate: rotate the cloud by explicit X/Y/Z angles in degrees
//
// # Configuration
//
// Every flag can also come from a TOML file passed with --config; flags given
// on the command line win over the file.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cloudalign/internal/config"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// successMessage is printed on stdout after the output file is written.
const successMessage = "Point Cloud was successfully written to the specified file."

// app is the state shared by the root command and its subcommands.
type app struct {
	stderr     io.Writer
	verbose    bool
	configPath string
	cfg        config.Config
}

// NewRootCommand builds the command tree. Help and results go to stdout,
// logs to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stderr: stderr, cfg: config.Default()}

	root := &cobra.Command{
		Use:   "cloudalign",
		Short: "cloudalign re-orients 3D point clouds",
		Long: `cloudalign reads a point cloud (one "x y z" point per line), aligns its
principal axis with the vertical or rotates it by explicit angles, and writes
the result in the same format.`,
		Example:           "  cloudalign align --input ./data/armadillo.xyz --output ./data/output.xyz --flip 1",
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(fmt.Sprintf("cloudalign %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "TOML file with default parameters")

	root.AddCommand(newAlignCmd(a))
	root.AddCommand(newRotateCmd(a))

	return root
}

// setup loads the config file and attaches the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	level := charmlog.InfoLevel
	if a.verbose || a.cfg.Verbose {
		level = charmlog.DebugLevel
	}
	logger := newLogger(a.stderr, level)
	if a.configPath != "" {
		logger.Debug("loaded config", "path", a.configPath)
	}
	cmd.SetContext(withLogger(cmd.Context(), logger))

	return nil
}

// Execute runs the CLI with os.Args.
func Execute(ctx context.Context) error {
	return execute(ctx, NewRootCommand(os.Stdout, os.Stderr), os.Args[1:])
}

func execute(ctx context.Context, root *cobra.Command, args []string) error {
	root.SetArgs(joinFlipArgs(args))
	return root.ExecuteContext(ctx)
}
