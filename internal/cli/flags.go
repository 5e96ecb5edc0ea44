package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// flipValue is a boolean flag that takes an explicit value, so the
// historical "--flip 1" spelling parses. "1", "true", "0", "false" and the
// other strconv.ParseBool forms are accepted. A bare --flip means no flip.
type flipValue struct {
	v *bool
}

var _ pflag.Value = flipValue{}

func newFlipValue(p *bool) flipValue { return flipValue{v: p} }

func (f flipValue) String() string {
	if f.v == nil || !*f.v {
		return "0"
	}
	return "1"
}

func (f flipValue) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("want 0 or 1, got %q", s)
	}
	*f.v = b
	return nil
}

func (f flipValue) Type() string { return "0|1" }

// flipNoValue is the value of a bare --flip.
const flipNoValue = "0"

// addFlipFlag registers --flip on fs.
func addFlipFlag(fs *pflag.FlagSet, p *bool) {
	fs.Var(newFlipValue(p), "flip", "flip the cloud upside down (1 or 0)")
	fs.Lookup("flip").NoOptDefVal = flipNoValue
}

// joinFlipArgs rewrites "--flip V" as "--flip=V" when V is not itself a flag.
// pflag never consumes the next argument of a flag with NoOptDefVal, so
// without this "--flip 1" would leave a stray "1" behind.
func joinFlipArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			return append(out, args[i:]...)
		}
		if a == "--flip" && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, a+"="+args[i+1])
			i++
			continue
		}
		out = append(out, a)
	}
	return out
}
