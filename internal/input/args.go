package input

import (
	"strings"

	"github.com/spf13/pflag"
)

// Reserved flag names never become payload fields.
const (
	FlagInput  = "input"
	FlagFormat = "format"
)

// SplitFieldArgs parses args against flags and returns every argument that is
// not a registered flag as a payload field, in the order given.
//
// Registered flags (including inherited ones merged into flags) are handed to
// pflag as usual, so their values and positional arguments end up in flags.
// Any other "--key=value" becomes a field; "--key" alone becomes the string
// "true". The reserved names input and format are dropped when the command
// does not register them. Arguments after "--" are left to pflag.
func SplitFieldArgs(flags *pflag.FlagSet, args []string) ([]Field, error) {
	var (
		known  []string
		fields []Field
	)

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			known = append(known, args[i:]...)
			break
		}
		if !strings.HasPrefix(arg, "--") {
			known = append(known, arg)
			continue
		}

		name, value, hasValue := strings.Cut(arg[2:], "=")
		if name == "" {
			known = append(known, arg)
			continue
		}
		if f := flags.Lookup(name); f != nil {
			known = append(known, arg)
			if !hasValue && f.NoOptDefVal == "" && i+1 < len(args) {
				i++
				known = append(known, args[i])
			}
			continue
		}
		if name == FlagInput || name == FlagFormat {
			continue
		}

		if !hasValue {
			value = "true"
		}
		fields = append(fields, Field{Key: name, Value: value})
	}

	if err := flags.Parse(known); err != nil {
		return nil, err
	}
	return fields, nil
}
