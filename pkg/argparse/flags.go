package argparse

import (
	"flag"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/mfridman/xflag"
)

// value writes parsed flag values into an Argv under a canonical key, so that every alias of an
// option lands on the same key.
type value struct {
	argv   *Argv
	key    string
	kind   Kind
	negate bool
}

var _ flag.Value = (*value)(nil)

func (v *value) String() string { return "" }

func (v *value) IsBoolFlag() bool { return v.kind == Bool || v.kind == Count }

func (v *value) Set(s string) error {
	switch v.kind {
	case Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		if v.negate {
			b = !b
		}
		v.argv.Set(v.key, b)
	case Count:
		n, _ := v.argv.values.Get(v.key)
		count, _ := n.(int)
		v.argv.Set(v.key, count+1)
	case Number:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		v.argv.Set(v.key, f)
	default:
		v.argv.Set(v.key, s)
	}
	return nil
}

// parse freezes the options declared so far into a flag set and parses args with it.
func (c *Context) parse() (*Argv, error) {
	argv := NewArgv(c.program)

	// Everything after -- is positional.
	toParse, rest := c.args, []string(nil)
	if i := slices.Index(c.args, "--"); i >= 0 {
		toParse, rest = c.args[:i], c.args[i+1:]
	}

	fset := flag.NewFlagSet(c.program, flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	fset.Usage = func() {}

	define := func(name string, v *value) {
		if name != "" && fset.Lookup(name) == nil {
			fset.Var(v, name, "")
		}
	}
	known := c.known()
	names := slices.Sorted(maps.Keys(known))
	for _, name := range names {
		opt := known[name]
		v := &value{argv: argv, key: name, kind: opt.Type}
		define(name, v)
		for _, alias := range opt.Alias {
			define(alias, v)
		}
	}
	// Negations go in after every declared name so an option literally called "no-x" wins.
	for _, name := range names {
		if known[name].Type == Bool {
			define("no-"+name, &value{argv: argv, key: name, kind: Bool, negate: true})
		}
	}
	for i, arg := range toParse {
		name, hasValue, ok := flagName(arg)
		if !ok || fset.Lookup(name) != nil {
			continue
		}
		// Only booleans negate. --no-x for a declared non-boolean x is its own unknown flag.
		if key, found := strings.CutPrefix(name, "no-"); found && key != "" {
			if f := fset.Lookup(key); f == nil {
				define(name, &value{argv: argv, key: key, kind: Bool, negate: true})
				continue
			} else if v, ok := f.Value.(*value); ok && v.kind == Bool {
				define(name, &value{argv: argv, key: v.key, kind: Bool, negate: true})
				continue
			}
		}
		kind := Bool
		if hasValue || (i+1 < len(toParse) && !strings.HasPrefix(toParse[i+1], "-")) {
			kind = String
		}
		define(name, &value{argv: argv, key: name, kind: kind})
	}

	if err := xflag.ParseToEnd(fset, toParse); err != nil {
		return argv, err
	}
	argv.Positional = append(slices.Clone(fset.Args()), rest...)

	for _, name := range names {
		if opt := known[name]; opt.Default != nil && !argv.Has(name) {
			argv.Set(name, opt.Default)
		}
	}
	return argv, nil
}

// flagName extracts the flag name from a -name, --name or --name=value token.
func flagName(arg string) (name string, hasValue, ok bool) {
	if len(arg) < 2 || arg[0] != '-' || arg == "--" {
		return "", false, false
	}
	name = strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	if name == "" || name[0] == '-' || name[0] == '=' {
		return "", false, false
	}
	name, _, hasValue = strings.Cut(name, "=")
	return name, hasValue, true
}

func (c *Context) missingDemanded(argv *Argv) error {
	var missing []string
	for _, name := range c.optionNames() {
		if c.options[name].Demand && !argv.Has(name) {
			missing = append(missing, name)
		}
	}
	switch len(missing) {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("Missing required argument: %s", missing[0])
	default:
		return fmt.Errorf("Missing required arguments: %s", strings.Join(missing, ", "))
	}
}
