package nested

import (
	"strings"

	"github.com/mfridman/nested/pkg/argparse"
)

// Command is a leaf node: it validates its flags and parameters and runs a handler.
type Command struct {
	base
}

var _ Node = (*Command)(nil)

// NewCommand returns a command. An empty name defaults to [DefaultName].
func NewCommand(name, description string, opts *Options) *Command {
	return &Command{base: newBase(name, description, opts)}
}

// Params returns the positional parameter grammar.
func (c *Command) Params() string { return c.options.Params }

func (c *Command) run(rc *runContext) (*argparse.Argv, error) {
	p := rc.parser
	c.configure(p)

	// The parser's own strictness can't be used: setup hooks may declare flags late, and negated
	// booleans (--no-x) must be accepted.
	p.Check(func(argv *argparse.Argv) error {
		if err := checkUnknownArguments(p, argv); err != nil {
			return err
		}
		if c.options.Params != "" {
			return parseParams(c.options.Params, argv, c.Path())
		}
		return nil
	})
	p.Fail(rc.reportError)

	usage := "Usage: " + strings.Join(c.Path(), " ") + " [options]"
	if c.options.Params != "" {
		usage += " " + c.options.Params
	}
	p.Usage(usage)
	p.Help("help")

	argv, err := p.Argv()
	if err != nil {
		return argv, err
	}
	if c.options.Handler != nil {
		rc.dispatch(c, argv)
	}
	return argv, nil
}
