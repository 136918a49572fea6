package argparse

import (
	"errors"
	"flag"
	"io"
	"maps"
	"os"
	"slices"
)

// ErrHelp is returned by [Context.Argv] when the help flag was given and help was rendered.
var ErrHelp = flag.ErrHelp

type subCommand struct {
	description string
	run         func() (*Argv, error)
}

type demand struct {
	count int
	msg   string
}

// Context parses one command line, one level of a command tree at a time.
type Context struct {
	program string
	args    []string
	out     io.Writer
	level   int

	// inherited holds options declared by enclosing levels. They stay parseable and known
	// below the level that declared them.
	inherited map[string]Option

	// Per-level configuration, cleared when control passes to a sub-command.
	options  map[string]Option
	commands map[string]subCommand
	examples []Example
	usage    string
	checks   []func(*Argv) error
	demand   *demand
	fail     func(error)
	helpFlag string
}

// New returns a Context for args, typically os.Args[1:]. Help requested with the help flag is
// written to os.Stdout unless changed with [Context.SetOutput].
func New(program string, args []string) *Context {
	c := &Context{
		program:   program,
		args:      args,
		out:       os.Stdout,
		inherited: make(map[string]Option),
	}
	c.reset()
	return c
}

func (c *Context) reset() {
	c.options = make(map[string]Option)
	c.commands = make(map[string]subCommand)
	c.examples = nil
	c.usage = ""
	c.checks = nil
	c.demand = nil
	c.fail = nil
	c.helpFlag = ""
}

// SetOutput sets where requested help is written.
func (c *Context) SetOutput(w io.Writer) {
	c.out = w
}

// Level is the number of sub-commands entered so far. It is also the index in
// [Argv.Positional] consulted when dispatching.
func (c *Context) Level() int {
	return c.level
}

// Command registers a sub-command. If the positional argument at the current level equals name
// when arguments are evaluated, run is called and its result returned.
func (c *Context) Command(name, description string, run func() (*Argv, error)) {
	c.commands[name] = subCommand{description: description, run: run}
}

// Options declares flags, merging with those already declared.
func (c *Context) Options(opts map[string]Option) {
	maps.Copy(c.options, opts)
}

// Example adds a usage example.
func (c *Context) Example(command, description string) {
	c.examples = append(c.examples, Example{Command: command, Description: description})
}

// Usage sets the usage line. "$0" is replaced by the program name.
func (c *Context) Usage(text string) {
	c.usage = text
}

// Check installs a validation function. Checks run in install order before the positional demand
// and demanded options are enforced; the first error wins.
func (c *Context) Check(fn func(*Argv) error) {
	c.checks = append(c.checks, fn)
}

// Demand requires at least n positional arguments, failing with msg otherwise.
func (c *Context) Demand(n int, msg string) {
	c.demand = &demand{count: n, msg: msg}
}

// Fail installs the function called with any evaluation error other than [ErrHelp].
func (c *Context) Fail(fn func(error)) {
	c.fail = fn
}

// Help enables a boolean help flag with the given name.
func (c *Context) Help(name string) {
	c.helpFlag = name
	c.options[name] = Option{Describe: "Show help", Type: Bool}
}

// Argv evaluates the arguments against the current configuration. Errors are passed to the
// failure function, if any, before being returned.
func (c *Context) Argv() (*Argv, error) {
	argv, err := c.evaluate()
	if err != nil && !errors.Is(err, ErrHelp) && c.fail != nil {
		c.fail(err)
	}
	return argv, err
}

func (c *Context) evaluate() (*Argv, error) {
	argv, err := c.parse()
	if err != nil {
		return argv, err
	}
	if cmd, ok := c.commands[argv.Arg(c.level)]; ok {
		c.inherit()
		c.reset()
		c.level++
		return cmd.run()
	}
	if c.helpFlag != "" && argv.Bool(c.helpFlag) {
		c.ShowHelp(c.out)
		return argv, ErrHelp
	}
	for _, check := range c.checks {
		if err := check(argv); err != nil {
			return argv, err
		}
	}
	if c.demand != nil && len(argv.Positional) < c.demand.count {
		msg := c.demand.msg
		if msg == "" {
			msg = "Not enough non-option arguments"
		}
		return argv, errors.New(msg)
	}
	return argv, c.missingDemanded(argv)
}

// inherit carries the current level's options down to the sub-command about to run. The help
// flag is left out since every level declares its own, and a demand is only enforced at the
// level that declared it.
func (c *Context) inherit() {
	for name, opt := range c.options {
		if name == c.helpFlag {
			continue
		}
		opt.Demand = false
		c.inherited[name] = opt
	}
}

// known merges inherited options with the current level's, the current level winning.
func (c *Context) known() map[string]Option {
	out := maps.Clone(c.inherited)
	maps.Copy(out, c.options)
	return out
}

// Aliases maps each known option, declared here or by an enclosing level, to its aliases.
func (c *Context) Aliases() map[string][]string {
	known := c.known()
	out := make(map[string][]string, len(known))
	for name, opt := range known {
		out[name] = slices.Clone(opt.Alias)
	}
	return out
}

// Descriptions maps each known option, declared here or by an enclosing level, to its
// description, which may be empty.
func (c *Context) Descriptions() map[string]string {
	known := c.known()
	out := make(map[string]string, len(known))
	for name, opt := range known {
		out[name] = opt.Describe
	}
	return out
}

// Demanded is the set of options required at the current level.
func (c *Context) Demanded() map[string]bool {
	out := make(map[string]bool)
	for name, opt := range c.options {
		if opt.Demand {
			out[name] = true
		}
	}
	return out
}

func (c *Context) optionNames() []string {
	return slices.Sorted(maps.Keys(c.options))
}
