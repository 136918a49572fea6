package nested

import (
	"maps"
	"slices"
	"strings"

	"github.com/mfridman/nested/pkg/argparse"
	"github.com/mfridman/nested/pkg/suggest"
)

const invalidCommandMsg = "Please enter a valid command."

// Category is an interior node: a named group of commands and categories.
type Category struct {
	base
	commands map[string]Node
}

var _ Node = (*Category)(nil)

// NewApp returns the root category of an application.
func NewApp(opts *Options) *Category {
	return NewCategory(RootName, "", opts)
}

// NewCategory returns a category. An empty name defaults to [DefaultName].
func NewCategory(name, description string, opts *Options) *Category {
	return &Category{
		base:     newBase(name, description, opts),
		commands: make(map[string]Node),
	}
}

// Command attaches node as a child and returns c for chaining. A child already registered under
// the same name is replaced.
func (c *Category) Command(node Node) *Category {
	c.commands[node.Name()] = node
	node.setParent(c)
	return c
}

// Lookup returns the child registered under name.
func (c *Category) Lookup(name string) (Node, bool) {
	n, ok := c.commands[name]
	return n, ok
}

// Names returns the names of all children, sorted.
func (c *Category) Names() []string {
	return slices.Sorted(maps.Keys(c.commands))
}

func (c *Category) run(rc *runContext) (*argparse.Argv, error) {
	p := rc.parser
	for _, child := range c.commands {
		p.Command(child.Name(), child.Description(), func() (*argparse.Argv, error) {
			return child.run(rc)
		})
	}
	c.configure(p)

	path := c.Path()
	p.Usage("Usage: " + strings.Join(path, " ") + " <command>")
	p.Check(func(argv *argparse.Argv) error {
		name := argv.Arg(len(path) - 1)
		if name == "" {
			return newError(ErrInvalidCommand, invalidCommandMsg)
		}
		if _, ok := c.commands[name]; !ok {
			err := newError(ErrUnknownCommand, "No such command `%s`",
				strings.Join(append(slices.Clone(path[1:]), name), " "))
			err.Suggestions = suggest.Names(name, c.Names(), 3)
			return err
		}
		return nil
	})
	p.Demand(len(path), invalidCommandMsg)
	p.Fail(rc.reportError)
	p.Help("help")

	return p.Argv()
}
