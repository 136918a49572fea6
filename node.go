package nested

import (
	"context"

	"github.com/mfridman/nested/pkg/argparse"
)

const (
	// RootName is the name of the category returned by [NewApp].
	RootName = "$"
	// DefaultName is used when a node is created without a name.
	DefaultName = "$0"
)

// Node is a category or a command in the tree.
type Node interface {
	Name() string
	Description() string
	// Path is the list of names from the root to this node, inclusive.
	Path() []string

	run(rc *runContext) (*argparse.Argv, error)
	setParent(c *Category)
}

// HandlerFunc is called with the validated state of the command that was invoked.
type HandlerFunc func(ctx context.Context, s *State) error

// Options configures a node. The zero value is valid.
type Options struct {
	// Setup is called with the parser before Flags and Examples are applied at this level.
	// It may declare additional flags; they are honored by unknown-argument detection.
	Setup func(p Parser)
	// Flags declares flags for this level.
	Flags map[string]argparse.Option
	// Examples are shown in help.
	Examples []argparse.Example

	// Params is the positional parameter grammar of a command, e.g. "<id> [name]". Ignored on
	// categories.
	Params string
	// Handler runs after a command validates. Ignored on categories.
	Handler HandlerFunc
}

// base holds what categories and commands have in common.
type base struct {
	name        string
	description string
	options     Options
	// parent is the owning category. It is only used to compute paths.
	parent *Category
}

func newBase(name, description string, opts *Options) base {
	if name == "" {
		name = DefaultName
	}
	b := base{name: name, description: description}
	if opts != nil {
		b.options = *opts
	}
	return b
}

func (b *base) Name() string        { return b.name }
func (b *base) Description() string { return b.description }

func (b *base) Path() []string {
	if b.parent == nil {
		return []string{b.name}
	}
	return append(b.parent.Path(), b.name)
}

func (b *base) setParent(c *Category) { b.parent = c }

// configure applies the hooks shared by both node kinds, in order: setup, flags, examples.
func (b *base) configure(p Parser) {
	if b.options.Setup != nil {
		b.options.Setup(p)
	}
	if len(b.options.Flags) > 0 {
		p.Options(b.options.Flags)
	}
	for _, ex := range b.options.Examples {
		p.Example(ex.Command, ex.Description)
	}
}
