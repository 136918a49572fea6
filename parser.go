package nested

import (
	"io"

	"github.com/mfridman/nested/pkg/argparse"
)

// Parser is the flag-parsing and help-rendering collaborator a tree runs against. The same
// Parser serves every level of one run. *argparse.Context implements it.
type Parser interface {
	Command(name, description string, run func() (*argparse.Argv, error))
	Options(opts map[string]argparse.Option)
	Example(command, description string)
	Usage(text string)
	Check(fn func(*argparse.Argv) error)
	Demand(n int, msg string)
	Fail(fn func(error))
	Help(flag string)
	// Argv evaluates the arguments, dispatching to a registered command when one is named.
	Argv() (*argparse.Argv, error)

	ShowHelp(w io.Writer)
	SetOutput(w io.Writer)

	Aliases() map[string][]string
	Descriptions() map[string]string
	Demanded() map[string]bool
}

var _ Parser = (*argparse.Context)(nil)
