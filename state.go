package nested

import (
	"fmt"
	"io"

	"github.com/mfridman/nested/pkg/argparse"
)

// State is what a command handler receives. Use [GetFlag] to read flag values by name.
type State struct {
	// Argv is the parsed view of the command line.
	Argv *argparse.Argv
	// Args contains the positional arguments that follow the command path.
	Args []string

	// Standard I/O streams.
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	command *Command
}

// Command returns the command being run.
func (s *State) Command() *Command { return s.command }

// Param returns the named positional parameter, or "" if it was not given.
func (s *State) Param(name string) string {
	v, _ := s.Argv.Param(name)
	return v
}

// GetFlag retrieves a flag value by name, with type inference. Example usage:
//
//	verbose := GetFlag[bool](state, "verbose")
//	count := GetFlag[float64](state, "count")
//	name := GetFlag[string](state, "name")
//
// A flag that was not given and has no default yields the zero value of T. If the recorded value
// is not a T, GetFlag panics: asking for the wrong type is a programming error and should fail
// loudly.
func GetFlag[T any](s *State, name string) T {
	var zero T
	v, ok := s.Argv.Get(name)
	if !ok {
		return zero
	}
	t, ok := v.(T)
	if !ok {
		panic(fmt.Sprintf("internal error: type mismatch for flag %q: recorded %T, requested %T", name, v, zero))
	}
	return t
}
