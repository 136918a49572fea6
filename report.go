package nested

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"

	"github.com/mfridman/nested/pkg/argparse"
)

var alert = color.New(color.FgRed)

// runContext is threaded through every node for one run of a tree.
type runContext struct {
	ctx    context.Context
	parser Parser

	stdin          io.Reader
	stdout, stderr io.Writer

	handlers errgroup.Group

	mu       sync.Mutex
	reported bool
}

// reportError is the parser failure callback shared by every level. The parser evaluates each
// level in turn and hands a failure to every enclosing level on the way out, so only the first
// call per run prints: the help screen of the level that failed, then the message.
func (rc *runContext) reportError(err error) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.reported {
		return
	}
	rc.reported = true

	rc.parser.ShowHelp(rc.stderr)
	fmt.Fprintln(rc.stderr)
	alert.Fprintln(rc.stderr, err.Error())
	var e *Error
	if errors.As(err, &e) && len(e.Suggestions) > 0 {
		fmt.Fprintf(rc.stderr, "Did you mean one of these?\n\t%s\n", strings.Join(e.Suggestions, "\n\t"))
	}
}

// dispatch runs the command's handler in its own goroutine. Errors and panics are reported
// like validation failures and surface from the run's Wait.
func (rc *runContext) dispatch(cmd *Command, argv *argparse.Argv) {
	s := &State{
		Argv:    argv,
		Args:    argv.Positional[min(len(cmd.Path())-1, len(argv.Positional)):],
		Stdin:   rc.stdin,
		Stdout:  rc.stdout,
		Stderr:  rc.stderr,
		command: cmd,
	}
	rc.handlers.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = &Error{Code: ErrHandler, err: fmt.Errorf("handler panicked: %v", r)}
			}
			if err != nil {
				rc.reportError(err)
			}
		}()
		if err := cmd.options.Handler(rc.ctx, s); err != nil {
			return &Error{Code: ErrHandler, err: err}
		}
		return nil
	})
}
