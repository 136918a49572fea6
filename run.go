package nested

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/mfridman/nested/pkg/argparse"
)

// RunOptions specifies options for running a tree.
type RunOptions struct {
	// Stdin, Stdout, and Stderr are the standard input, output, and error streams. If any of these
	// are nil, the default streams ([os.Stdin], [os.Stdout], and [os.Stderr]) are used. Requested
	// help goes to Stdout; failures are reported on Stderr.
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	// Program is the program name shown in place of "$0". Defaults to the base name of os.Args[0].
	Program string

	// NewParser returns the parser the tree runs against. Defaults to [argparse.New].
	NewParser func(program string, args []string) Parser
}

// Result is the outcome of [Run].
type Result struct {
	// Argv is the parsed view of the level that ran last.
	Argv *argparse.Argv

	rc *runContext
}

// Wait blocks until the handler of the invoked command, if any, has returned and returns its
// error. The error has already been reported.
func (r *Result) Wait() error {
	return r.rc.handlers.Wait()
}

// Run resolves the command named by args, validates it and starts its handler, without waiting
// for the handler to finish. A returned error has already been reported to the user along with
// the relevant help screen. A help request is written to Stdout and returned as
// [argparse.ErrHelp].
//
// The options parameter may be nil, in which case default values are used.
func Run(ctx context.Context, root Node, args []string, options *RunOptions) (*Result, error) {
	if root == nil {
		return nil, errors.New("failed to run: root node is nil")
	}
	options = checkAndSetRunOptions(options)
	p := options.NewParser(options.Program, args)
	p.SetOutput(options.Stdout)

	rc := &runContext{
		ctx:    ctx,
		parser: p,
		stdin:  options.Stdin,
		stdout: options.Stdout,
		stderr: options.Stderr,
	}
	argv, err := root.run(rc)
	return &Result{Argv: argv, rc: rc}, err
}

// RunAndWait runs the tree and waits for the invoked handler. A convenience function that
// combines [Run] and [Result.Wait].
func RunAndWait(ctx context.Context, root Node, args []string, options *RunOptions) error {
	res, err := Run(ctx, root, args, options)
	if err != nil {
		return err
	}
	return res.Wait()
}

func checkAndSetRunOptions(opt *RunOptions) *RunOptions {
	if opt == nil {
		opt = &RunOptions{}
	} else {
		clone := *opt
		opt = &clone
	}
	if opt.Stdin == nil {
		opt.Stdin = os.Stdin
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	if opt.Program == "" {
		opt.Program = filepath.Base(os.Args[0])
	}
	if opt.NewParser == nil {
		opt.NewParser = func(program string, args []string) Parser {
			return argparse.New(program, args)
		}
	}
	return opt
}
