package nested

import "fmt"

// ErrorCode identifies the kind of failure reported while running a tree.
type ErrorCode int

const (
	// ErrInvalidCommand means no command name was given where one was required.
	ErrInvalidCommand ErrorCode = iota + 1
	// ErrUnknownCommand means a category has no child with the given name.
	ErrUnknownCommand
	// ErrUnknownArgument means one or more flags were not declared.
	ErrUnknownArgument
	// ErrParamOrder means a parameter grammar lists a required parameter after an optional one.
	ErrParamOrder
	// ErrMissingParam means a required parameter was not given.
	ErrMissingParam
	// ErrHandler wraps an error returned (or a panic raised) by a command handler.
	ErrHandler
)

func (c ErrorCode) String() string {
	switch c {
	case ErrInvalidCommand:
		return "invalid command"
	case ErrUnknownCommand:
		return "unknown command"
	case ErrUnknownArgument:
		return "unknown argument"
	case ErrParamOrder:
		return "parameter order"
	case ErrMissingParam:
		return "missing parameter"
	case ErrHandler:
		return "handler"
	default:
		return "unknown error"
	}
}

// Error is a failure with a user-facing message.
type Error struct {
	Code ErrorCode
	// Suggestions are names the user may have meant. Only set for ErrUnknownCommand.
	Suggestions []string

	msg string
	err error
}

func newError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.msg != "" {
		return e.msg
	}
	if e.err != nil {
		return e.err.Error()
	}
	return e.Code.String() + ": <nil>"
}

func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an *Error with the same code, so callers can match a kind with
// errors.Is(err, &nested.Error{Code: nested.ErrMissingParam}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.msg == "" && t.err == nil && t.Code == e.Code
}
