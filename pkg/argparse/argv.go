package argparse

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map"
)

// Argv is the parsed view of the command line.
type Argv struct {
	// Program is the program name ("$0").
	Program string
	// Positional holds the non-flag arguments in order ("_"), including command names.
	Positional []string
	// Params holds named positional parameters extracted by a command's grammar. A parameter that
	// was declared but not given has no entry.
	Params map[string]string

	values *orderedmap.OrderedMap
}

// NewArgv returns an empty view with the given program name and positional arguments.
func NewArgv(program string, positional ...string) *Argv {
	return &Argv{
		Program:    program,
		Positional: positional,
		values:     orderedmap.New(),
	}
}

// Set records a flag value. Setting an existing key keeps its original position.
func (a *Argv) Set(key string, value any) {
	a.values.Set(key, value)
}

// Get returns the value recorded for key.
func (a *Argv) Get(key string) (any, bool) {
	return a.values.Get(key)
}

// Has reports whether key was recorded.
func (a *Argv) Has(key string) bool {
	_, ok := a.values.Get(key)
	return ok
}

// Keys returns the recorded flag keys in the order they were first seen.
func (a *Argv) Keys() []string {
	keys := make([]string, 0, a.values.Len())
	for pair := a.values.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key.(string))
	}
	return keys
}

// Bool returns the value of key as a bool. Missing or non-bool values are false.
func (a *Argv) Bool(key string) bool {
	v, _ := a.Get(key)
	b, _ := v.(bool)
	return b
}

// String returns the value of key formatted as a string, or "" if missing.
func (a *Argv) String(key string) string {
	v, ok := a.Get(key)
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Param returns the named positional parameter.
func (a *Argv) Param(name string) (string, bool) {
	v, ok := a.Params[name]
	return v, ok
}

// Arg returns the positional argument at i, or "" if there is none.
func (a *Argv) Arg(i int) string {
	if i < 0 || i >= len(a.Positional) {
		return ""
	}
	return a.Positional[i]
}
