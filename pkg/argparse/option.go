package argparse

import "fmt"

// Kind is the value type of an option.
type Kind int

const (
	// Bool options take no value; --no-<name> records false.
	Bool Kind = iota
	String
	Number
	// Count options record how many times they were given.
	Count
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "boolean"
	case String:
		return "string"
	case Number:
		return "number"
	case Count:
		return "count"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Option declares a flag.
type Option struct {
	// Alias lists alternative names, e.g. "v" for "verbose".
	Alias []string
	// Describe is shown in help.
	Describe string
	Type     Kind
	// Default is recorded when the flag is not given. Nil means no default.
	Default any
	// Demand makes the flag required.
	Demand bool
}

// Example is a usage example shown in help. "$0" in Command is replaced by the program name.
type Example struct {
	Command     string
	Description string
}
