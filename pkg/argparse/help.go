package argparse

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/mfridman/nested/pkg/textutil"
)

const helpWidth = 80

// HelpText renders the help screen for the current level.
func (c *Context) HelpText() string {
	var b strings.Builder

	if c.usage != "" {
		b.WriteString(c.expand(c.usage))
		b.WriteString("\n\n")
	}

	if len(c.commands) > 0 {
		b.WriteString("Commands:\n")
		var rows [][2]string
		for _, name := range slices.Sorted(maps.Keys(c.commands)) {
			rows = append(rows, [2]string{name, c.commands[name].description})
		}
		textutil.Columns(&b, rows, helpWidth)
		b.WriteString("\n")
	}

	if len(c.options) > 0 {
		b.WriteString("Options:\n")
		var rows [][2]string
		for _, name := range c.optionNames() {
			opt := c.options[name]
			rows = append(rows, [2]string{flagList(name, opt.Alias), describe(opt)})
		}
		textutil.Columns(&b, rows, helpWidth)
		b.WriteString("\n")
	}

	if len(c.examples) > 0 {
		b.WriteString("Examples:\n")
		var rows [][2]string
		for _, ex := range c.examples {
			rows = append(rows, [2]string{c.expand(ex.Command), ex.Description})
		}
		textutil.Columns(&b, rows, helpWidth)
	}

	return strings.TrimRight(b.String(), "\n")
}

// ShowHelp writes the help screen to w.
func (c *Context) ShowHelp(w io.Writer) {
	fmt.Fprintln(w, c.HelpText())
}

func (c *Context) expand(s string) string {
	return strings.ReplaceAll(s, "$0", c.program)
}

func flagList(name string, aliases []string) string {
	names := append([]string{name}, aliases...)
	slices.SortStableFunc(names, func(a, b string) int { return len(a) - len(b) })
	for i, n := range names {
		if len(n) == 1 {
			names[i] = "-" + n
		} else {
			names[i] = "--" + n
		}
	}
	return strings.Join(names, ", ")
}

func describe(opt Option) string {
	parts := []string{opt.Describe, "[" + opt.Type.String() + "]"}
	if opt.Demand {
		parts = append(parts, "[required]")
	}
	if opt.Default != nil {
		parts = append(parts, fmt.Sprintf("[default: %v]", opt.Default))
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
