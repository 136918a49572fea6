// Package argparse is the flag-parsing and usage-rendering context a command tree runs against.
//
// A [Context] is configured one level at a time: options, examples, usage text, checks and named
// sub-commands are declared, then [Context.Argv] parses the raw arguments. If the positional
// argument at the current level names a registered sub-command, the per-level configuration is
// cleared and the sub-command's runner takes over, so the same Context serves every level of a
// nested walk. Otherwise the help flag, checks, positional demand and demanded options are
// evaluated in that order.
//
// Options declared after construction (for example from a setup hook) are honored: the flag set
// is only built when arguments are evaluated. Flags that were never declared are still parsed and
// recorded so callers can decide how strict to be.
package argparse
