package nested

import (
	"strings"

	"github.com/mfridman/nested/pkg/argparse"
)

// flagIntrospector is the part of [Parser] needed to decide whether a flag is known.
type flagIntrospector interface {
	Aliases() map[string][]string
	Descriptions() map[string]string
	Demanded() map[string]bool
}

// Keys that never count as unknown: the positional list, the program name and parsed params.
var reservedKeys = map[string]bool{"_": true, "$0": true, "params": true}

// checkUnknownArguments fails if argv holds a flag the parser doesn't know. A key is known if it
// was declared, demanded, is an alias, or if "no-<key>" is an alias.
func checkUnknownArguments(p flagIntrospector, argv *argparse.Argv) error {
	aliasOf := make(map[string]string)
	for name, aliases := range p.Aliases() {
		for _, alias := range aliases {
			aliasOf[alias] = name
		}
	}
	descriptions := p.Descriptions()
	demanded := p.Demanded()

	var unknown []string
	for _, key := range argv.Keys() {
		if reservedKeys[key] || demanded[key] {
			continue
		}
		if _, ok := descriptions[key]; ok {
			continue
		}
		if _, ok := aliasOf[key]; ok {
			continue
		}
		if _, ok := aliasOf["no-"+key]; ok {
			continue
		}
		unknown = append(unknown, key)
	}
	switch len(unknown) {
	case 0:
		return nil
	case 1:
		return newError(ErrUnknownArgument, "Unknown argument: %s", unknown[0])
	default:
		return newError(ErrUnknownArgument, "Unknown arguments: %s", strings.Join(unknown, ", "))
	}
}
