package nested

import (
	"regexp"

	"github.com/mfridman/nested/pkg/argparse"
)

var paramToken = regexp.MustCompile(`<[^>]+>|\[[^\]]+\]`)

// parseParams fills argv.Params from the positional arguments that follow the command path,
// one per <required> or [optional] token of grammar, in order. The grammar is checked for
// ordering before any value is read.
//
// An empty value counts as missing for a required parameter.
func parseParams(grammar string, argv *argparse.Argv, path []string) error {
	tokens := paramToken.FindAllString(grammar, -1)
	seenOptional := false
	for _, token := range tokens {
		if token[0] == '[' {
			seenOptional = true
		} else if seenOptional {
			return newError(ErrParamOrder, "Optional parameters must be specified last")
		}
	}

	params := make(map[string]string)
	for i, token := range tokens {
		name := token[1 : len(token)-1]
		pos := len(path) - 1 + i
		value := argv.Arg(pos)
		if token[0] == '<' && value == "" {
			return newError(ErrMissingParam, "Parameter `%s` is required.", name)
		}
		if pos < len(argv.Positional) {
			params[name] = value
		}
	}
	argv.Params = params
	return nil
}
