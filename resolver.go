package icicle

import (
	"strings"

	"github.com/napalu/icicle/parse"
)

// Parse consumes argv in a single left-to-right pass. Leading tokens are
// matched greedily against the receiver's subcommand tree - on the first
// token which matches no child, subcommand matching stops for good and that
// same token, like every token after it, is classified as an option or a
// positional. Parse never fails: unmatched tokens become positionals or
// options, never errors.
//
// It returns the terminal matched command (possibly still the receiver), the
// parsed arguments, and the help callback of the deepest matched command
// which declares one (nil when none does).
func (c *Command) Parse(argv []string) (*Command, *Args, HelpFunc) {
	var (
		current     = c
		parsed      = newArgs()
		helpFn      = c.help
		subcommands = true
		options     = true
	)

	state := parse.NewState(argv)
	for state.Advance() {
		arg := state.CurrentArg()

		if subcommands {
			if child := current.matchChild(arg); child != nil {
				current = child
				if child.help != nil {
					helpFn = child.help
				}
				continue
			}
			// the non-matching token is not consumed by the subcommand
			// search - it still gets classified below
			subcommands = false
		}

		switch {
		case !options:
			parsed.pos = append(parsed.pos, arg)
		case arg == optionTerminator:
			options = false
		case strings.HasPrefix(arg, longPrefix):
			name, value := splitOptionToken(arg)
			parsed.setOpt(name, value)
		case strings.HasPrefix(arg, shortPrefix):
			name, value := splitOptionToken(arg)
			for _, short := range name[len(shortPrefix):] {
				parsed.setOpt(shortPrefix+string(short), value)
			}
		default:
			parsed.pos = append(parsed.pos, arg)
		}
	}

	return current, parsed, helpFn
}

// ParseString splits a shell-quoted string and calls Parse
func (c *Command) ParseString(s string) (*Command, *Args, HelpFunc, error) {
	argv, err := parse.Split(s)
	if err != nil {
		return nil, nil, nil, err
	}

	cmd, args, helpFn := c.Parse(argv)

	return cmd, args, helpFn, nil
}

// splitOptionToken splits an option token on the first '=' into its name part
// (dashes included) and its value. Without '=' the value is the literal "true".
func splitOptionToken(arg string) (string, string) {
	name, value, found := strings.Cut(arg, "=")
	if !found {
		value = "true"
	}

	return name, value
}
