package icicle

import (
	"errors"
	"fmt"
	"os"

	"github.com/iancoleman/strcase"

	"github.com/napalu/icicle/parse"
)

// DefaultEnvNameConverter maps an option's long name to a
// SCREAMING_SNAKE_CASE environment variable name
var DefaultEnvNameConverter NameConversionFunc = strcase.ToScreamingSnake

// Run parses argv against the receiver's command tree, validates the matched
// command's requirements and dispatches its action.
//
// The outcome distinguishes three cases:
//   - the action ran: ActionExecuted and the action's own error, if any
//   - help was rendered because the user asked for it or the matched command
//     has no action: HelpDisplayed and a nil error
//   - validation failed: HelpDisplayed and a MissingOptionError or
//     MissingArgumentError
//
// Informational help goes to the configured stdout; validation failures print
// a one-line diagnostic followed by the help screen to the configured stderr.
func (c *Command) Run(argv []string) (RunResult, error) {
	cmd, args, helpFn := c.Parse(argv)

	if args.Has(c.helpFlag) {
		c.showHelp(HelpReason{Kind: HelpUserAsked}, cmd, args, helpFn, false)
		return HelpDisplayed, nil
	}

	c.fillFromEnv(cmd, args)

	if err := c.validate(cmd, args); err != nil {
		fmt.Fprintln(c.stderr, err)
		c.showHelp(reasonFor(err), cmd, args, helpFn, true)
		return HelpDisplayed, err
	}

	if cmd.action == nil {
		c.showHelp(HelpReason{Kind: HelpMissingAction}, cmd, args, helpFn, false)
		return HelpDisplayed, nil
	}

	return ActionExecuted, cmd.action(args)
}

// RunString splits a shell-quoted string and calls Run
func (c *Command) RunString(s string) (RunResult, error) {
	argv, err := parse.Split(s)
	if err != nil {
		return HelpDisplayed, err
	}

	return c.Run(argv)
}

// RunEnv calls Run with the hosting process's argument vector, program path
// stripped. The engine itself never touches os.Args - this is the only
// adapter which does.
func (c *Command) RunEnv() (RunResult, error) {
	return c.Run(os.Args[1:])
}

// showHelp routes a help screen through the resolved help callback when one
// exists, falling back to the default renderer otherwise
func (c *Command) showHelp(reason HelpReason, cmd *Command, args *Args, helpFn HelpFunc, toStderr bool) {
	if helpFn != nil {
		helpFn(reason, cmd, args)
		return
	}

	w := c.stdout
	if toStderr {
		w = c.stderr
	}
	fmt.Fprint(w, cmd.GenerateHelp())
}

func reasonFor(err error) HelpReason {
	var optErr *MissingOptionError
	if errors.As(err, &optErr) {
		return HelpReason{Kind: HelpMissingOption, Option: optErr.Option}
	}

	var argErr *MissingArgumentError
	if errors.As(err, &argErr) {
		return HelpReason{Kind: HelpMissingArgument, Start: argErr.Start, End: argErr.End}
	}

	return HelpReason{Kind: HelpMissingAction}
}
