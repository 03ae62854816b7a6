package icicle

import (
	"os"
	"strings"
)

// validate checks the matched command's declared requirements against the
// parsed arguments. Options are checked exhaustively in declaration order
// before arguments; the first violation stops the check. root supplies the
// runtime configuration (terminal reader for secure options).
func (root *Command) validate(cmd *Command, args *Args) error {
	for _, opt := range cmd.options {
		if !opt.Required || args.hasAny(opt.Names) {
			continue
		}
		if opt.Secure.IsSecure && root.readSecure(opt, args) {
			continue
		}

		return &MissingOptionError{Option: opt}
	}

	for i, arg := range cmd.arguments {
		if !arg.Required || args.HasAt(i) {
			continue
		}
		end := i
		if arg.Array {
			// a missing array argument covers the full remaining declared range
			end = len(cmd.arguments) - 1
		}

		return &MissingArgumentError{Start: i, End: end, Command: cmd}
	}

	return nil
}

// readSecure solicits a non-echoed value for a missing secure option.
// Returns true when a value was obtained and stored.
func (root *Command) readSecure(opt *Option, args *Args) bool {
	if root.terminal == nil || !root.terminal.IsTerminal() {
		return false
	}

	prompt := opt.Secure.Prompt
	if prompt == "" {
		prompt = "password: "
	}
	value, err := root.terminal.ReadSecure(prompt)
	if err != nil {
		return false
	}
	args.setOpt(opt.Names[0], value)

	return true
}

// fillFromEnv supplements options absent from the command line with
// environment values, using the configured name converter on each option's
// long name. Disabled until SetEnvNameConverter is called.
func (root *Command) fillFromEnv(cmd *Command, args *Args) {
	if root.envConverter == nil {
		return
	}

	for _, opt := range cmd.options {
		if args.hasAny(opt.Names) {
			continue
		}
		envName := root.envConverter(opt.longName())
		if envName == "" {
			continue
		}
		if value, found := os.LookupEnv(envName); found {
			args.setOpt(opt.Names[0], value)
		}
	}
}

// longName returns the option's long spelling without its dashes, falling
// back to the canonical name when no long form was declared
func (o *Option) longName() string {
	for _, name := range o.Names {
		if strings.HasPrefix(name, longPrefix) {
			return strings.TrimLeft(name, shortPrefix)
		}
	}
	if len(o.Names) == 0 {
		return ""
	}

	return strings.TrimLeft(o.Names[0], shortPrefix)
}
