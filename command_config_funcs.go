package icicle

import (
	"io"

	"github.com/napalu/icicle/util"
)

// NewCommand creates and returns a new Command. It takes variadic
// ConfigureCommandFunc functions to customize the created command.
func NewCommand(configs ...ConfigureCommandFunc) *Command {
	cmd := New("")
	for _, config := range configs {
		config(cmd)
	}

	return cmd
}

// Set applies configuration functions to an existing command
func (c *Command) Set(configs ...ConfigureCommandFunc) {
	for _, config := range configs {
		config(c)
	}
}

// WithName sets the canonical name for the command. The name is used to
// match the command on the command line.
func WithName(name string) ConfigureCommandFunc {
	return func(command *Command) {
		command.names[0] = name
	}
}

// WithAliases adds alternative names for the command
func WithAliases(aliases ...string) ConfigureCommandFunc {
	return func(command *Command) {
		command.names = append(command.names, aliases...)
	}
}

// WithDescription sets the description shown in help output
func WithDescription(description string) ConfigureCommandFunc {
	return func(command *Command) {
		command.description = description
	}
}

// WithAction sets the callback which runs when the command is dispatched
func WithAction(action ActionFunc) ConfigureCommandFunc {
	return func(command *Command) {
		command.action = action
	}
}

// WithHelp sets the callback which runs when a help screen should be shown
func WithHelp(help HelpFunc) ConfigureCommandFunc {
	return func(command *Command) {
		command.help = help
	}
}

// WithOptions appends option declarations to the command
func WithOptions(options ...*Option) ConfigureCommandFunc {
	return func(command *Command) {
		command.options = append(command.options, options...)
	}
}

// WithArguments appends positional argument declarations to the command
func WithArguments(arguments ...*PosArg) ConfigureCommandFunc {
	return func(command *Command) {
		command.arguments = append(command.arguments, arguments...)
	}
}

// WithSubcommands attaches subcommands in the given order
func WithSubcommands(subcommands ...*Command) ConfigureCommandFunc {
	return func(command *Command) {
		command.children = append(command.children, subcommands...)
	}
}

// WithHelpFlag overrides the option name which triggers help rendering
func WithHelpFlag(name string) ConfigureCommandFunc {
	return func(command *Command) {
		command.helpFlag = name
	}
}

// WithEnvNameConverter enables environment fallback for option values
func WithEnvNameConverter(conv NameConversionFunc) ConfigureCommandFunc {
	return func(command *Command) {
		command.envConverter = conv
	}
}

// WithStdout sets the writer for informational help screens
func WithStdout(w io.Writer) ConfigureCommandFunc {
	return func(command *Command) {
		command.stdout = w
	}
}

// WithStderr sets the writer for validation diagnostics
func WithStderr(w io.Writer) ConfigureCommandFunc {
	return func(command *Command) {
		command.stderr = w
	}
}

// WithTerminalReader overrides the terminal used for secure option input
func WithTerminalReader(r util.TerminalReader) ConfigureCommandFunc {
	return func(command *Command) {
		command.terminal = r
	}
}
