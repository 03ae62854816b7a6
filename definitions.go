package icicle

import (
	"errors"
	"io"

	"github.com/napalu/icicle/util"
)

// ActionFunc is the callback invoked with the parsed arguments when a command
// is dispatched. The returned error is propagated verbatim as the outcome of Run.
type ActionFunc func(args *Args) error

// HelpFunc is the callback invoked whenever a help screen should be shown.
// The reason explains why help was triggered, cmd is the command the help
// relates to and args holds whatever was parsed up to that point.
// A command without its own HelpFunc inherits the nearest ancestor's.
type HelpFunc func(reason HelpReason, cmd *Command, args *Args)

// NameConversionFunc converts an option's long name to an environment variable name
type NameConversionFunc func(string) string

// ConfigureCommandFunc is used when defining Command options
type ConfigureCommandFunc func(command *Command)

// ConfigureOptionFunc is used when defining Option declarations
type ConfigureOptionFunc func(option *Option)

// HelpKind discriminates the HelpReason variants
type HelpKind int

const (
	// HelpUserAsked - the help flag was present on the command line
	HelpUserAsked HelpKind = iota
	// HelpMissingAction - the matched command declares no action
	HelpMissingAction
	// HelpMissingOption - a required option was not supplied
	HelpMissingOption
	// HelpMissingArgument - one or more required positional arguments were not supplied
	HelpMissingArgument
)

// HelpReason explains why a help screen is being rendered. Option is set when
// Kind is HelpMissingOption. Start and End delimit the indices of the
// unsatisfied declared arguments (End inclusive) when Kind is HelpMissingArgument.
type HelpReason struct {
	Kind   HelpKind
	Option *Option
	Start  int
	End    int
}

// Secure set IsSecure to true to solicit non-echoed terminal input for a
// required option whose value was not supplied on the command line.
// If Prompt is empty a "password: " prompt will be displayed.
type Secure struct {
	IsSecure bool
	Prompt   string
}

// Option declares a command-line option (--example, -e). Names holds the
// accepted spellings including their leading dashes; Names[0] is canonical.
type Option struct {
	Names       []string
	Description string
	Required    bool
	Secure      Secure
}

// PosArg declares a positional argument slot. An Array argument captures all
// remaining positional values from its declared index onward; at most one
// Array entry should be declared per command.
type PosArg struct {
	Description string
	Required    bool
	Array       bool
}

// KeyValue denotes parsed option pairs as returned by Args.Opts
type KeyValue struct {
	Key   string
	Value string
}

// RunResult describes the non-error outcome of Run
type RunResult int

const (
	// ActionExecuted - the matched command's action was invoked
	ActionExecuted RunResult = iota
	// HelpDisplayed - a help screen was rendered instead of running an action
	HelpDisplayed
)

// Command is a node in the command tree. It owns its subcommands, its option
// and argument declarations and at most one action and one help callback.
// Build a tree with New and the chainable builder methods, or declaratively
// with NewCommand and ConfigureCommandFunc options.
type Command struct {
	names       []string
	description string
	action      ActionFunc
	help        HelpFunc
	children    []*Command
	options     []*Option
	arguments   []*PosArg

	// runtime configuration, only consulted on the node Run is called on
	helpFlag     string
	envConverter NameConversionFunc
	terminal     util.TerminalReader
	stdout       io.Writer
	stderr       io.Writer
}

var (
	ErrMissingOption    = errors.New("missing required option")
	ErrMissingArgument  = errors.New("missing required argument")
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)

const (
	defaultHelpFlag  = "--help"
	optionTerminator = "--"
	longPrefix       = "--"
	shortPrefix      = "-"
)
