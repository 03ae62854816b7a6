// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package icicle provides declarative command-line interface construction.
//
// A program is described as a tree of named commands. Each Command owns its
// subcommands, its option and positional argument declarations, an optional
// action callback and an optional help callback. Handing Run the raw process
// arguments resolves the terminal command by walking the tree, parses options
// and positionals, validates the result against the command's declared
// requirements and either invokes the action or renders a help screen.
//
// Option syntax on the command line:
//
//	--name          long option, value defaults to "true"
//	--name=value    long option with value
//	-x              short option, value defaults to "true"
//	-xyz=value      short option cluster - yields -x, -y and -z all bound to value
//	--              terminator - everything after is positional, even if dash-prefixed
package icicle

import (
	"io"
	"os"
	"strings"

	"github.com/ef-ds/deque/v2"
	"github.com/napalu/icicle/util"
)

// New creates a command with the given canonical name. The returned node can
// serve as the root of a tree or be attached to a parent with Add.
func New(name string) *Command {
	return &Command{
		names:    []string{name},
		helpFlag: defaultHelpFlag,
		terminal: util.StdinTerminal{},
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

// Alias adds an alternative name for the command. Aliases participate in
// subcommand matching in the order they were added, after the canonical name.
func (c *Command) Alias(name string) *Command {
	c.names = append(c.names, name)
	return c
}

// Desc sets the command's short description, used only by help rendering.
func (c *Command) Desc(text string) *Command {
	c.description = text
	return c
}

// Action sets the callback to invoke when the command is matched and
// validation succeeds. A command without an action renders help instead.
func (c *Command) Action(fn ActionFunc) *Command {
	c.action = fn
	return c
}

// Help sets the command's help callback. Descendants which declare none of
// their own inherit it.
func (c *Command) Help(fn HelpFunc) *Command {
	c.help = fn
	return c
}

// Option declares a required option. namesCSV lists the accepted spellings
// separated by commas, e.g. "-v, --verbose".
func (c *Command) Option(namesCSV, desc string) *Command {
	c.options = append(c.options, &Option{
		Names:       splitOptionNames(namesCSV),
		Description: desc,
		Required:    true,
	})
	return c
}

// OptOption declares an optional option.
func (c *Command) OptOption(namesCSV, desc string) *Command {
	c.options = append(c.options, &Option{
		Names:       splitOptionNames(namesCSV),
		Description: desc,
	})
	return c
}

// SecureOption declares a required option whose value, when absent from the
// command line, is solicited from the terminal without echoing instead of
// failing validation. An empty prompt selects a default one.
func (c *Command) SecureOption(namesCSV, desc, prompt string) *Command {
	c.options = append(c.options, &Option{
		Names:       splitOptionNames(namesCSV),
		Description: desc,
		Required:    true,
		Secure:      Secure{IsSecure: true, Prompt: prompt},
	})
	return c
}

// Argument declares a required scalar positional argument at the next index.
func (c *Command) Argument(desc string) *Command {
	c.arguments = append(c.arguments, &PosArg{Description: desc, Required: true})
	return c
}

// OptArgument declares an optional scalar positional argument at the next index.
func (c *Command) OptArgument(desc string) *Command {
	c.arguments = append(c.arguments, &PosArg{Description: desc})
	return c
}

// ArrayArgument declares a required positional argument which captures all
// remaining positional values from its index onward. Declare at most one
// array argument per command.
func (c *Command) ArrayArgument(desc string) *Command {
	c.arguments = append(c.arguments, &PosArg{Description: desc, Required: true, Array: true})
	return c
}

// OptArrayArgument declares an optional trailing array argument.
func (c *Command) OptArrayArgument(desc string) *Command {
	c.arguments = append(c.arguments, &PosArg{Description: desc, Array: true})
	return c
}

// Command creates a subcommand with the given name, attaches it and returns
// the child so it can be configured in place.
func (c *Command) Command(name string) *Command {
	child := New(name)
	c.children = append(c.children, child)
	return child
}

// Add attaches an existing command as a subcommand and returns the receiver.
// Children are matched in the order they were attached; on ambiguous names
// the first match wins.
func (c *Command) Add(child *Command) *Command {
	c.children = append(c.children, child)
	return c
}

// Name returns the command's canonical name
func (c *Command) Name() string {
	return c.names[0]
}

// Names returns the command's canonical name followed by its aliases
func (c *Command) Names() []string {
	return c.names
}

// Description returns the command's description as set by Desc
func (c *Command) Description() string {
	return c.description
}

// Subcommands returns the command's children in attachment order
func (c *Command) Subcommands() []*Command {
	return c.children
}

// Options returns the command's option declarations in declaration order
func (c *Command) Options() []*Option {
	return c.options
}

// Arguments returns the command's positional argument declarations in
// declaration order
func (c *Command) Arguments() []*PosArg {
	return c.arguments
}

// HasAction returns true when the command declares an action callback
func (c *Command) HasAction() bool {
	return c.action != nil
}

// SetHelpFlag overrides the option name which triggers help rendering.
// Defaults to "--help". Only consulted on the node Run is called on.
func (c *Command) SetHelpFlag(name string) *Command {
	c.helpFlag = name
	return c
}

// SetStdout sets the writer used for informational help screens.
// Defaults to os.Stdout.
func (c *Command) SetStdout(w io.Writer) *Command {
	c.stdout = w
	return c
}

// SetStderr sets the writer used for validation diagnostics and the help
// screens accompanying them. Defaults to os.Stderr.
func (c *Command) SetStderr(w io.Writer) *Command {
	c.stderr = w
	return c
}

// SetEnvNameConverter enables environment fallback for options: an option
// absent from the command line is looked up in the environment under
// conv(longName). Pass DefaultEnvNameConverter for SCREAMING_SNAKE names.
func (c *Command) SetEnvNameConverter(conv NameConversionFunc) *Command {
	c.envConverter = conv
	return c
}

// SetTerminalReader overrides the terminal used to solicit secure option
// values. Mainly useful in tests.
func (c *Command) SetTerminalReader(r util.TerminalReader) *Command {
	c.terminal = r
	return c
}

// Visit traverses the command and its subcommands depth-first, from top to
// bottom. Returning false from the visitor stops the traversal of the
// current branch.
func (c *Command) Visit(visitor func(cmd *Command, level int) bool, level int) {
	if visitor != nil {
		if !visitor(c, level) {
			return
		}
	}

	for _, cmd := range c.children {
		cmd.Visit(visitor, level+1)
	}
}

// Walk traverses the command and its subcommands breadth-first. The visitor
// receives each node together with its space-joined path of canonical names
// starting at the receiver. Returning false stops the traversal.
func (c *Command) Walk(visitor func(cmd *Command, path string) bool) {
	type entry struct {
		cmd  *Command
		path string
	}

	q := deque.New[entry]()
	q.PushBack(entry{cmd: c, path: c.Name()})
	for q.Len() > 0 {
		e, _ := q.PopFront()
		if !visitor(e.cmd, e.path) {
			return
		}
		for _, child := range e.cmd.children {
			q.PushBack(entry{cmd: child, path: e.path + " " + child.Name()})
		}
	}
}

// matchChild scans children in attachment order and each child's names in
// declaration order, returning the first exact match
func (c *Command) matchChild(token string) *Command {
	for _, child := range c.children {
		for _, name := range child.names {
			if name == token {
				return child
			}
		}
	}

	return nil
}

func splitOptionNames(namesCSV string) []string {
	parts := strings.Split(namesCSV, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		names = append(names, strings.TrimSpace(part))
	}

	return names
}
