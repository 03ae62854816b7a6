package icicle

import (
	"strconv"
	"strings"
)

// Renderer formats a single command's declared metadata for help screens.
// The default help path and caller-supplied help callbacks share it so both
// produce the same text.
type Renderer struct {
	cmd *Command
}

// NewRenderer creates a Renderer over the given command
func NewRenderer(cmd *Command) *Renderer {
	return &Renderer{cmd: cmd}
}

// UsageLine produces the one-line synopsis: the canonical name, followed by
// "[--options]" when options are declared, "[<arguments>]" when positional
// arguments are declared and "<command>" when subcommands exist, joined by sep.
func (r *Renderer) UsageLine(sep string) string {
	parts := []string{r.cmd.Name()}
	if len(r.cmd.options) > 0 {
		parts = append(parts, "[--options]")
	}
	if len(r.cmd.arguments) > 0 {
		parts = append(parts, "[<arguments>]")
	}
	if len(r.cmd.children) > 0 {
		parts = append(parts, "<command>")
	}

	return strings.Join(parts, sep)
}

// ArgumentUsage produces the help line for the positional argument declared
// at the given index. Scalar arguments are labeled by index; an array
// argument is labeled "all arguments" when it captures from index 0 and
// "<everything else>" when it captures a later tail.
func (r *Renderer) ArgumentUsage(arg *PosArg, index int) string {
	var label string
	switch {
	case !arg.Array:
		label = "#" + strconv.Itoa(index)
	case index == 0:
		label = "all arguments"
	default:
		label = "<everything else>"
	}

	usage := label
	if arg.Description != "" {
		usage += " \"" + arg.Description + "\""
	}
	if arg.Required {
		usage += " (required)"
	}

	return usage
}

// OptionUsage produces the help line for an option: its names joined by
// ", ", its description and a required/optional marker.
func (r *Renderer) OptionUsage(opt *Option) string {
	usage := strings.Join(opt.Names, ", ")
	if opt.Description != "" {
		usage += " \"" + opt.Description + "\""
	}
	if opt.Required {
		usage += " (required)"
	} else {
		usage += " (optional)"
	}

	return usage
}

// SubcommandUsage produces the one-line summary for a child command: its
// names joined by ", " and its description or a placeholder
func (r *Renderer) SubcommandUsage(child *Command) string {
	usage := strings.Join(child.names, ", ")
	if child.description == "" {
		return usage + " (no description)"
	}

	return usage + " \"" + child.description + "\""
}

// GenerateUsage returns the command's synopsis with its parts joined by sep
func (c *Command) GenerateUsage(sep string) string {
	return NewRenderer(c).UsageLine(sep)
}

// GenerateHelp renders the command's full help screen: usage line, then the
// arguments, options and commands sections, each preceded by its header and
// present only when the corresponding declarations exist.
func (c *Command) GenerateHelp() string {
	r := NewRenderer(c)

	var sb strings.Builder
	sb.WriteString("usage: " + r.UsageLine(" ") + "\n")

	if len(c.arguments) > 0 {
		sb.WriteString("arguments:\n")
		for i, arg := range c.arguments {
			sb.WriteString("  " + r.ArgumentUsage(arg, i) + "\n")
		}
	}

	if len(c.options) > 0 {
		sb.WriteString("options:\n")
		for _, opt := range c.options {
			sb.WriteString("  " + r.OptionUsage(opt) + "\n")
		}
	}

	if len(c.children) > 0 {
		sb.WriteString("commands:\n")
		for _, child := range c.children {
			sb.WriteString("  " + r.SubcommandUsage(child) + "\n")
		}
	}

	return sb.String()
}
