package icicle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderer_UsageLine(t *testing.T) {
	cmd := New("app").
		Option("-v, --verbose", "verbose mode").
		Argument("filename")

	usage := cmd.GenerateUsage(" ")
	assert.Contains(t, usage, "[--options]")
	assert.Contains(t, usage, "[<arguments>]")
	assert.NotContains(t, usage, "<command>", "no subcommands declared, no command placeholder")
	assert.Equal(t, "app [--options] [<arguments>]", usage)
}

func TestRenderer_UsageLineBareCommand(t *testing.T) {
	assert.Equal(t, "app", New("app").GenerateUsage(" "))
}

func TestRenderer_UsageLineWithSubcommands(t *testing.T) {
	cmd := New("app")
	cmd.Command("sub")

	assert.Equal(t, "app <command>", cmd.GenerateUsage(" "))
}

func TestRenderer_HelpSections(t *testing.T) {
	cmd := New("app").
		Option("-v, --verbose", "verbose mode").
		Argument("filename")
	cmd.Command("sub")

	help := cmd.GenerateHelp()
	assert.Contains(t, help, "usage:")
	assert.Contains(t, help, "arguments:")
	assert.Contains(t, help, "options:")
	assert.Contains(t, help, "commands:")

	usageIdx := strings.Index(help, "usage:")
	argsIdx := strings.Index(help, "arguments:")
	optsIdx := strings.Index(help, "options:")
	cmdsIdx := strings.Index(help, "commands:")
	assert.True(t, usageIdx < argsIdx && argsIdx < optsIdx && optsIdx < cmdsIdx,
		"sections should render as usage, arguments, options, commands")
}

func TestRenderer_OmitsEmptySections(t *testing.T) {
	help := New("app").GenerateHelp()
	assert.Equal(t, "usage: app\n", help)
}

func TestRenderer_ArgumentLabels(t *testing.T) {
	cmd := New("app").
		Argument("input file").
		OptArgument("output file")

	help := cmd.GenerateHelp()
	assert.Contains(t, help, `#0 "input file" (required)`)
	assert.Contains(t, help, `#1 "output file"`)
	assert.NotContains(t, help, `#1 "output file" (required)`,
		"optional arguments carry no required marker")
}

func TestRenderer_ArrayArgumentLabels(t *testing.T) {
	leading := New("app").ArrayArgument("names")
	assert.Contains(t, leading.GenerateHelp(), `all arguments "names" (required)`,
		"an array argument at index 0 is labeled all arguments")

	trailing := New("app").Argument("first").OptArrayArgument("the rest")
	assert.Contains(t, trailing.GenerateHelp(), `<everything else> "the rest"`,
		"an array argument at a later index is labeled <everything else>")
}

func TestRenderer_OptionLines(t *testing.T) {
	cmd := New("app").
		Option("-v, --verbose", "verbose mode").
		OptOption("-q, --quiet", "quiet mode")

	help := cmd.GenerateHelp()
	assert.Contains(t, help, `-v, --verbose "verbose mode" (required)`)
	assert.Contains(t, help, `-q, --quiet "quiet mode" (optional)`)
}

func TestRenderer_SubcommandLines(t *testing.T) {
	cmd := New("app")
	cmd.Command("sub").Alias("s").Desc("a subcommand")
	cmd.Command("bare")

	help := cmd.GenerateHelp()
	assert.Contains(t, help, `sub, s "a subcommand"`)
	assert.Contains(t, help, "bare (no description)")
}

func TestRenderer_EveryLineNewlineTerminated(t *testing.T) {
	cmd := New("app").
		Option("-v, --verbose", "verbose mode").
		Argument("filename")
	cmd.Command("sub")

	help := cmd.GenerateHelp()
	assert.True(t, strings.HasSuffix(help, "\n"))
	for _, line := range strings.Split(strings.TrimSuffix(help, "\n"), "\n") {
		assert.NotEmpty(t, line, "the help screen should contain no blank lines")
	}
}
