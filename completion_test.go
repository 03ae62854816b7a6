package icicle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildCompletionTree() *Command {
	root := New("tool").OptOption("-v, --verbose", "verbose output")
	service := root.Command("service").Desc("manage services")
	service.Command("start").Desc("start a service").Option("-n, --name", "service name")
	service.Command("stop").Desc("stop a service")
	root.Command("version").Desc("print the version")

	return root
}

func TestCommand_CompletionData(t *testing.T) {
	data := buildCompletionTree().CompletionData()

	assert.Equal(t, []string{"service", "version", "service start", "service stop"}, data.Commands,
		"paths are root-relative in breadth-first order")
	assert.Equal(t, "manage services", data.CommandDescriptions["service"])
	assert.Equal(t, "start a service", data.CommandDescriptions["service start"])
	assert.Equal(t, []string{"-n", "--name"}, data.CommandFlags["service start"])
	assert.Equal(t, []string{"-v", "--verbose"}, data.Flags)
}

func TestCommand_GenerateCompletionBash(t *testing.T) {
	script := buildCompletionTree().GenerateCompletion("bash", "tool")

	assert.Contains(t, script, "__tool_completion")
	assert.Contains(t, script, "complete -F __tool_completion tool")
	assert.Contains(t, script, "service")
	assert.Contains(t, script, "version")
	assert.Contains(t, script, "--verbose")
}

func TestCommand_GenerateCompletionZsh(t *testing.T) {
	script := buildCompletionTree().GenerateCompletion("zsh", "tool")

	assert.Contains(t, script, "#compdef tool")
	assert.Contains(t, script, "'service:manage services'")
	assert.Contains(t, script, "start")
}

func TestCommand_GenerateCompletionFish(t *testing.T) {
	script := buildCompletionTree().GenerateCompletion("fish", "tool")

	assert.Contains(t, script, "complete -c tool")
	assert.Contains(t, script, "__fish_use_subcommand")
	assert.Contains(t, script, "-d 'manage services'")
	assert.Contains(t, script, "__fish_seen_subcommand_from service")
}

func TestCommand_GenerateCompletionPowerShell(t *testing.T) {
	script := buildCompletionTree().GenerateCompletion("powershell", "tool")

	assert.Contains(t, script, "Register-ArgumentCompleter")
	assert.Contains(t, script, "CommandName tool")
	assert.Contains(t, script, "'service'")
}

func TestCommand_GenerateCompletionUnknownShellDefaultsToBash(t *testing.T) {
	script := buildCompletionTree().GenerateCompletion("tcsh", "tool")
	assert.Contains(t, script, "#!/bin/bash")
}
