package icicle

import (
	"strings"

	"github.com/napalu/icicle/completion"
)

// CompletionData collects the command tree's metadata for shell completion:
// command paths relative to the receiver, their descriptions and option
// names, and the receiver's own options.
func (c *Command) CompletionData() completion.CompletionData {
	data := completion.CompletionData{
		Commands:            make([]string, 0),
		CommandDescriptions: make(map[string]string),
		CommandFlags:        make(map[string][]string),
	}

	rootPrefix := c.Name() + " "
	c.Walk(func(cmd *Command, path string) bool {
		if cmd == c {
			for _, opt := range c.options {
				data.Flags = append(data.Flags, opt.Names...)
			}
			return true
		}

		relative := strings.TrimPrefix(path, rootPrefix)
		data.Commands = append(data.Commands, relative)
		data.CommandDescriptions[relative] = cmd.description
		for _, opt := range cmd.options {
			data.CommandFlags[relative] = append(data.CommandFlags[relative], opt.Names...)
		}

		return true
	})

	return data
}

// GenerateCompletion generates a completion script for the given shell and
// program name
func (c *Command) GenerateCompletion(shell, programName string) string {
	generator := completion.GetGenerator(shell)

	return generator.Generate(programName, c.CompletionData())
}
