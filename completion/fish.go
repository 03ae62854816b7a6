package completion

import (
	"fmt"
	"strings"
)

type FishGenerator struct{}

func (g *FishGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf("# fish completion for %s\n", programName))

	for _, path := range data.Commands {
		parts := strings.Split(path, " ")
		name := parts[len(parts)-1]
		desc := escapeFish(data.CommandDescriptions[path])

		if len(parts) == 1 {
			script.WriteString(fmt.Sprintf("complete -c %s -f -n '__fish_use_subcommand' -a '%s' -d '%s'\n",
				programName, name, desc))
		} else {
			parent := parts[len(parts)-2]
			script.WriteString(fmt.Sprintf("complete -c %s -f -n '__fish_seen_subcommand_from %s' -a '%s' -d '%s'\n",
				programName, parent, name, desc))
		}

		for _, flag := range data.CommandFlags[path] {
			script.WriteString(fmt.Sprintf("complete -c %s -f -n '__fish_seen_subcommand_from %s' -a '%s'\n",
				programName, name, flag))
		}
	}

	for _, flag := range data.Flags {
		script.WriteString(fmt.Sprintf("complete -c %s -f -n '__fish_use_subcommand' -a '%s'\n",
			programName, flag))
	}

	return script.String()
}

func escapeFish(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}
