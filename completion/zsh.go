package completion

import (
	"fmt"
	"strings"
)

type ZshGenerator struct{}

func (g *ZshGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`#compdef %[1]s

function _%[1]s() {
    local -a commands
    commands=(
`, programName))

	for _, path := range data.Commands {
		if strings.Contains(path, " ") {
			continue
		}
		desc := escapeZsh(data.CommandDescriptions[path])
		script.WriteString(fmt.Sprintf("        '%s:%s'\n", path, desc))
	}

	script.WriteString(`    )

    if (( CURRENT == 2 )); then
        _describe 'command' commands
`)

	if len(data.Flags) > 0 {
		script.WriteString(fmt.Sprintf(`        compadd -- %s
`, strings.Join(data.Flags, " ")))
	}

	script.WriteString(`    else
        case "${words[2]}" in
`)

	for _, path := range data.Commands {
		if strings.Contains(path, " ") {
			continue
		}
		var words []string
		for _, sub := range data.Commands {
			if strings.HasPrefix(sub, path+" ") {
				words = append(words, strings.TrimPrefix(sub, path+" "))
			}
		}
		words = append(words, data.CommandFlags[path]...)
		if len(words) == 0 {
			continue
		}
		script.WriteString(fmt.Sprintf(`            %s)
                compadd -- %s
                ;;
`, path, strings.Join(words, " ")))
	}

	script.WriteString(fmt.Sprintf(`        esac
    fi
}

_%[1]s "$@"
`, programName))

	return script.String()
}

func escapeZsh(s string) string {
	return strings.NewReplacer("'", "'\\''", ":", "\\:").Replace(s)
}
