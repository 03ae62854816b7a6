package completion

import (
	"fmt"
	"strings"
)

type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	topLevel := make([]string, 0, len(data.Commands))
	subsOf := make(map[string][]string)
	for _, path := range data.Commands {
		parts := strings.Split(path, " ")
		if len(parts) == 1 {
			topLevel = append(topLevel, path)
			continue
		}
		parent := strings.Join(parts[:len(parts)-1], " ")
		subsOf[parent] = append(subsOf[parent], parts[len(parts)-1])
	}

	script.WriteString(fmt.Sprintf(`#!/bin/bash

function __%[1]s_completion() {
    local cur words cword path
    cur="${COMP_WORDS[COMP_CWORD]}"

    path=""
    for ((i=1; i < COMP_CWORD; i++)); do
        if [[ "${COMP_WORDS[i]}" != -* ]]; then
            if [[ -z "$path" ]]; then
                path="${COMP_WORDS[i]}"
            else
                path="$path ${COMP_WORDS[i]}"
            fi
        fi
    done

    case "$path" in
`, programName))

	script.WriteString(fmt.Sprintf(`        "")
            COMPREPLY=( $(compgen -W "%s" -- "$cur") )
            ;;
`, strings.Join(append(append([]string{}, topLevel...), data.Flags...), " ")))

	for _, path := range data.Commands {
		words := append(append([]string{}, subsOf[path]...), data.CommandFlags[path]...)
		if len(words) == 0 {
			continue
		}
		script.WriteString(fmt.Sprintf(`        "%s")
            COMPREPLY=( $(compgen -W "%s" -- "$cur") )
            ;;
`, path, strings.Join(words, " ")))
	}

	script.WriteString(fmt.Sprintf(`    esac
}

complete -F __%[1]s_completion %[1]s
`, programName))

	return script.String()
}
