package completion

import (
	"fmt"
	"strings"
)

type PowerShellGenerator struct{}

func (g *PowerShellGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`Register-ArgumentCompleter -Native -CommandName %[1]s -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $completions = @(
`, programName))

	for _, path := range data.Commands {
		if strings.Contains(path, " ") {
			continue
		}
		desc := data.CommandDescriptions[path]
		if desc == "" {
			desc = path
		}
		script.WriteString(fmt.Sprintf("        [System.Management.Automation.CompletionResult]::new('%s', '%s', 'ParameterValue', '%s')\n",
			path, path, escapePowerShell(desc)))
	}
	for _, flag := range data.Flags {
		script.WriteString(fmt.Sprintf("        [System.Management.Automation.CompletionResult]::new('%s', '%s', 'ParameterName', '%s')\n",
			flag, flag, flag))
	}

	script.WriteString(`    )

    $completions | Where-Object { $_.CompletionText -like "$wordToComplete*" }
}
`)

	return script.String()
}

func escapePowerShell(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
