// Package completion generates shell completion scripts from a command
// tree's declared metadata.
package completion

// CompletionData holds everything a generator needs: command paths in tree
// order (space-joined, root excluded), per-command descriptions and option
// names, and the root command's own option names.
type CompletionData struct {
	Commands            []string
	CommandDescriptions map[string]string
	CommandFlags        map[string][]string
	Flags               []string
}

// Generator produces a completion script for one shell
type Generator interface {
	Generate(programName string, data CompletionData) string
}

// GetGenerator returns the Generator for the given shell, defaulting to bash
func GetGenerator(shell string) Generator {
	switch shell {
	case "zsh":
		return &ZshGenerator{}
	case "fish":
		return &FishGenerator{}
	case "powershell":
		return &PowerShellGenerator{}
	default:
		return &BashGenerator{}
	}
}
