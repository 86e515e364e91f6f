// Package cmd provides CLI utilities for deployfix
package cmd

import (
	"fmt"
	"strings"
)

// flags accepted by the main command
var flags = []string{
	"--analyze",
	"--dry-run",
	"--no-verify",
	"--watch",
	"--yes",
	"--quiet",
	"--json",
	"--verbose",
	"--version",
	"--help",
}

// Shells lists the shells a completion script can be generated for.
var Shells = []string{"bash", "zsh", "fish"}

// flagDescriptions maps each flag to its help text
var flagDescriptions = map[string]string{
	"--analyze":   "Report issues without writing",
	"--dry-run":   "Show which files would be written",
	"--no-verify": "Skip the build check",
	"--watch":     "Re-analyze on changes",
	"--yes":       "Apply fixes without asking",
	"--quiet":     "Minimal output",
	"--json":      "JSON output",
	"--verbose":   "Debug logging",
	"--version":   "Print version",
	"--help":      "Show help",
}

// GenerateCompletion returns the completion script for shell.
func GenerateCompletion(shell string) (string, error) {
	switch shell {
	case "bash":
		return GenerateBashCompletion(), nil
	case "zsh":
		return GenerateZshCompletion(), nil
	case "fish":
		return GenerateFishCompletion(), nil
	default:
		return "", fmt.Errorf("unsupported shell %q (supported: %s)", shell, strings.Join(Shells, ", "))
	}
}

// GenerateBashCompletion generates bash completion script
func GenerateBashCompletion() string {
	return fmt.Sprintf(`# bash completion for deployfix
_deployfix_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    if [[ "${prev}" == "completion" ]]; then
        COMPREPLY=( $(compgen -W "%s" -- ${cur}) )
        return 0
    fi

    if [[ ${cur} == -* ]]; then
        opts="%s"
        COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
        return 0
    fi

    COMPREPLY=( $(compgen -d -- ${cur}) )
    return 0
}

complete -F _deployfix_completions deployfix
`, strings.Join(Shells, " "), strings.Join(flags, " "))
}

// GenerateZshCompletion generates zsh completion script
func GenerateZshCompletion() string {
	args := make([]string, len(flags))
	for i, f := range flags {
		args[i] = fmt.Sprintf("        '%s[%s]' \\", f, flagDescriptions[f])
	}

	return fmt.Sprintf(`#compdef deployfix

_deployfix() {
    _arguments \
%s
        '1:project path:_directories'
}

_deployfix "$@"
`, strings.Join(args, "\n"))
}

// GenerateFishCompletion generates fish completion script
func GenerateFishCompletion() string {
	completions := []string{"# deployfix flags"}
	for _, f := range flags {
		completions = append(completions, fmt.Sprintf("complete -c deployfix -l %s -d '%s'", strings.TrimPrefix(f, "--"), flagDescriptions[f]))
	}
	completions = append(completions, "# completion command shells")
	completions = append(completions, fmt.Sprintf("complete -c deployfix -n '__fish_seen_subcommand_from completion' -f -a '%s'", strings.Join(Shells, " ")))
	return strings.Join(completions, "\n")
}
