package adapters

import "strings"

// slashCommand is a Claude Code slash command split into its name line and
// the remaining body. No validation is applied.
type slashCommand struct {
	name string
	body string
}

func parseSlashCommand(input string) slashCommand {
	first, rest, _ := strings.Cut(input, "\n")
	return slashCommand{
		name: stripSlash(strings.TrimSpace(first)),
		body: strings.TrimSpace(rest),
	}
}

func stripSlash(s string) string {
	return strings.TrimPrefix(s, "/")
}
