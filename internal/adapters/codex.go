package adapters

import "strings"

const noDescription = "No description provided"

// ClaudeToCodex renders a slash command as a Codex agent command document.
func ClaudeToCodex(input string) string {
	cmd := parseSlashCommand(input)

	desc := cmd.body
	if desc == "" {
		desc = noDescription
	}

	var b strings.Builder
	b.WriteString("# Codex Agent Command\n\n")
	b.WriteString("## Command\n")
	b.WriteString("/" + cmd.name + "\n\n")
	b.WriteString("## Description\n")
	b.WriteString(desc + "\n")
	return b.String()
}
