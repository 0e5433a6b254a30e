package adapters

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	julesManifestVersion = "1.0.0"
	julesName            = "claude-imported-command"
	julesDescription     = "Imported from Claude Code slash command"
)

type julesManifest struct {
	ManifestVersion string      `json:"manifestVersion"`
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	Steps           []julesStep `json:"steps"`
}

type julesStep struct {
	ID     string `json:"id"`
	Action string `json:"action"`
}

// ClaudeToJules emits one manifest step per non-empty line of the slash
// command. The name line becomes step-1.
func ClaudeToJules(input string) string {
	m := julesManifest{
		ManifestVersion: julesManifestVersion,
		Name:            julesName,
		Description:     julesDescription,
		Steps:           []julesStep{},
	}

	for line := range strings.SplitSeq(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m.Steps = append(m.Steps, julesStep{
			ID:     fmt.Sprintf("step-%d", len(m.Steps)+1),
			Action: stripSlash(line),
		})
	}

	// the manifest holds only strings; marshaling cannot fail
	out, _ := json.MarshalIndent(m, "", "  ")
	return string(out)
}
