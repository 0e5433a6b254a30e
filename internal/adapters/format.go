// Package adapters converts agent configuration text between vendor formats.
// Converters are plain functions held in a Registry keyed by (from, to).
package adapters

import "fmt"

// Format names a vendor-specific agent configuration format.
type Format string

const (
	ClaudeCode    Format = "claude_code"
	CodexAgents   Format = "codex_agents"
	JulesManifest Format = "jules_manifest"
)

var formats = []Format{ClaudeCode, CodexAgents, JulesManifest}

// Formats returns every known format in declaration order.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

func (f Format) Valid() bool {
	for _, known := range formats {
		if f == known {
			return true
		}
	}
	return false
}

func (f Format) String() string {
	return string(f)
}

// ContentType is the media type a converted document in this format is served as.
func (f Format) ContentType() string {
	switch f {
	case CodexAgents:
		return "text/markdown; charset=utf-8"
	case JulesManifest:
		return "application/json"
	default:
		return "text/plain; charset=utf-8"
	}
}

func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
	return f, nil
}
