package adapters

import "fmt"

// RegisterDefaults installs the built-in converters.
func RegisterDefaults(r *Registry) error {
	defaults := []struct {
		from, to Format
		fn       Adapter
	}{
		{ClaudeCode, CodexAgents, ClaudeToCodex},
		{ClaudeCode, JulesManifest, ClaudeToJules},
	}

	for _, d := range defaults {
		if err := r.Register(d.from, d.to, d.fn); err != nil {
			return fmt.Errorf("register default %s->%s: %w", d.from, d.to, err)
		}
	}
	return nil
}

// NewDefaultRegistry returns a registry with the built-in converters installed.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	if err := RegisterDefaults(r); err != nil {
		panic(err)
	}
	return r
}
