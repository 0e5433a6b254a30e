package adapters_test

import (
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/JaimeStill/agent-adapters/internal/adapters"
)

type manifest struct {
	ManifestVersion string `json:"manifestVersion"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Steps           []struct {
		ID     string `json:"id"`
		Action string `json:"action"`
	} `json:"steps"`
}

func TestParseFormat(t *testing.T) {
	for _, f := range adapters.Formats() {
		got, err := adapters.ParseFormat(string(f))
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %q, %v", f, got, err)
		}
	}

	if _, err := adapters.ParseFormat("cursor_rules"); !errors.Is(err, adapters.ErrUnknownFormat) {
		t.Errorf("ParseFormat(unknown) error = %v, want ErrUnknownFormat", err)
	}
}

func TestFormats_Order(t *testing.T) {
	want := []adapters.Format{adapters.ClaudeCode, adapters.CodexAgents, adapters.JulesManifest}
	if got := adapters.Formats(); !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestRegistry_Register(t *testing.T) {
	identity := func(s string) string { return s }

	tests := []struct {
		name    string
		from    adapters.Format
		to      adapters.Format
		fn      adapters.Adapter
		wantErr bool
	}{
		{"valid", adapters.CodexAgents, adapters.ClaudeCode, identity, false},
		{"self", adapters.ClaudeCode, adapters.ClaudeCode, identity, true},
		{"nil adapter", adapters.ClaudeCode, adapters.CodexAgents, nil, true},
		{"unknown format", "yaml", adapters.CodexAgents, identity, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := adapters.NewRegistry().Register(tt.from, tt.to, tt.fn)
			if tt.wantErr {
				if !errors.Is(err, adapters.ErrInvalidRegistration) {
					t.Errorf("Register() error = %v, want ErrInvalidRegistration", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Register() error = %v", err)
			}
		})
	}
}

func TestRegistry_Register_LastWriteWins(t *testing.T) {
	r := adapters.NewRegistry()
	r.Register(adapters.ClaudeCode, adapters.CodexAgents, func(string) string { return "first" })
	r.Register(adapters.ClaudeCode, adapters.CodexAgents, func(string) string { return "second" })

	got, err := r.Convert(adapters.ClaudeCode, adapters.CodexAgents, "x")
	if err != nil || got != "second" {
		t.Errorf("Convert() = %q, %v, want second", got, err)
	}
}

func TestRegistry_Convert_Identity(t *testing.T) {
	r := adapters.NewRegistry()
	called := false
	r.Register(adapters.CodexAgents, adapters.ClaudeCode, func(s string) string {
		called = true
		return s
	})

	input := "  /build\n\nanything goes\t"
	for _, f := range adapters.Formats() {
		got, err := r.Convert(f, f, input)
		if err != nil {
			t.Fatalf("Convert(%s, %s) error = %v", f, f, err)
		}
		if got != input {
			t.Errorf("Convert(%s, %s) = %q, want input unchanged", f, f, got)
		}
	}
	if called {
		t.Error("identity conversion invoked an adapter")
	}
}

func TestRegistry_Convert_NotFound(t *testing.T) {
	r := adapters.NewDefaultRegistry()

	_, err := r.Convert(adapters.CodexAgents, adapters.ClaudeCode, "# Codex Agent Command")
	if !errors.Is(err, adapters.ErrAdapterNotFound) {
		t.Fatalf("Convert() error = %v, want ErrAdapterNotFound", err)
	}
	if !strings.Contains(err.Error(), "codex_agents->claude_code") {
		t.Errorf("error %q does not name the pair", err)
	}

	if _, err := r.Convert(adapters.CodexAgents, adapters.JulesManifest, ""); !errors.Is(err, adapters.ErrAdapterNotFound) {
		t.Errorf("Convert() chained through an intermediate format: %v", err)
	}
}

func TestRegistry_SupportedTargets(t *testing.T) {
	r := adapters.NewDefaultRegistry()

	want := []adapters.Format{adapters.CodexAgents, adapters.JulesManifest}
	if got := r.SupportedTargets(adapters.ClaudeCode); !slices.Equal(got, want) {
		t.Errorf("SupportedTargets(claude_code) = %v, want %v", got, want)
	}
	if got := r.SupportedTargets(adapters.JulesManifest); len(got) != 0 {
		t.Errorf("SupportedTargets(jules_manifest) = %v, want empty", got)
	}
	if got := r.Pairs(); len(got) != 2 {
		t.Errorf("Pairs() = %v, want 2 pairs", got)
	}
}

func TestClaudeToCodex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			"command with body",
			"/build\nCreate build script",
			[]string{"# Codex Agent Command", "## Command\n/build\n", "## Description\nCreate build script"},
		},
		{
			"multi-line body",
			"/review\nCheck style\nCheck tests",
			[]string{"/review", "Check style\nCheck tests"},
		},
		{
			"name only",
			"/deploy",
			[]string{"/deploy", "No description provided"},
		},
		{
			"blank body",
			"/deploy\n   \n",
			[]string{"No description provided"},
		},
		{
			"no leading slash",
			"lint\nRun linters",
			[]string{"## Command\n/lint\n"},
		},
		{
			"empty input",
			"",
			[]string{"# Codex Agent Command", "No description provided"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adapters.ClaudeToCodex(tt.input)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("output missing %q:\n%s", w, got)
				}
			}
		})
	}
}

func TestClaudeToCodex_StripsOneSlash(t *testing.T) {
	got := adapters.ClaudeToCodex("//double")
	if !strings.Contains(got, "## Command\n//double\n") {
		t.Errorf("expected exactly one slash stripped:\n%s", got)
	}
}

func TestClaudeToCodex_TrimsNameLine(t *testing.T) {
	got := adapters.ClaudeToCodex("/build \r\nX")
	if !strings.Contains(got, "## Command\n/build\n") {
		t.Errorf("trailing whitespace kept on name line:\n%s", got)
	}
}

func TestClaudeToCodex_TrimsBodyEdges(t *testing.T) {
	got := adapters.ClaudeToCodex("/x\n  indented\n    nested  \n\n")
	if !strings.Contains(got, "## Description\nindented\n    nested\n") {
		t.Errorf("body edges not trimmed or inner indentation lost:\n%s", got)
	}
}

func TestClaudeToJules(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantActions []string
	}{
		{"command with body", "/build\nCreate build script", []string{"build", "Create build script"}},
		{"skips blank lines", "/test\n\n  run unit tests  \n\n", []string{"test", "run unit tests"}},
		{"strips slash on every line", "/a\n/b", []string{"a", "b"}},
		{"empty input", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := adapters.ClaudeToJules(tt.input)

			var m manifest
			if err := json.Unmarshal([]byte(out), &m); err != nil {
				t.Fatalf("output is not JSON: %v\n%s", err, out)
			}

			if m.ManifestVersion != "1.0.0" {
				t.Errorf("manifestVersion = %q, want 1.0.0", m.ManifestVersion)
			}
			if m.Name != "claude-imported-command" {
				t.Errorf("name = %q", m.Name)
			}
			if len(m.Steps) != len(tt.wantActions) {
				t.Fatalf("len(steps) = %d, want %d", len(m.Steps), len(tt.wantActions))
			}
			for i, step := range m.Steps {
				if step.Action != tt.wantActions[i] {
					t.Errorf("steps[%d].action = %q, want %q", i, step.Action, tt.wantActions[i])
				}
				if want := "step-" + string(rune('1'+i)); step.ID != want {
					t.Errorf("steps[%d].id = %q, want %q", i, step.ID, want)
				}
			}
		})
	}
}

func TestClaudeToJules_EmptyStepsArray(t *testing.T) {
	out := adapters.ClaudeToJules("")
	if !strings.Contains(out, `"steps": []`) {
		t.Errorf("empty input should emit an empty steps array:\n%s", out)
	}
}

func TestDefaults_EndToEnd(t *testing.T) {
	r := adapters.NewDefaultRegistry()
	input := "/build\nCreate build script"

	codex, err := r.Convert(adapters.ClaudeCode, adapters.CodexAgents, input)
	if err != nil {
		t.Fatalf("Convert(codex) error = %v", err)
	}
	for _, want := range []string{"# Codex Agent Command", "/build", "Create build script"} {
		if !strings.Contains(codex, want) {
			t.Errorf("codex output missing %q", want)
		}
	}

	jules, err := r.Convert(adapters.ClaudeCode, adapters.JulesManifest, input)
	if err != nil {
		t.Fatalf("Convert(jules) error = %v", err)
	}
	var m manifest
	if err := json.Unmarshal([]byte(jules), &m); err != nil {
		t.Fatalf("jules output is not JSON: %v", err)
	}
	if len(m.Steps) != 2 || m.Steps[0].Action != "build" {
		t.Errorf("steps = %+v, want 2 steps starting with build", m.Steps)
	}
}

func TestRegisterDefaults_Twice(t *testing.T) {
	r := adapters.NewRegistry()
	if err := adapters.RegisterDefaults(r); err != nil {
		t.Fatalf("RegisterDefaults() error = %v", err)
	}
	if err := adapters.RegisterDefaults(r); err != nil {
		t.Errorf("second RegisterDefaults() error = %v", err)
	}
}
