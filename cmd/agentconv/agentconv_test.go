package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvert_Stdin(t *testing.T) {
	out, err := run(t, "/build\nCreate build script", "convert", "--to", "codex_agents")
	if err != nil {
		t.Fatalf("convert error = %v", err)
	}
	for _, want := range []string{"# Codex Agent Command", "/build", "Create build script"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConvert_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.md")
	os.WriteFile(path, []byte("/build\nCreate build script"), 0o644)

	out, err := run(t, "", "convert", "--from", "claude_code", "--to", "jules_manifest", path)
	if err != nil {
		t.Fatalf("convert error = %v", err)
	}

	var m struct {
		Steps []struct {
			Action string `json:"action"`
		} `json:"steps"`
	}
	if err := json.Unmarshal([]byte(out), &m); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(m.Steps) != 2 || m.Steps[0].Action != "build" {
		t.Errorf("steps = %+v", m.Steps)
	}
}

func TestConvert_AllYAML(t *testing.T) {
	out, err := run(t, "/build\nCreate build script", "convert", "--all", "--output", "yaml", "-")
	if err != nil {
		t.Fatalf("convert error = %v", err)
	}

	var set struct {
		From        string            `yaml:"from"`
		Conversions map[string]string `yaml:"conversions"`
	}
	if err := yaml.Unmarshal([]byte(out), &set); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out)
	}
	if set.From != "claude_code" {
		t.Errorf("from = %q", set.From)
	}
	if len(set.Conversions) != 3 {
		t.Errorf("len(conversions) = %d, want 3", len(set.Conversions))
	}
	if set.Conversions["claude_code"] != "/build\nCreate build script" {
		t.Errorf("original entry = %q", set.Conversions["claude_code"])
	}
}

func TestConvert_AllText(t *testing.T) {
	out, err := run(t, "/deploy", "convert", "--all")
	if err != nil {
		t.Fatalf("convert error = %v", err)
	}
	for _, want := range []string{"==> claude_code <==", "==> codex_agents <==", "==> jules_manifest <==", "No description provided"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no adapter", []string{"convert", "--from", "jules_manifest", "--to", "claude_code"}, "adapter not found"},
		{"unknown format", []string{"convert", "--to", "cursor_rules"}, "unknown format"},
		{"bad output", []string{"convert", "--to", "codex_agents", "-o", "xml"}, "unsupported output"},
		{"missing target", []string{"convert"}, "to all"},
		{"missing file", []string{"convert", "--to", "codex_agents", "/nonexistent/build.md"}, "read input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "", tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestFormats(t *testing.T) {
	out, err := run(t, "", "formats")
	if err != nil {
		t.Fatalf("formats error = %v", err)
	}
	want := "claude_code\n  -> codex_agents\n  -> jules_manifest\ncodex_agents\njules_manifest\n"
	if out != want {
		t.Errorf("output =\n%s\nwant\n%s", out, want)
	}

	out, err = run(t, "", "formats", "-o", "json")
	if err != nil {
		t.Fatalf("formats json error = %v", err)
	}
	var infos []struct {
		Name    string   `json:"name"`
		Targets []string `json:"targets"`
	}
	if err := json.Unmarshal([]byte(out), &infos); err != nil || len(infos) != 3 {
		t.Errorf("json output = %s (%v)", out, err)
	}
}
