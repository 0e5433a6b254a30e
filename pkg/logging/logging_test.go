package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/JaimeStill/agent-adapters/pkg/logging"
)

func TestLevel_ToSlogLevel(t *testing.T) {
	tests := []struct {
		level    logging.Level
		expected slog.Level
	}{
		{logging.LevelDebug, slog.LevelDebug},
		{logging.LevelInfo, slog.LevelInfo},
		{logging.LevelWarn, slog.LevelWarn},
		{logging.LevelError, slog.LevelError},
		{logging.Level("unknown"), slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			if got := tt.level.ToSlogLevel(); got != tt.expected {
				t.Errorf("ToSlogLevel() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFormat_Validate(t *testing.T) {
	if err := logging.FormatJSON.Validate(); err != nil {
		t.Errorf("Validate(json) error = %v", err)
	}
	if err := logging.Format("xml").Validate(); err == nil {
		t.Error("Validate(xml) succeeded, want error")
	}
}

func TestConfig_Finalize_Defaults(t *testing.T) {
	cfg := &logging.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Level != logging.LevelInfo {
		t.Errorf("Level = %q, want %q", cfg.Level, logging.LevelInfo)
	}
	if cfg.Format != logging.FormatText {
		t.Errorf("Format = %q, want %q", cfg.Format, logging.FormatText)
	}
}

func TestConfig_Finalize_EnvOverrides(t *testing.T) {
	os.Setenv("TEST_LOG_LEVEL", "debug")
	os.Setenv("TEST_LOG_FORMAT", "json")
	defer func() {
		os.Unsetenv("TEST_LOG_LEVEL")
		os.Unsetenv("TEST_LOG_FORMAT")
	}()

	cfg := &logging.Config{}
	env := &logging.Env{Level: "TEST_LOG_LEVEL", Format: "TEST_LOG_FORMAT"}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Level != logging.LevelDebug {
		t.Errorf("Level = %q, want %q", cfg.Level, logging.LevelDebug)
	}
	if cfg.Format != logging.FormatJSON {
		t.Errorf("Format = %q, want %q", cfg.Format, logging.FormatJSON)
	}
}

func TestConfig_Finalize_InvalidLevel(t *testing.T) {
	cfg := &logging.Config{Level: "loud"}
	if err := cfg.Finalize(nil); err == nil {
		t.Error("Finalize() succeeded with invalid level, want error")
	}
}

func TestConfig_Merge(t *testing.T) {
	base := &logging.Config{Level: logging.LevelInfo, Format: logging.FormatText}
	base.Merge(&logging.Config{Format: logging.FormatJSON})

	if base.Level != logging.LevelInfo {
		t.Errorf("Level = %q, want %q", base.Level, logging.LevelInfo)
	}
	if base.Format != logging.FormatJSON {
		t.Errorf("Format = %q, want %q", base.Format, logging.FormatJSON)
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&logging.Config{Level: logging.LevelInfo, Format: logging.FormatJSON}, &buf)

	logger.Debug("hidden")
	logger.Info("config converted", "format", "codex_agents")

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "hidden") {
		t.Error("debug record written at info level")
	}

	var record map[string]any
	if err := json.Unmarshal([]byte(out), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, out)
	}
	if record["format"] != "codex_agents" {
		t.Errorf("format attr = %v, want codex_agents", record["format"])
	}
}
