package handlers_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/agent-adapters/pkg/handlers"
)

func TestRespondJSON(t *testing.T) {
	w := httptest.NewRecorder()
	handlers.RespondJSON(w, http.StatusCreated, map[string]string{"name": "build"})

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", w.Code, http.StatusCreated)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var got map[string]string
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["name"] != "build" {
		t.Errorf("name = %q, want build", got["name"])
	}
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		err    error
	}{
		{"bad request", http.StatusBadRequest, errors.New("invalid type")},
		{"internal", http.StatusInternalServerError, errors.New("boom")},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handlers.RespondError(w, logger, tt.status, tt.err)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}

			var body map[string]string
			json.NewDecoder(w.Body).Decode(&body)
			if body["error"] != tt.err.Error() {
				t.Errorf("error = %q, want %q", body["error"], tt.err.Error())
			}
		})
	}
}

func TestRespondText(t *testing.T) {
	w := httptest.NewRecorder()
	handlers.RespondText(w, http.StatusOK, "text/markdown; charset=utf-8", "# Codex Agent Command")

	if ct := w.Header().Get("Content-Type"); ct != "text/markdown; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	if w.Body.String() != "# Codex Agent Command" {
		t.Errorf("body = %q", w.Body.String())
	}
}
