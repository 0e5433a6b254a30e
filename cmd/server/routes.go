package main

import (
	"net/http"

	"github.com/JaimeStill/agent-adapters/internal/api"
	"github.com/JaimeStill/agent-adapters/internal/infrastructure"
	"github.com/JaimeStill/agent-adapters/internal/lifecycle"
)

// buildRouter mounts the probes at the root and the API under api.BasePath.
func buildRouter(infra *infrastructure.Infrastructure, apiHandler http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", handleHealthCheck)
	mux.HandleFunc("GET /readyz", handleReadiness(infra.Lifecycle))
	mux.Handle(api.BasePath+"/", apiHandler)

	return mux
}

func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func handleReadiness(rc lifecycle.ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !rc.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	}
}
