// Package api assembles the HTTP API from the domain handlers.
package api

import (
	"net/http"

	"github.com/JaimeStill/agent-adapters/internal/adapters"
	"github.com/JaimeStill/agent-adapters/internal/config"
	"github.com/JaimeStill/agent-adapters/internal/configs"
	"github.com/JaimeStill/agent-adapters/internal/infrastructure"
	"github.com/JaimeStill/agent-adapters/pkg/middleware"
	"github.com/JaimeStill/agent-adapters/pkg/routes"
)

// BasePath prefixes every API route.
const BasePath = "/api"

// Domain holds the domain systems built on top of the infrastructure.
type Domain struct {
	Registry *adapters.Registry
	Configs  *configs.Service
}

// NewDomain wires the adapter registry, the config repository and the
// conversion cache into the config service.
func NewDomain(infra *infrastructure.Infrastructure, cfg *config.Config) (*Domain, error) {
	registry := adapters.NewRegistry()
	if err := adapters.RegisterDefaults(registry); err != nil {
		return nil, err
	}

	repo := configs.NewRepository(infra.Database.Connection(), infra.Logger, cfg.Pagination)

	return &Domain{
		Registry: registry,
		Configs:  configs.NewService(repo, infra.Cache, registry, infra.Logger),
	}, nil
}

// NewHandler mounts the domain routes under BasePath on mux and returns the
// API handler wrapped in its middleware.
func NewHandler(domain *Domain, infra *infrastructure.Infrastructure, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()
	Register(mux, domain, infra, cfg)

	return middleware.Chain(mux,
		middleware.Logger(infra.Logger),
		middleware.TrimSlash(),
		middleware.MaxBody(cfg.Server.MaxBodySizeBytes()),
	)
}

// Register adds every API route to mux.
func Register(mux *http.ServeMux, domain *Domain, infra *infrastructure.Infrastructure, cfg *config.Config) {
	handler := configs.NewHandler(domain.Configs, infra.Logger, cfg.Pagination)
	routes.Register(mux, BasePath, handler.Routes()...)
}
