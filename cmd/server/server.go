package main

import (
	"time"

	"github.com/JaimeStill/agent-adapters/internal/api"
	"github.com/JaimeStill/agent-adapters/internal/config"
	"github.com/JaimeStill/agent-adapters/internal/infrastructure"
	"github.com/JaimeStill/agent-adapters/internal/server"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	infra *infrastructure.Infrastructure
	http  server.System
}

// NewServer creates and wires every subsystem without starting any of them.
func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	domain, err := api.NewDomain(infra, cfg)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra, api.NewHandler(domain, infra, cfg))

	infra.Logger.Info("server initialized",
		"addr", cfg.Server.Addr(),
		"cache", cfg.Cache.Backend,
		"conversions", len(domain.Registry.Pairs()),
	)

	return &Server{
		infra: infra,
		http:  server.New(&cfg.Server, router, cfg.ShutdownTimeoutDuration(), infra.Logger),
	}, nil
}

// Start begins all subsystems. Readiness flips once startup hooks finish.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

// Shutdown stops all subsystems within timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
