package configs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/agent-adapters/internal/adapters"
	"github.com/JaimeStill/agent-adapters/internal/cache"
	"github.com/JaimeStill/agent-adapters/pkg/pagination"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Service is the only component that combines storage, the conversion
// cache and the adapter registry.
type Service struct {
	repo     Repository
	cache    cache.System
	registry *adapters.Registry
	logger   *slog.Logger
}

func NewService(repo Repository, cache cache.System, registry *adapters.Registry, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		registry: registry,
		logger:   logger.With("system", "configs.service"),
	}
}

func (s *Service) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[AgentConfig], error) {
	return s.repo.List(ctx, page, filters)
}

func (s *Service) Find(ctx context.Context, id uuid.UUID) (*AgentConfig, error) {
	return s.repo.Find(ctx, id)
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*AgentConfig, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, cmd)
}

// Update applies cmd and drops every cached conversion of the config.
// A missing id yields (nil, nil) and leaves the cache untouched.
func (s *Service) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*AgentConfig, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	cfg, err := s.repo.Update(ctx, id, cmd)
	if err != nil || cfg == nil {
		return cfg, err
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Error("cache invalidation failed", "id", id, "error", err)
		return nil, fmt.Errorf("invalidate conversions: %w", err)
	}
	return cfg, nil
}

// Delete removes the config and its cached conversions. Deleting an
// unknown id succeeds.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Error("cache invalidation failed", "id", id, "error", err)
		return fmt.Errorf("invalidate conversions: %w", err)
	}
	return nil
}

// WithConversions renders cfg in every known format. The original format is
// served from Content; the others are resolved concurrently through the
// cache. The first failure cancels the remaining work and is returned as is.
func (s *Service) WithConversions(ctx context.Context, cfg *AgentConfig) (*WithConversions, error) {
	formats := adapters.Formats()
	results := make([]string, len(formats))

	g, gctx := errgroup.WithContext(ctx)
	for i, f := range formats {
		if f == cfg.OriginalFormat {
			results[i] = cfg.Content
			continue
		}
		g.Go(func() error {
			out, err := s.resolve(gctx, cfg, f)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error("conversion failed", "id", cfg.ID, "error", err)
		return nil, err
	}

	conversions := make(map[adapters.Format]string, len(formats))
	for i, f := range formats {
		conversions[f] = results[i]
	}

	return &WithConversions{
		AgentConfig: *cfg,
		Conversions: conversions,
	}, nil
}

// FindWithConversions returns (nil, nil) when id does not exist.
func (s *Service) FindWithConversions(ctx context.Context, id uuid.UUID) (*WithConversions, error) {
	cfg, err := s.repo.Find(ctx, id)
	if err != nil || cfg == nil {
		return nil, err
	}
	return s.WithConversions(ctx, cfg)
}

// Convert renders cfg in a single format using the same cache path as WithConversions.
func (s *Service) Convert(ctx context.Context, cfg *AgentConfig, to adapters.Format) (string, error) {
	if to == cfg.OriginalFormat {
		return cfg.Content, nil
	}
	return s.resolve(ctx, cfg, to)
}

// ConvertText converts unsaved text. Nothing is cached.
func (s *Service) ConvertText(req ConvertRequest) (*ConvertResponse, error) {
	if !req.From.Valid() {
		return nil, fmt.Errorf("%w: from %q", ErrInvalidFormat, req.From)
	}
	if !req.To.Valid() {
		return nil, fmt.Errorf("%w: to %q", ErrInvalidFormat, req.To)
	}

	out, err := s.registry.Convert(req.From, req.To, req.Content)
	if err != nil {
		return nil, err
	}
	return &ConvertResponse{From: req.From, To: req.To, Content: out}, nil
}

func (s *Service) Capabilities() Capabilities {
	return Capabilities{
		Formats: adapters.Formats(),
		Pairs:   s.registry.Pairs(),
	}
}

func (s *Service) resolve(ctx context.Context, cfg *AgentConfig, to adapters.Format) (string, error) {
	if cached, ok, err := s.cache.Get(ctx, cfg.ID, to); err != nil {
		return "", err
	} else if ok {
		return cached, nil
	}

	out, err := s.registry.Convert(cfg.OriginalFormat, to, cfg.Content)
	if err != nil {
		return "", err
	}

	if err := s.cache.Put(ctx, cfg.ID, to, out); err != nil {
		return "", err
	}
	return out, nil
}
