package configs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/JaimeStill/agent-adapters/internal/adapters"
	"github.com/JaimeStill/agent-adapters/internal/cache"
	"github.com/JaimeStill/agent-adapters/internal/configs"
	"github.com/JaimeStill/agent-adapters/internal/lifecycle"
	"github.com/JaimeStill/agent-adapters/pkg/pagination"
	"github.com/google/uuid"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// memRepo is an in-memory configs.Repository. It enforces the same
// (name, original_format) uniqueness as the agent_configs table.
type memRepo struct {
	mu      sync.Mutex
	configs map[uuid.UUID]configs.AgentConfig
	deletes int
}

func newMemRepo() *memRepo {
	return &memRepo{configs: make(map[uuid.UUID]configs.AgentConfig)}
}

func (m *memRepo) taken(name string, format adapters.Format, except uuid.UUID) bool {
	for id, c := range m.configs {
		if id != except && c.Name == name && c.OriginalFormat == format {
			return true
		}
	}
	return false
}

func (m *memRepo) List(ctx context.Context, page pagination.PageRequest, filters configs.Filters) (*pagination.PageResult[configs.AgentConfig], error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var items []configs.AgentConfig
	for _, c := range m.configs {
		if filters.Type != nil && string(c.Type) != *filters.Type {
			continue
		}
		items = append(items, c)
	}
	result := pagination.NewPageResult(items, len(items), 1, len(items))
	return &result, nil
}

func (m *memRepo) Find(ctx context.Context, id uuid.UUID) (*configs.AgentConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.configs[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *memRepo) Create(ctx context.Context, cmd configs.CreateCommand) (*configs.AgentConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.taken(cmd.Name, cmd.OriginalFormat, uuid.Nil) {
		return nil, configs.ErrDuplicate
	}

	now := time.Now()
	c := configs.AgentConfig{
		ID:             uuid.New(),
		Name:           cmd.Name,
		Type:           cmd.Type,
		OriginalFormat: cmd.OriginalFormat,
		Content:        cmd.Content,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	m.configs[c.ID] = c
	return &c, nil
}

func (m *memRepo) Update(ctx context.Context, id uuid.UUID, cmd configs.UpdateCommand) (*configs.AgentConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.configs[id]
	if !ok {
		return nil, nil
	}
	if cmd.Name != nil {
		c.Name = *cmd.Name
	}
	if cmd.Type != nil {
		c.Type = *cmd.Type
	}
	if cmd.OriginalFormat != nil {
		c.OriginalFormat = *cmd.OriginalFormat
	}
	if cmd.Content != nil {
		c.Content = *cmd.Content
	}
	if m.taken(c.Name, c.OriginalFormat, id) {
		return nil, configs.ErrDuplicate
	}
	c.UpdatedAt = time.Now()
	m.configs[id] = c
	return &c, nil
}

func (m *memRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.configs, id)
	m.deletes++
	return nil
}

var errBoom = errors.New("boom")

// failCache fails whichever operations are switched on.
type failCache struct {
	getErr        error
	putErr        error
	invalidateErr error
}

func (c *failCache) Get(ctx context.Context, id uuid.UUID, format adapters.Format) (string, bool, error) {
	return "", false, c.getErr
}

func (c *failCache) Put(ctx context.Context, id uuid.UUID, format adapters.Format, content string) error {
	return c.putErr
}

func (c *failCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	return c.invalidateErr
}

func (c *failCache) Start(lc *lifecycle.Coordinator) error { return nil }

// countingRegistry wraps the default adapters with a call counter.
func countingRegistry(calls *atomic.Int32) *adapters.Registry {
	r := adapters.NewRegistry()
	r.Register(adapters.ClaudeCode, adapters.CodexAgents, func(s string) string {
		calls.Add(1)
		return adapters.ClaudeToCodex(s)
	})
	r.Register(adapters.ClaudeCode, adapters.JulesManifest, func(s string) string {
		calls.Add(1)
		return adapters.ClaudeToJules(s)
	})
	return r
}

type fixture struct {
	repo  *memRepo
	cache *cache.Memory
	calls *atomic.Int32
	svc   *configs.Service
}

func newFixture() *fixture {
	f := &fixture{
		repo:  newMemRepo(),
		cache: cache.NewMemory(time.Hour, discard),
		calls: &atomic.Int32{},
	}
	f.svc = configs.NewService(f.repo, f.cache, countingRegistry(f.calls), discard)
	return f
}

func (f *fixture) create(content string) *configs.AgentConfig {
	cfg, err := f.svc.Create(context.Background(), configs.CreateCommand{
		Name:           "build",
		Type:           configs.SlashCommand,
		OriginalFormat: adapters.ClaudeCode,
		Content:        content,
	})
	if err != nil {
		panic(err)
	}
	return cfg
}
