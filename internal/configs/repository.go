package configs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/agent-adapters/pkg/pagination"
	"github.com/JaimeStill/agent-adapters/pkg/query"
	"github.com/JaimeStill/agent-adapters/pkg/repository"
	"github.com/google/uuid"
)

// Repository is durable storage for original configs. Find and Update
// report a missing id as (nil, nil); Delete of a missing id succeeds.
type Repository interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[AgentConfig], error)
	Find(ctx context.Context, id uuid.UUID) (*AgentConfig, error)
	Create(ctx context.Context, cmd CreateCommand) (*AgentConfig, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*AgentConfig, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// NewRepository creates a PostgreSQL-backed Repository.
func NewRepository(db *sql.DB, logger *slog.Logger, pagination pagination.Config) Repository {
	return &repo{
		db:         db,
		logger:     logger.With("system", "configs"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[AgentConfig], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name", "Content")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count configs: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanConfig)
	if err != nil {
		return nil, fmt.Errorf("query configs: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*AgentConfig, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	c, err := repository.QueryOne(ctx, r.db, q, args, scanConfig)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find config: %w", err)
	}
	return &c, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*AgentConfig, error) {
	q := `
		INSERT INTO agent_configs (name, type, original_format, content)
		VALUES ($1, $2, $3, $4)
		` + returning

	c, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (AgentConfig, error) {
		return repository.QueryOne(ctx, tx, q, []any{cmd.Name, cmd.Type, cmd.OriginalFormat, cmd.Content}, scanConfig)
	})
	if err != nil {
		return nil, fmt.Errorf("create config: %w", repository.MapError(err, ErrNotFound, ErrDuplicate))
	}

	r.logger.Info("config created", "id", c.ID, "name", c.Name, "format", c.OriginalFormat)
	return &c, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*AgentConfig, error) {
	q := `
		UPDATE agent_configs
		SET name = COALESCE($1, name),
			type = COALESCE($2, type),
			original_format = COALESCE($3, original_format),
			content = COALESCE($4, content),
			updated_at = NOW()
		WHERE id = $5
		` + returning

	args := []any{nullable(cmd.Name), nullable(cmd.Type), nullable(cmd.OriginalFormat), nullable(cmd.Content), id}

	c, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (AgentConfig, error) {
		return repository.QueryOne(ctx, tx, q, args, scanConfig)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update config: %w", repository.MapError(err, ErrNotFound, ErrDuplicate))
	}

	r.logger.Info("config updated", "id", c.ID, "name", c.Name)
	return &c, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM agent_configs WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete config: %w", err)
	}

	r.logger.Info("config deleted", "id", id)
	return nil
}

// nullable turns an unset pointer into SQL NULL so COALESCE keeps the
// stored value, and dereferences a set one.
func nullable[T ~string](p *T) any {
	if p == nil {
		return nil
	}
	return string(*p)
}
