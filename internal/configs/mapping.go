package configs

import (
	"net/url"

	"github.com/JaimeStill/agent-adapters/pkg/query"
	"github.com/JaimeStill/agent-adapters/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "agent_configs", "c").
	Project("id", "ID").
	Project("name", "Name").
	Project("type", "Type").
	Project("original_format", "OriginalFormat").
	Project("content", "Content").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "Name"}

const returning = "RETURNING id, name, type, original_format, content, created_at, updated_at"

func scanConfig(s repository.Scanner) (AgentConfig, error) {
	var c AgentConfig
	err := s.Scan(&c.ID, &c.Name, &c.Type, &c.OriginalFormat, &c.Content, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// Filters contains optional filtering criteria for config queries.
type Filters struct {
	Name   *string
	Type   *string
	Format *string
}

// FiltersFromQuery reads name, type and format from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters
	if v := values.Get("name"); v != "" {
		f.Name = &v
	}
	if v := values.Get("type"); v != "" {
		f.Type = &v
	}
	if v := values.Get("format"); v != "" {
		f.Format = &v
	}
	return f
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereContains("Name", f.Name).
		WhereEquals("Type", f.Type).
		WhereEquals("OriginalFormat", f.Format)
}
