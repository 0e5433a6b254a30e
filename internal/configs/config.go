// Package configs stores agent configurations in their original format and
// serves them converted into every other known format.
package configs

import (
	"fmt"
	"strings"
	"time"

	"github.com/JaimeStill/agent-adapters/internal/adapters"
	"github.com/google/uuid"
)

// Type describes what kind of agent configuration a document is.
// It is informational and does not influence conversion.
type Type string

const (
	SlashCommand    Type = "slash_command"
	AgentDefinition Type = "agent_definition"
	MCPConfig       Type = "mcp_config"
)

func (t Type) Valid() bool {
	switch t {
	case SlashCommand, AgentDefinition, MCPConfig:
		return true
	}
	return false
}

// AgentConfig is a stored configuration. Content is authoritative and is
// always expressed in OriginalFormat.
type AgentConfig struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Type           Type            `json:"type"`
	OriginalFormat adapters.Format `json:"original_format"`
	Content        string          `json:"content"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// WithConversions is an AgentConfig together with its content rendered in
// every format. It is computed per request and never stored.
type WithConversions struct {
	AgentConfig
	Conversions map[adapters.Format]string `json:"conversions"`
}

// CreateCommand contains the data required to create a new config.
type CreateCommand struct {
	Name           string          `json:"name"`
	Type           Type            `json:"type"`
	OriginalFormat adapters.Format `json:"original_format"`
	Content        string          `json:"content"`
}

func (c CreateCommand) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name required", ErrInvalidConfig)
	}
	if c.Content == "" {
		return fmt.Errorf("%w: content required", ErrInvalidConfig)
	}
	if !c.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, c.Type)
	}
	if !c.OriginalFormat.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.OriginalFormat)
	}
	return nil
}

// UpdateCommand replaces only the fields that are set.
type UpdateCommand struct {
	Name           *string          `json:"name,omitempty"`
	Type           *Type            `json:"type,omitempty"`
	OriginalFormat *adapters.Format `json:"original_format,omitempty"`
	Content        *string          `json:"content,omitempty"`
}

func (c UpdateCommand) Validate() error {
	if c.Name != nil && strings.TrimSpace(*c.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidConfig)
	}
	if c.Content != nil && *c.Content == "" {
		return fmt.Errorf("%w: content cannot be empty", ErrInvalidConfig)
	}
	if c.Type != nil && !c.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, *c.Type)
	}
	if c.OriginalFormat != nil && !c.OriginalFormat.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, *c.OriginalFormat)
	}
	return nil
}

// ConvertRequest is an ad-hoc conversion of text that is not stored.
type ConvertRequest struct {
	From    adapters.Format `json:"from"`
	To      adapters.Format `json:"to"`
	Content string          `json:"content"`
}

type ConvertResponse struct {
	From    adapters.Format `json:"from"`
	To      adapters.Format `json:"to"`
	Content string          `json:"content"`
}

// Capabilities lists the known formats and the conversions available between them.
type Capabilities struct {
	Formats []adapters.Format `json:"formats"`
	Pairs   []adapters.Pair   `json:"pairs"`
}
