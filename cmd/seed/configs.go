package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/JaimeStill/agent-adapters/internal/configs"
)

func init() {
	registerSeeder(&ConfigSeeder{})
}

// ConfigSeedData is the JSON layout of a config seed file.
type ConfigSeedData struct {
	Configs []configs.CreateCommand `json:"configs"`
}

// ConfigSeeder inserts sample agent configs. Entries whose name and format
// already exist are skipped, so re-running is safe.
type ConfigSeeder struct {
	file string
}

func (s *ConfigSeeder) Name() string {
	return "configs"
}

func (s *ConfigSeeder) Description() string {
	return "Seeds sample Claude Code slash commands"
}

// SetFile configures an external seed file path, overriding the embedded default.
func (s *ConfigSeeder) SetFile(path string) {
	s.file = path
}

func (s *ConfigSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	data, err := s.loadSeedData()
	if err != nil {
		return err
	}

	for _, cmd := range data.Configs {
		if err := cmd.Validate(); err != nil {
			return fmt.Errorf("config %q: %w", cmd.Name, err)
		}
		if err := s.save(ctx, tx, cmd); err != nil {
			return fmt.Errorf("save config %q: %w", cmd.Name, err)
		}
	}
	return nil
}

func (s *ConfigSeeder) loadSeedData() (*ConfigSeedData, error) {
	var content []byte
	var err error

	if s.file != "" {
		content, err = os.ReadFile(s.file)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	} else {
		content, err = seedFiles.ReadFile("seeds/configs.json")
		if err != nil {
			return nil, fmt.Errorf("read embedded seed file: %w", err)
		}
	}

	var data ConfigSeedData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return &data, nil
}

func (s *ConfigSeeder) save(ctx context.Context, tx *sql.Tx, cmd configs.CreateCommand) error {
	const query = `
		INSERT INTO agent_configs (name, type, original_format, content)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name, original_format) DO NOTHING`

	_, err := tx.ExecContext(ctx, query, cmd.Name, string(cmd.Type), string(cmd.OriginalFormat), cmd.Content)
	return err
}
