package database

import (
	"io/fs"
	"strings"
	"testing"
)

func TestMigrations_Paired(t *testing.T) {
	entries, err := fs.ReadDir(migrations, "migrations")
	if err != nil {
		t.Fatalf("read migrations: %v", err)
	}

	ups, downs := map[string]bool{}, map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}

	if len(ups) == 0 {
		t.Fatal("no up migrations embedded")
	}
	for v := range ups {
		if !downs[v] {
			t.Errorf("migration %s has no down file", v)
		}
	}
}

func TestMigrations_CreatesAgentConfigs(t *testing.T) {
	b, err := fs.ReadFile(migrations, "migrations/000001_create_agent_configs.up.sql")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(b), "CREATE TABLE IF NOT EXISTS agent_configs") {
		t.Error("initial migration does not create agent_configs")
	}
}

func TestMigrations_UniqueNameFormat(t *testing.T) {
	b, err := fs.ReadFile(migrations, "migrations/000002_unique_config_name_format.up.sql")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(b), "UNIQUE (name, original_format)") {
		t.Error("missing unique constraint on (name, original_format)")
	}
}
