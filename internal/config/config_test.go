package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmolchanov/magequest/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "{}\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "memory", cfg.Persistence.Mode)
	assert.Equal(t, "default", cfg.Persistence.Slot)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
logging:
  level: debug
  format: console
persistence:
  mode: postgres
  slot: classroom-7b
database:
  host: db.internal
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "classroom-7b", cfg.Persistence.Slot)
	assert.Equal(t, "db.internal", cfg.Database.Host)
}

func TestLoad_RejectsInvalidLogLevel(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: verbose\n")
	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidPersistenceMode(t *testing.T) {
	path := writeConfig(t, "persistence:\n  mode: redis\n")
	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsEmptySlot(t *testing.T) {
	path := writeConfig(t, "persistence:\n  slot: \"\"\n")
	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestValidate_DatabaseOnlyCheckedForPostgres(t *testing.T) {
	// Memory mode must not require database settings.
	cfg := config.Config{
		Server:      config.ServerConfig{Port: 8080},
		Logging:     config.LoggingConfig{Level: "info", Format: "json"},
		Persistence: config.PersistenceConfig{Mode: "memory", Slot: "default"},
	}
	assert.NoError(t, cfg.Validate())

	cfg.Persistence.Mode = "postgres"
	assert.Error(t, cfg.Validate(), "postgres mode requires database settings")
}

func TestDatabaseDSN(t *testing.T) {
	d := config.DatabaseConfig{
		Host: "localhost", Port: 5432, User: "mq", Password: "pw",
		Name: "magequest", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://mq:pw@localhost:5432/magequest?sslmode=disable", d.DSN())
}
