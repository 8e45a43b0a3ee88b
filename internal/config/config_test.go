package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "practicas-api", cfg.App.Name)
	assert.Equal(t, 3000, cfg.App.Port)
	assert.Equal(t, "docs", cfg.App.DocsPath)
	assert.Equal(t, "public", cfg.App.PublicDir)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 20, cfg.Database.MaxOpen)
	assert.Equal(t, 100, cfg.Redis.RateLimit)
	assert.Equal(t, 60, cfg.Redis.RateWindowSec)
	assert.Equal(t, "practicas.events", cfg.RabbitMQ.Exchange)
	assert.Equal(t, 900, cfg.S3.PresignExpireSec)
	assert.Empty(t, cfg.Root.ApiBearerToken)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_APP_PORT", "8080")
	t.Setenv("APP_DATABASE_DSN", "postgres://u:p@localhost:5432/practicas")
	t.Setenv("APP_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "postgres://u:p@localhost:5432/practicas", cfg.Database.DSN)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_FileWithEnvExpansion(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "config.yaml"), []byte(`
app:
  name: practicas-test
database:
  dsn: ${TEST_PRACTICAS_DSN}
redis:
  rateLimit: 5
`), 0o644))
	t.Setenv("TEST_PRACTICAS_DSN", "host=db dbname=practicas")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "practicas-test", cfg.App.Name)
	assert.Equal(t, "host=db dbname=practicas", cfg.Database.DSN)
	assert.Equal(t, 5, cfg.Redis.RateLimit)
	// keys missing from the file keep their defaults
	assert.Equal(t, 3000, cfg.App.Port)
}
