package logger

import (
	"path/filepath"
	"testing"

	"github.com/ds611b/practicas/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		env     string
		wantErr bool
	}{
		{name: "debug console", level: "debug", env: "debug"},
		{name: "info json", level: "INFO", env: "release"},
		{name: "unknown level", level: "loud", env: "debug", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.App.Name = "practicas-api"
			cfg.App.Env = tt.env
			cfg.Log.Level = tt.level

			log, err := New(cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, log)
		})
	}
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	cfg := &config.Config{}
	cfg.App.Env = "release"
	cfg.Log.Level = "info"
	cfg.Log.File = config.LogFileCfg{Enabled: true, Path: path, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1}

	log, err := New(cfg)
	require.NoError(t, err)
	log.Info("hello")
	_ = log.Sync()

	assert.FileExists(t, path)
}
