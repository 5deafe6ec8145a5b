package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_Defaults(t *testing.T) {
	cfg, err := LoadEnv(nil)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "https://i.pravatar.cc/48", cfg.AvatarURL)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
}

func TestLoadEnv_Overrides(t *testing.T) {
	cfg, err := LoadEnv([]string{
		"BILLSPLIT_ADDR=127.0.0.1:9090",
		"BILLSPLIT_AVATAR_URL=https://avatars.example/64",
		"BILLSPLIT_LOG_FILE=/tmp/billsplit.log",
		"LOG_LEVEL=debug",
		"UNRELATED",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Addr)
	assert.Equal(t, "https://avatars.example/64", cfg.AvatarURL)
	assert.Equal(t, "/tmp/billsplit.log", cfg.LogFile)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  []string
	}{
		{name: "bad log level", env: []string{"LOG_LEVEL=loud"}},
		{name: "address without port", env: []string{"BILLSPLIT_ADDR=localhost"}},
		{name: "avatar URL without scheme", env: []string{"BILLSPLIT_AVATAR_URL=i.pravatar.cc/48"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadEnv(tt.env)
			assert.Error(t, err)
		})
	}
}
