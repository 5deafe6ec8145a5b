// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strings"

	"github.com/mmynk/billsplit/internal/widget"
	"github.com/mmynk/billsplit/pkg/logging"
)

const (
	envAddr      = "BILLSPLIT_ADDR"
	envAvatarURL = "BILLSPLIT_AVATAR_URL"
	envLogFile   = "BILLSPLIT_LOG_FILE"
	envLogLevel  = "LOG_LEVEL"
)

// Config captures runtime configuration for the application.
type Config struct {
	// Addr is the listen address of the web widget and API.
	Addr string
	// AvatarURL is the default image base offered by the add-friend form.
	AvatarURL string
	// LogFile receives logs while the terminal widget owns the screen.
	// Empty discards them.
	LogFile  string
	LogLevel slog.Level
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Addr:      ":8080",
		AvatarURL: widget.DefaultAvatarURL,
		LogLevel:  slog.LevelInfo,
	}
}

// Load reads configuration from the process environment.
func Load() (Config, error) {
	return LoadEnv(os.Environ())
}

// LoadEnv allows tests to supply a specific environment.
func LoadEnv(environ []string) (Config, error) {
	env := parseEnv(environ)
	cfg := Default()

	if v := env[envAddr]; v != "" {
		cfg.Addr = v
	}
	if v := env[envAvatarURL]; v != "" {
		cfg.AvatarURL = v
	}
	cfg.LogFile = env[envLogFile]
	if v := env[envLogLevel]; v != "" {
		level, ok := logging.ParseLevel(v)
		if !ok {
			return Config{}, fmt.Errorf("invalid %s %q", envLogLevel, v)
		}
		cfg.LogLevel = level
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the address and avatar URL are usable.
func (c Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return fmt.Errorf("invalid listen address %q: %w", c.Addr, err)
	}
	u, err := url.Parse(c.AvatarURL)
	if err != nil {
		return fmt.Errorf("invalid avatar URL %q: %w", c.AvatarURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid avatar URL %q: scheme must be http or https", c.AvatarURL)
	}
	return nil
}

func parseEnv(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if ok {
			env[k] = v
		}
	}
	return env
}
