package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/billsplit/internal/config"
	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/internal/storage/memory"
	"github.com/mmynk/billsplit/internal/widget"
	"github.com/mmynk/billsplit/pkg/logging"
)

var (
	avatarURL string
	logLevel  string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "billsplit",
	Short: "Split bills with friends and keep a running balance",
	Long: `billsplit keeps a list of friends with a running balance and lets you
split a bill with one of them. The widget runs in the browser (serve) or in
the terminal (tui). State lives in memory for the lifetime of the process.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&avatarURL, "avatar-url", "", "Default image URL for new friends (overrides BILLSPLIT_AVATAR_URL)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides LOG_LEVEL)")
	rootCmd.AddCommand(serveCmd, tuiCmd)
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("billsplit %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("billsplit %s\n", version)
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("error loading config: %w", err)
	}
	if avatarURL != "" {
		cfg.AvatarURL = avatarURL
	}
	if logLevel != "" {
		level, ok := logging.ParseLevel(logLevel)
		if !ok {
			return config.Config{}, fmt.Errorf("invalid --log-level %q", logLevel)
		}
		cfg.LogLevel = level
	}
	return cfg, cfg.Validate()
}

// newController builds the widget every front-end drives.
func newController(cfg config.Config, opts ...widget.Option) *widget.Controller {
	opts = append([]widget.Option{widget.WithAvatarURL(cfg.AvatarURL)}, opts...)
	return widget.New(memory.New(models.SeedFriends()), opts...)
}
