package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aryannaik/arcade-search/internal/config"
	"github.com/aryannaik/arcade-search/internal/logger"
)

var (
	flagConfig  string
	flagEnv     string
	flagContent string
)

var rootCmd = &cobra.Command{
	Use:          "arcade-search",
	Short:        "Search and paginate a games site's content index",
	SilenceUsage: true,
	Long: `arcade-search serves the search page, header dropdown preview and JSON
search API for a static games site, reading the site's content.json index.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file (default config/<env>.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagEnv, "env", "", "Environment name (default $ENV or local)")
	rootCmd.PersistentFlags().StringVar(&flagContent, "content", "", "Override content.source (file path or URL)")
}

// loadConfig resolves the environment, reads the config and applies flag overrides.
func loadConfig() (config.Config, string, error) {
	env := flagEnv
	if env == "" {
		env = config.GetEnv()
	}

	var (
		cfg config.Config
		err error
	)
	if flagConfig != "" {
		cfg, err = config.LoadFile(flagConfig)
	} else {
		cfg, err = config.Load(env)
	}
	if err != nil {
		return config.Config{}, "", fmt.Errorf("cannot load config: %w", err)
	}

	if flagContent != "" {
		cfg.Content.Source = flagContent
		if cfg.IsRemoteContent() {
			cfg.Content.Watch = false
		}
	}
	return cfg, env, nil
}

func newLogger(env string, cfg config.Config) (*zap.Logger, error) {
	l, err := logger.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("cannot create logger: %w", err)
	}
	return l, nil
}
