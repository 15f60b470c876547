package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the arcade-search configuration.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Content ContentConfig `yaml:"content"`
	Search  SearchConfig  `yaml:"search"`
	Site    SiteConfig    `yaml:"site"`
	Logging LoggingConfig `yaml:"logging"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// ContentConfig locates the content index.
type ContentConfig struct {
	Source string `yaml:"source"` // file path or http(s) URL of content.json
	Build  string `yaml:"build"`  // appended as ?v= on HTTP fetches
	Watch  bool   `yaml:"watch"`  // invalidate on file change (file sources only)
}

// SearchConfig holds search page and dropdown settings.
type SearchConfig struct {
	PageSize     int `yaml:"page_size"`
	PreviewLimit int `yaml:"preview_limit"`
	DebounceMS   int `yaml:"debounce_ms"`
}

// SiteConfig holds values rendered into every page.
type SiteConfig struct {
	Name      string `yaml:"name"`
	BaseURL   string `yaml:"base_url"`
	StaticDir string `yaml:"static_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Load reads config/<env>.yaml after loading .env into the environment.
func Load(env string) (Config, error) {
	_ = godotenv.Load()
	return LoadFile(findConfigPath(env))
}

// LoadFile reads, expands, defaults and validates the YAML file at path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.Port == 0 {
		c.HTTP.Port = 8081
	}
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Content.Source == "" {
		c.Content.Source = "_site/content.json"
	}
	if c.Search.PageSize <= 0 {
		c.Search.PageSize = 10
	}
	if c.Search.PreviewLimit <= 0 {
		c.Search.PreviewLimit = 5
	}
	if c.Search.DebounceMS <= 0 {
		c.Search.DebounceMS = 300
	}
	if c.Site.Name == "" {
		c.Site.Name = "Bros Unblocked"
	}
	if c.Site.BaseURL == "" {
		c.Site.BaseURL = "/bros-unblocked/"
	}
	if !strings.HasSuffix(c.Site.BaseURL, "/") {
		c.Site.BaseURL += "/"
	}
	if c.Site.StaticDir == "" {
		c.Site.StaticDir = "static"
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if !strings.HasPrefix(c.Site.BaseURL, "/") {
		return fmt.Errorf("site.base_url must start with /, got %q", c.Site.BaseURL)
	}
	if c.Content.Watch && c.IsRemoteContent() {
		return fmt.Errorf("content.watch requires a file source, got %q", c.Content.Source)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}

// IsRemoteContent reports whether the content source is an HTTP(S) URL.
func (c *Config) IsRemoteContent() bool {
	return strings.HasPrefix(c.Content.Source, "http://") || strings.HasPrefix(c.Content.Source, "https://")
}

func findConfigPath(env string) string {
	return filepath.Join("config", env+".yaml")
}

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1])
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
