package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables that override values read from the YAML file.
const (
	EnvRoot = "TEXTSEARCH_ROOT"
	EnvAddr = "TEXTSEARCH_ADDR"
)

// HTTPConfig configures the web front-end.
type HTTPConfig struct {
	Addr             string `yaml:"addr"`
	ReadTimeoutSecs  int    `yaml:"read_timeout_secs"`
	WriteTimeoutSecs int    `yaml:"write_timeout_secs"`
}

// ReadTimeout returns the read timeout as a duration.
func (c HTTPConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSecs) * time.Second
}

// WriteTimeout returns the write timeout as a duration.
func (c HTTPConfig) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSecs) * time.Second
}

// LimitsConfig bounds a single search call. Zero MaxFiles or TimeoutSecs
// disables that budget.
type LimitsConfig struct {
	MaxResults  int `yaml:"max_results"`
	MaxPerFile  int `yaml:"max_per_file"`
	MaxFiles    int `yaml:"max_files"`
	TimeoutSecs int `yaml:"timeout_secs"`
}

// Timeout returns the per-search wall clock budget.
func (c LimitsConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSecs) * time.Second
}

// MessagesConfig holds the fixed strings appended to result batches.
type MessagesConfig struct {
	Truncated string `yaml:"truncated"`
	NoResults string `yaml:"no_results"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Root      string         `yaml:"root"`
	Extension string         `yaml:"extension"`
	HTTP      HTTPConfig     `yaml:"http"`
	Limits    LimitsConfig   `yaml:"limits"`
	Messages  MessagesConfig `yaml:"messages"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default()
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	applyConfigDefaults(&cfg)
	applyEnv(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./textsearch.yaml first, then ~/.config/textsearch/config.yaml.
// If neither exists, it writes defaults to ~/.config/textsearch/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "textsearch.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := Default()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	applyEnv(cfg)
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate reports configuration values the service cannot run with.
func (c *AppConfig) Validate() error {
	if c.Root == "" {
		return errors.New("root directory is not set")
	}
	if c.Limits.MaxResults <= 0 {
		return fmt.Errorf("limits.max_results must be positive, got %d", c.Limits.MaxResults)
	}
	if c.Limits.MaxPerFile <= 0 {
		return fmt.Errorf("limits.max_per_file must be positive, got %d", c.Limits.MaxPerFile)
	}
	if c.Limits.MaxFiles < 0 {
		return fmt.Errorf("limits.max_files must not be negative, got %d", c.Limits.MaxFiles)
	}
	if c.Limits.TimeoutSecs < 0 {
		return fmt.Errorf("limits.timeout_secs must not be negative, got %d", c.Limits.TimeoutSecs)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "textsearch", "config.yaml"), nil
}

// Default returns the built-in configuration.
func Default() *AppConfig {
	return &AppConfig{
		Root:      "./DIR",
		Extension: ".txt",
		HTTP:      HTTPConfig{Addr: "127.0.0.1:8080", ReadTimeoutSecs: 10, WriteTimeoutSecs: 30},
		Limits:    LimitsConfig{MaxResults: 10, MaxPerFile: 10},
		Messages: MessagesConfig{
			Truncated: "Only the first 10 results are shown for now; follow the link for more.",
			NoResults: "No data found.",
		},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	def := Default()
	if cfg.Root == "" {
		cfg.Root = def.Root
	}
	if cfg.Extension == "" {
		cfg.Extension = def.Extension
	}
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = def.HTTP.Addr
	}
	if cfg.HTTP.ReadTimeoutSecs == 0 {
		cfg.HTTP.ReadTimeoutSecs = def.HTTP.ReadTimeoutSecs
	}
	if cfg.HTTP.WriteTimeoutSecs == 0 {
		cfg.HTTP.WriteTimeoutSecs = def.HTTP.WriteTimeoutSecs
	}
	if cfg.Limits.MaxResults == 0 {
		cfg.Limits.MaxResults = def.Limits.MaxResults
	}
	if cfg.Limits.MaxPerFile == 0 {
		cfg.Limits.MaxPerFile = def.Limits.MaxPerFile
	}
	if cfg.Messages.Truncated == "" {
		cfg.Messages.Truncated = def.Messages.Truncated
	}
	if cfg.Messages.NoResults == "" {
		cfg.Messages.NoResults = def.Messages.NoResults
	}
}

func applyEnv(cfg *AppConfig) {
	if v := os.Getenv(EnvRoot); v != "" {
		cfg.Root = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.HTTP.Addr = v
	}
}
