package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file
const (
	EnvAPIURL     = "SHORTLIST_API_URL"
	EnvAddr       = "SHORTLIST_ADDR"
	EnvDBPath     = "SHORTLIST_DB_PATH"
	EnvTimeout    = "SHORTLIST_TIMEOUT"
	EnvMaxRetries = "SHORTLIST_MAX_RETRIES"
)

// Config represents the application configuration
type Config struct {
	Server      ServerConfig `yaml:"server"`
	Client      ClientConfig `yaml:"client"`
	KeyMappings KeyMappings  `yaml:"key_mappings"`
	ColorScheme ColorScheme  `yaml:"theme"`
}

// ServerConfig configures `shortlist serve`
type ServerConfig struct {
	Addr   string `yaml:"addr"`
	DBPath string `yaml:"db_path"` // empty means ~/.shortlist/shortlist.db
}

// ClientConfig configures the connection to the remote store
type ClientConfig struct {
	APIURL     string        `yaml:"api_url"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads config from the user's config directory, then applies .env and
// SHORTLIST_* environment overrides. Returns the default config if the file
// doesn't exist.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}

	configPath, err := getConfigPath()
	if err != nil {
		slog.Debug("cannot determine config path, using defaults", "error", err)
	} else if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	return cfg, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path of the config file
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "shortlist", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "shortlist", "config.yaml"), nil
}

// applyEnv overrides file values with environment variables
func (c *Config) applyEnv() {
	c.Client.APIURL = getEnv(EnvAPIURL, c.Client.APIURL)
	c.Server.Addr = getEnv(EnvAddr, c.Server.Addr)
	c.Server.DBPath = getEnv(EnvDBPath, c.Server.DBPath)

	if v := os.Getenv(EnvTimeout); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Client.Timeout = parsed
		} else {
			slog.Warn("ignoring invalid timeout", "env", EnvTimeout, "value", v)
		}
	}
	if v := os.Getenv(EnvMaxRetries); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Client.MaxRetries = parsed
		} else {
			slog.Warn("ignoring invalid retry count", "env", EnvMaxRetries, "value", v)
		}
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = "127.0.0.1:8080"
	}
	if c.Client.APIURL == "" {
		c.Client.APIURL = "http://127.0.0.1:8080"
	}
	if c.Client.Timeout <= 0 {
		c.Client.Timeout = 10 * time.Second
	}
	if c.Client.MaxRetries <= 0 {
		c.Client.MaxRetries = 3
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
