package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides (DRIVESHARE_API_BASE_URL, ...)
const EnvPrefix = "DRIVESHARE"

// Config represents the application configuration
type Config struct {
	Version        int           `mapstructure:"version"`
	APIBaseURL     string        `mapstructure:"api_base_url"`
	SessionFile    string        `mapstructure:"session_file"`
	LogFile        string        `mapstructure:"log_file"`
	LogLevel       string        `mapstructure:"log_level"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	UISettings     UISettings    `mapstructure:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	NotificationTTL time.Duration `mapstructure:"notification_ttl"`
	AltScreen       bool          `mapstructure:"alt_screen"`
}

// fileConfig is the on-disk layout; durations are written as "30s" strings
type fileConfig struct {
	Version        int    `toml:"version"`
	APIBaseURL     string `toml:"api_base_url"`
	SessionFile    string `toml:"session_file"`
	LogFile        string `toml:"log_file"`
	LogLevel       string `toml:"log_level"`
	RequestTimeout string `toml:"request_timeout"`
	UI             struct {
		NotificationTTL string `toml:"notification_ttl"`
		AltScreen       bool   `toml:"alt_screen"`
	} `toml:"ui"`
}

func toFile(c *Config) fileConfig {
	var f fileConfig
	f.Version = c.Version
	f.APIBaseURL = c.APIBaseURL
	f.SessionFile = c.SessionFile
	f.LogFile = c.LogFile
	f.LogLevel = c.LogLevel
	f.RequestTimeout = c.RequestTimeout.String()
	f.UI.NotificationTTL = c.UISettings.NotificationTTL.String()
	f.UI.AltScreen = c.UISettings.AltScreen
	return f
}

// Dir returns the directory holding the config and session files
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "driveshare")
}

// DefaultPath is where the config file lives unless --config says otherwise
func DefaultPath() string {
	return filepath.Join(Dir(), "config.toml")
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	dir := Dir()
	return &Config{
		Version:        1,
		APIBaseURL:     "http://localhost:5000",
		SessionFile:    filepath.Join(dir, "session.toml"),
		LogFile:        "driveshare.log",
		LogLevel:       "info",
		RequestTimeout: 30 * time.Second,
		UISettings: UISettings{
			NotificationTTL: 5 * time.Second,
			AltScreen:       true,
		},
	}
}

// Load merges defaults, the config file at path, DRIVESHARE_* environment
// variables and any flags bound in flags (flag names use dashes, keys use
// underscores). A missing file is not an error.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range map[string]string{
			"api_base_url": "api",
			"log_file":     "log-file",
			"log_level":    "log-level",
			"session_file": "session-file",
		} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("version", d.Version)
	v.SetDefault("api_base_url", d.APIBaseURL)
	v.SetDefault("session_file", d.SessionFile)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("request_timeout", d.RequestTimeout)
	v.SetDefault("ui.notification_ttl", d.UISettings.NotificationTTL)
	v.SetDefault("ui.alt_screen", d.UISettings.AltScreen)
}

// Validate checks the settings the client cannot run without
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return errors.New("api_base_url must not be empty")
	}
	if c.SessionFile == "" {
		return errors.New("session_file must not be empty")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must not be negative, got %s", c.RequestTimeout)
	}
	return nil
}

// SaveToPath saves configuration to a specific path
func SaveToPath(cfg *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(toFile(cfg))
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// EnsureFile writes the default configuration to path when no file exists yet
func EnsureFile(path string) (created bool, err error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("failed to stat config file: %w", err)
	}
	if err := SaveToPath(DefaultConfig(), path); err != nil {
		return false, err
	}
	return true, nil
}
