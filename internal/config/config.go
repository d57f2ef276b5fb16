// filepath: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Built-in defaults. The secret directory is owned by the surrounding
// installation and must exist before a write; the tool never creates it.
const (
	DefaultSecretDirectory = "./crypto_data"
	DefaultSecretFileName  = "link_secret.txt"
	DefaultLogLevel        = "info"
)

// Config holds the application's configuration.
type Config struct {
	Secret  SecretConfig  `toml:"secret"`
	Logging LoggingConfig `toml:"logging"`
}

// SecretConfig decides where the link secret file is written.
type SecretConfig struct {
	Directory string `toml:"directory"`
	FileName  string `toml:"file_name"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level        string `toml:"level"`
	AuditEnabled bool   `toml:"audit_enabled"`
}

// LoadConfig loads the configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig writes the current configuration back to a TOML file.
func SaveConfig(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file for saving: %w", err)
	}
	defer f.Close()
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config to file: %w", err)
	}
	return nil
}

// LoadDotEnv loads overrides from a '.env' file at the working directory.
// A missing '.env' is not an error.
func (c *Config) LoadDotEnv(getwd func() (string, error)) error {
	wd, err := getwd()
	if err != nil {
		return err
	}

	envMap, err := godotenv.Read(filepath.Join(wd, ".env"))

	switch {
	case err == nil:
		c.LoadEnv(func(key string) string {
			return envMap[key]
		})
		return nil
	case errors.Is(err, os.ErrNotExist):
		return nil
	default:
		return err
	}
}

// LoadEnv applies non-empty environment values over the current configuration.
func (c *Config) LoadEnv(getenv func(string) string) {
	if v := getenv("LINKSECRET_SECRET_DIR"); v != "" {
		c.Secret.Directory = v
	}
	if v := getenv("LINKSECRET_SECRET_FILE"); v != "" {
		c.Secret.FileName = v
	}
	if v := getenv("LINKSECRET_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := getenv("LINKSECRET_AUDIT_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Logging.AuditEnabled = b
		}
	}
}

// ApplyDefaults fills every value that is still unset with its default.
func (c *Config) ApplyDefaults() {
	if c.Secret.Directory == "" {
		c.Secret.Directory = DefaultSecretDirectory
	}
	if c.Secret.FileName == "" {
		c.Secret.FileName = DefaultSecretFileName
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
}
