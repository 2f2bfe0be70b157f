// Package config loads workspace configuration from the .agplan
// directory, with AGPLAN_* environment variables taking precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/tbickford/agplan/internal/ai"
)

// FileName is the config file name inside the workspace directory.
const FileName = "config.yaml"

// DefaultAdminPassword guards the admin commands until the user sets
// their own password.
const DefaultAdminPassword = "0665"

// Config holds the workspace settings.
type Config struct {
	// Model is the Gemini model used for plan and report generation
	Model string `mapstructure:"model"`
	// AdminPassword unlocks plan generation, import and other admin actions
	AdminPassword string `mapstructure:"admin_password"`
	// APIKey is the Gemini API key. Prefer setting AGPLAN_API_KEY over
	// writing the key into the config file.
	APIKey string `mapstructure:"api_key"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Model:         ai.DefaultModel,
		AdminPassword: DefaultAdminPassword,
	}
}

// Load reads config.yaml from the workspace directory. A missing file
// is not an error; defaults and environment variables still apply.
func Load(workspaceDir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(workspaceDir)
	v.SetEnvPrefix("AGPLAN")
	v.AutomaticEnv()

	defaults := Default()
	v.SetDefault("model", defaults.Model)
	v.SetDefault("admin_password", defaults.AdminPassword)
	v.SetDefault("api_key", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// WriteDefault writes a starter config.yaml into the workspace
// directory. Existing files are left alone.
func WriteDefault(workspaceDir string) error {
	path := filepath.Join(workspaceDir, FileName)
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	content := fmt.Sprintf(`# agplan workspace configuration.
# Environment variables with the AGPLAN_ prefix override these values,
# e.g. AGPLAN_API_KEY, AGPLAN_MODEL.

model: %s
admin_password: %q
# api_key: your-gemini-api-key
`, ai.DefaultModel, DefaultAdminPassword)

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
