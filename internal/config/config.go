package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (KLIMAPRO_*). Nested keys use double
// underscores: KLIMAPRO_CHAT__MODEL -> chat.model.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: KLIMAPRO_PORT -> port, etc.
	if err := k.Load(env.Provider("KLIMAPRO_", ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, "KLIMAPRO_"))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validChatProviders is the set of recognized chat provider values.
var validChatProviders = map[string]bool{
	"gemini": true,
	"google": true,
	"openai": true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.Chat.Provider != "" && !validChatProviders[c.Chat.Provider] {
		return fmt.Errorf("invalid chat provider %q: must be one of gemini, openai", c.Chat.Provider)
	}
	if c.Chat.Provider != "" && c.Chat.Model == "" {
		return fmt.Errorf("chat model is required when a chat provider is set")
	}
	if c.Recaptcha.SiteKey != "" && c.Recaptcha.Secret == "" {
		return fmt.Errorf("recaptcha secret is required when a site key is set")
	}
	return nil
}

// APIKeyEnvVar returns the conventional environment variable name for
// the API key of the given chat provider.
func APIKeyEnvVar(provider string) string {
	switch provider {
	case "gemini", "google":
		return "GOOGLE_API_KEY"
	case "openai":
		return "OPENAI_API_KEY"
	default:
		return ""
	}
}
