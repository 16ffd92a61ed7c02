package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to klimapro.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to klimapro! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 2. Canonical site URL.
	urlPrompt := promptui.Prompt{
		Label:   "Canonical site URL",
		Default: cfg.BaseURL,
	}
	cfg.BaseURL, err = urlPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}

	// 3. Data directory.
	dataPrompt := promptui.Prompt{
		Label:   "Data directory (leads database)",
		Default: cfg.DataDir,
	}
	cfg.DataDir, err = dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	// 4. Chat provider.
	providerPrompt := promptui.Select{
		Label: "AI assistant provider",
		Items: []string{"gemini", "openai", "none"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("chat provider: %w", err)
	}
	switch providerStr {
	case "none":
		cfg.Chat = ChatConfig{}
	case "openai":
		cfg.Chat = ChatConfig{Provider: "openai", Model: "gpt-4o-mini"}
	default:
		cfg.Chat = ChatConfig{Provider: "gemini", Model: "gemini-2.0-flash-exp"}
	}

	// 5. reCAPTCHA.
	siteKeyPrompt := promptui.Prompt{
		Label:   "reCAPTCHA site key (leave blank to disable)",
		Default: "",
	}
	cfg.Recaptcha.SiteKey, err = siteKeyPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("recaptcha site key: %w", err)
	}
	if cfg.Recaptcha.SiteKey != "" {
		secretPrompt := promptui.Prompt{
			Label: "reCAPTCHA secret",
			Mask:  '*',
		}
		cfg.Recaptcha.Secret, err = secretPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("recaptcha secret: %w", err)
		}
	}

	// Check for API key.
	if envVar := APIKeyEnvVar(cfg.Chat.Provider); envVar != "" {
		if os.Getenv(envVar) == "" {
			fmt.Printf("\nNote: Set %s in your environment before running klimapro serve.\n", envVar)
		}
	}

	// Save to klimapro.yml.
	configPath := "klimapro.yml"
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}
