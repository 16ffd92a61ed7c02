package config

// ChatConfig holds the AI assistant settings. SystemPrompt overrides the
// built-in assistant instruction when set.
type ChatConfig struct {
	Provider     string `yaml:"provider" koanf:"provider"`
	Model        string `yaml:"model" koanf:"model"`
	SystemPrompt string `yaml:"system_prompt,omitempty" koanf:"system_prompt"`
}

// RecaptchaConfig holds the contact-form captcha settings. An empty
// SiteKey disables the captcha gate entirely.
type RecaptchaConfig struct {
	SiteKey string `yaml:"site_key" koanf:"site_key"`
	Secret  string `yaml:"secret" koanf:"secret"`
}

// Config is the top-level site configuration, corresponding to
// klimapro.yml.
type Config struct {
	Port         int             `yaml:"port" koanf:"port"`
	BaseURL      string          `yaml:"base_url" koanf:"base_url"`
	DataDir      string          `yaml:"data_dir" koanf:"data_dir"`
	AllowAllCORS bool            `yaml:"allow_all_cors" koanf:"allow_all_cors"`
	Recaptcha    RecaptchaConfig `yaml:"recaptcha" koanf:"recaptcha"`
	Chat         ChatConfig      `yaml:"chat" koanf:"chat"`
}
