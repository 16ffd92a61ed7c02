package config

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:    8080,
		BaseURL: "http://localhost:8080",
		DataDir: "data",
		Chat: ChatConfig{
			Provider: "gemini",
			Model:    "gemini-2.0-flash-exp",
		},
	}
}
