package config

import (
	"fmt"
	"os"
)

const (
	// EnvProvidersMode overrides the provider execution mode.
	EnvProvidersMode = "PROVIDERS_MODE"

	// ProviderModeStub selects the simulated provider implementations.
	ProviderModeStub = "stub"

	// ProviderModeLive selects the SDK-backed provider implementations.
	ProviderModeLive = "live"
)

// ProvidersConfig controls how model providers are constructed.
//
// Mode selects between the simulated providers (the default) and the
// SDK-backed clients. The key env fields name the environment variables
// API keys are read from; keys are never accepted in request bodies.
type ProvidersConfig struct {
	Mode            string `toml:"mode"`
	OpenAIKeyEnv    string `toml:"openai_key_env"`
	AnthropicKeyEnv string `toml:"anthropic_key_env"`
}

// Finalize applies defaults, loads environment overrides, and validates the provider configuration.
func (c *ProvidersConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies non-zero values from the overlay configuration.
func (c *ProvidersConfig) Merge(overlay *ProvidersConfig) {
	if overlay.Mode != "" {
		c.Mode = overlay.Mode
	}
	if overlay.OpenAIKeyEnv != "" {
		c.OpenAIKeyEnv = overlay.OpenAIKeyEnv
	}
	if overlay.AnthropicKeyEnv != "" {
		c.AnthropicKeyEnv = overlay.AnthropicKeyEnv
	}
}

func (c *ProvidersConfig) loadDefaults() {
	if c.Mode == "" {
		c.Mode = ProviderModeStub
	}
	if c.OpenAIKeyEnv == "" {
		c.OpenAIKeyEnv = "OPENAI_API_KEY"
	}
	if c.AnthropicKeyEnv == "" {
		c.AnthropicKeyEnv = "ANTHROPIC_API_KEY"
	}
}

func (c *ProvidersConfig) loadEnv() {
	if v := os.Getenv(EnvProvidersMode); v != "" {
		c.Mode = v
	}
}

func (c *ProvidersConfig) validate() error {
	switch c.Mode {
	case ProviderModeStub, ProviderModeLive:
		return nil
	default:
		return fmt.Errorf("invalid providers mode: %s (must be stub or live)", c.Mode)
	}
}
