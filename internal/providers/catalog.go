package providers

import (
	"os"

	"github.com/agentbridge/agentbridge/internal/config"
)

// Catalog resolves provider kinds to Provider implementations and API
// keys. The configured mode decides whether lookups yield the simulated
// providers or the SDK-backed clients.
type Catalog struct {
	providers map[Kind]Provider
	keyEnvs   map[Kind]string
}

// NewCatalog builds a catalog from the provider configuration.
func NewCatalog(cfg *config.ProvidersConfig) *Catalog {
	c := &Catalog{
		providers: make(map[Kind]Provider),
		keyEnvs: map[Kind]string{
			KindOpenAI:    cfg.OpenAIKeyEnv,
			KindAnthropic: cfg.AnthropicKeyEnv,
		},
	}

	if cfg.Mode == config.ProviderModeLive {
		c.providers[KindOpenAI] = newOpenAIClient()
		c.providers[KindAnthropic] = newAnthropicClient()
	} else {
		c.providers[KindOpenAI] = newStub(KindOpenAI)
		c.providers[KindAnthropic] = newStub(KindAnthropic)
	}

	return c
}

// Get returns the Provider for a kind.
func (c *Catalog) Get(kind Kind) (Provider, error) {
	p, ok := c.providers[kind]
	if !ok {
		return nil, &UnsupportedKindError{Kind: string(kind)}
	}
	return p, nil
}

// APIKey reads the API key for a kind from its configured environment
// variable. Keys come from the process environment only, never from
// request payloads.
func (c *Catalog) APIKey(kind Kind) string {
	env, ok := c.keyEnvs[kind]
	if !ok {
		return ""
	}
	return os.Getenv(env)
}
