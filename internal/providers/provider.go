// Package providers defines the model provider capability: given a
// message sequence and a resolved model configuration, produce a reply.
//
// Two families of implementations exist. The stub providers return a
// fixed simulated reply without any network traffic and are the default;
// the live providers call the official OpenAI and Anthropic SDKs. Both
// sit behind the same interface, so registry and handler logic is
// identical regardless of which family is active.
package providers

import (
	"context"
	"encoding/json"
	"strings"
)

// Kind identifies the external AI service a model handle represents.
type Kind string

// Supported provider kinds.
const (
	KindOpenAI    Kind = "openai"
	KindAnthropic Kind = "anthropic"
)

// ParseKind normalizes and validates a provider kind string.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(s)) {
	case KindOpenAI:
		return KindOpenAI, nil
	case KindAnthropic:
		return KindAnthropic, nil
	default:
		return "", &UnsupportedKindError{Kind: s}
	}
}

// DefaultModel returns the model identifier used when a configuration
// does not name one.
func (k Kind) DefaultModel() string {
	switch k {
	case KindAnthropic:
		return "claude-3-7-sonnet-20250219"
	default:
		return "gpt-4o"
	}
}

// DefaultTemperature is the sampling temperature applied when a
// configuration does not set one.
const DefaultTemperature = 0.7

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is a single conversational turn. Messages are transient and
// never stored beyond a single call.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Config carries the resolved generation settings for a model handle.
type Config struct {
	Model        string
	Temperature  float64
	MaxTokens    *int
	SystemPrompt string
	APIKey       string
}

// ToolCall is a function invocation request surfaced by a provider.
type ToolCall struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// Reply is the provider output for a single generation call.
// ToolCalls is nil unless the provider requested tool execution.
type Reply struct {
	Message   Message
	ToolCalls []ToolCall
}

// Provider produces a reply for a message sequence. Respond accepts a
// context so live implementations are cancellable; stub implementations
// return immediately.
type Provider interface {
	Kind() Kind
	Respond(ctx context.Context, cfg Config, messages []Message) (*Reply, error)
}
