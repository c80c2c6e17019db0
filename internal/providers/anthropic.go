package providers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicMaxTokens is the Messages API token ceiling applied when a
// model configuration does not set one; the Anthropic API requires it.
const anthropicMaxTokens = 4096

// anthropicClient implements Provider against the Anthropic Messages API
// using the official SDK.
type anthropicClient struct{}

func newAnthropicClient() *anthropicClient {
	return &anthropicClient{}
}

func (p *anthropicClient) Kind() Kind {
	return KindAnthropic
}

func (p *anthropicClient) Respond(ctx context.Context, cfg Config, messages []Message) (*Reply, error) {
	var opts []option.RequestOption
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	client := anthropic.NewClient(opts...)

	maxTokens := int64(anthropicMaxTokens)
	if cfg.MaxTokens != nil {
		maxTokens = int64(*cfg.MaxTokens)
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(cfg.Model),
		Messages:    buildAnthropicMessages(messages),
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(cfg.Temperature),
	}
	if system := buildAnthropicSystem(cfg, messages); len(system) > 0 {
		params.System = system
	}

	resp, err := client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic api error: %w", err)
	}

	reply := &Reply{Message: Message{Role: RoleAssistant}}
	for _, block := range resp.Content {
		switch block.Type {
		case "text":
			reply.Message.Content += block.AsText().Text
		case "tool_use":
			toolBlock := block.AsToolUse()
			args, _ := json.Marshal(toolBlock.Input)
			reply.ToolCalls = append(reply.ToolCalls, ToolCall{
				ID:        toolBlock.ID,
				Name:      toolBlock.Name,
				Arguments: args,
			})
		}
	}
	return reply, nil
}

func buildAnthropicMessages(messages []Message) []anthropic.MessageParam {
	var out []anthropic.MessageParam
	for _, m := range messages {
		if m.Content == "" || m.Role == RoleSystem {
			continue
		}
		block := anthropic.NewTextBlock(m.Content)
		if m.Role == RoleAssistant {
			out = append(out, anthropic.NewAssistantMessage(block))
		} else {
			out = append(out, anthropic.NewUserMessage(block))
		}
	}
	return out
}

// buildAnthropicSystem collects the configured system prompt and any
// system-role messages; the Messages API carries them out of band.
func buildAnthropicSystem(cfg Config, messages []Message) []anthropic.TextBlockParam {
	var blocks []anthropic.TextBlockParam
	if cfg.SystemPrompt != "" {
		blocks = append(blocks, anthropic.TextBlockParam{Text: cfg.SystemPrompt})
	}
	for _, m := range messages {
		if m.Role == RoleSystem && m.Content != "" {
			blocks = append(blocks, anthropic.TextBlockParam{Text: m.Content})
		}
	}
	return blocks
}
