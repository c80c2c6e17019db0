package providers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// openAIClient implements Provider against the OpenAI Chat Completions
// API using the official SDK.
type openAIClient struct{}

func newOpenAIClient() *openAIClient {
	return &openAIClient{}
}

func (p *openAIClient) Kind() Kind {
	return KindOpenAI
}

func (p *openAIClient) Respond(ctx context.Context, cfg Config, messages []Message) (*Reply, error) {
	var opts []option.RequestOption
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	client := openai.NewClient(opts...)

	params := openai.ChatCompletionNewParams{
		Messages:    buildOpenAIMessages(cfg, messages),
		Model:       cfg.Model,
		Temperature: openai.Float(cfg.Temperature),
	}
	if cfg.MaxTokens != nil {
		params.MaxCompletionTokens = openai.Int(int64(*cfg.MaxTokens))
	}

	resp, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai api error: no choices returned")
	}

	choice := resp.Choices[0]
	reply := &Reply{
		Message: Message{Role: RoleAssistant, Content: choice.Message.Content},
	}
	for _, tc := range choice.Message.ToolCalls {
		reply.ToolCalls = append(reply.ToolCalls, ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: json.RawMessage(tc.Function.Arguments),
		})
	}
	return reply, nil
}

func buildOpenAIMessages(cfg Config, messages []Message) []openai.ChatCompletionMessageParamUnion {
	var out []openai.ChatCompletionMessageParamUnion
	if cfg.SystemPrompt != "" {
		out = append(out, openai.SystemMessage(cfg.SystemPrompt))
	}
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}
