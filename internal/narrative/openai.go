package narrative

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// maxCompletionTokens bounds the narrative length requested from the
// model.
const maxCompletionTokens = 120

// OpenAIGenerator generates the narrative with an OpenAI chat completion.
type OpenAIGenerator struct {
	client    *openai.Client
	model     openai.ChatModel
	maxTokens int64
}

// NewOpenAIGenerator builds a Generator backed by gpt-4o-mini.
func NewOpenAIGenerator(apiKey string) *OpenAIGenerator {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIGenerator{
		client:    &client,
		model:     openai.ChatModelGPT4oMini,
		maxTokens: maxCompletionTokens,
	}
}

// Summarize implements Generator with a single chat-completion call.
func (g *OpenAIGenerator) Summarize(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: g.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		MaxTokens: openai.Int(g.maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}
	return resp.Choices[0].Message.Content, nil
}
