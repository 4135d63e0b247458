package ai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const model = openai.ChatModelGPT4o

// Completer is the one call the pipeline needs; handlers and tests accept
// this interface and main injects the real Client.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Client wraps the OpenAI SDK for JSON-mode chat completions.
type Client struct {
	client openai.Client
}

func NewClient(apiKey string) *Client {
	return &Client{client: openai.NewClient(option.WithAPIKey(apiKey))}
}

// Complete issues a single JSON-mode completion and returns the raw text.
// No retries: upstream failures surface to the route boundary.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("openai completion: empty choices")
	}
	return completion.Choices[0].Message.Content, nil
}
