package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIClient calls any OpenAI-compatible Chat Completions endpoint,
// including the one Ollama serves under /v1.
type OpenAIClient struct {
	model       openai.ChatModel
	client      *openai.Client
	temperature float64
	timeout     time.Duration
}

func NewOpenAIClient(baseURL, apiKey, model string, temperature float64, timeout time.Duration) (*OpenAIClient, error) {
	if model == "" {
		return nil, fmt.Errorf("model required")
	}
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	cli := openai.NewClient(opts...)
	return &OpenAIClient{
		model:       openai.ChatModel(model),
		client:      &cli,
		temperature: temperature,
		timeout:     timeout,
	}, nil
}

func (c *OpenAIClient) Model() string { return string(c.model) }

func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c == nil || c.client == nil {
		return "", fmt.Errorf("nil openai client")
	}
	reqCtx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(reqCtx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Messages:    buildMessages(prompt),
		Temperature: openai.Float(c.temperature),
	})
	if err != nil {
		return "", Classify("openai generate", err)
	}
	if len(resp.Choices) == 0 {
		return "", Classify("openai generate", fmt.Errorf("no choices returned"))
	}
	return resp.Choices[0].Message.Content, nil
}

func buildMessages(user string) []openai.ChatCompletionMessageParamUnion {
	return []openai.ChatCompletionMessageParamUnion{
		{
			OfUser: &openai.ChatCompletionUserMessageParam{
				Content: openai.ChatCompletionUserMessageParamContentUnion{
					OfString: openai.String(user),
				},
			},
		},
	}
}
