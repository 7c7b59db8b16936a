package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// OllamaClient calls a locally hosted Ollama runtime.
type OllamaClient struct {
	model       string
	llm         *ollama.LLM
	temperature float64
	timeout     time.Duration
}

// NewOllamaClient does not check that the model has been pulled; a missing
// model surfaces as a generation failure on first use.
func NewOllamaClient(serverURL, model string, temperature float64, timeout time.Duration) (*OllamaClient, error) {
	if model == "" {
		return nil, fmt.Errorf("model required")
	}
	l, err := ollama.New(
		ollama.WithServerURL(serverURL),
		ollama.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ollama: %w", err)
	}
	return &OllamaClient{
		model:       model,
		llm:         l,
		temperature: temperature,
		timeout:     timeout,
	}, nil
}

func (c *OllamaClient) Model() string { return c.model }

func (c *OllamaClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c == nil || c.llm == nil {
		return "", fmt.Errorf("nil ollama client")
	}
	reqCtx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	out, err := llms.GenerateFromSinglePrompt(reqCtx, c.llm, prompt, llms.WithTemperature(c.temperature))
	if err != nil {
		return "", Classify("ollama generate", err)
	}
	return out, nil
}
