package app

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"

	"hrbot/internal/config"
	"hrbot/internal/llm"
	"hrbot/internal/logger"
)

// Deps bundles common runtime dependencies for commands.
type Deps struct {
	Config config.Config
	Log    *slog.Logger
	// NewLLM builds a client for a model picked at call time.
	NewLLM llm.Factory
}

// Build loads an optional .env file, config, and shared components.
func Build() (Deps, error) {
	_ = godotenv.Load()
	cfg := config.Load()
	return BuildWith(cfg, logger.New(cfg.LogLevel))
}

// BuildWith wires dependencies from an already loaded config.
func BuildWith(cfg config.Config, log *slog.Logger) (Deps, error) {
	factory, err := buildLLMFactory(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize LLM: %w", err)
	}
	return Deps{
		Config: cfg,
		Log:    log,
		NewLLM: factory,
	}, nil
}

// LLM returns a client for model, logging the provider in use.
func (d Deps) LLM(model string) (llm.Client, error) {
	client, err := d.NewLLM(model)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM client for %q: %w", model, err)
	}
	d.Log.Info("using LLM client", "provider", d.Config.LLMProvider, "model", model)
	return client, nil
}

func buildLLMFactory(cfg config.Config, log *slog.Logger) (llm.Factory, error) {
	switch cfg.LLMProvider {
	case "ollama":
		if cfg.OllamaURL == "" {
			return nil, fmt.Errorf("OLLAMA_URL is required when LLM_PROVIDER=ollama")
		}
		log.Debug("LLM provider selected", "provider", "ollama", "url", cfg.OllamaURL)
		return func(model string) (llm.Client, error) {
			c, err := llm.NewOllamaClient(cfg.OllamaURL, model, cfg.LLMTemperature, cfg.LLMTimeout)
			if err != nil {
				return nil, err
			}
			return c, nil
		}, nil
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when LLM_PROVIDER=openai")
		}
		log.Debug("LLM provider selected", "provider", "openai", "base_url", cfg.OpenAIBaseURL)
		return func(model string) (llm.Client, error) {
			c, err := llm.NewOpenAIClient(cfg.OpenAIBaseURL, cfg.OpenAIKey, model, cfg.LLMTemperature, cfg.LLMTimeout)
			if err != nil {
				return nil, err
			}
			return c, nil
		}, nil
	default:
		return nil, fmt.Errorf("invalid LLM_PROVIDER: %s (valid options: ollama, openai)", cfg.LLMProvider)
	}
}
