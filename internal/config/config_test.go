package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	// Save original env and restore after test
	originalEnv := os.Environ()
	defer func() {
		os.Clearenv()
		for _, env := range originalEnv {
			for i, c := range env {
				if c == '=' {
					os.Setenv(env[:i], env[i+1:])
					break
				}
			}
		}
	}()

	// Clear env to test defaults
	os.Clearenv()

	cfg := Load()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"LogLevel", cfg.LogLevel, "info"},
		{"ChatAPIPort", cfg.ChatAPIPort, 8000},
		{"WidgetPort", cfg.WidgetPort, 7860},
		{"DatagenPort", cfg.DatagenPort, 7861},
		{"LLMProvider", cfg.LLMProvider, "ollama"},
		{"OllamaURL", cfg.OllamaURL, "http://localhost:11434"},
		{"ChatModel", cfg.ChatModel, "KolekarPramod/hrbot"},
		{"WidgetModel", cfg.WidgetModel, "KolekarPramod/hr_bot_v3"},
		{"LLMTemperature", cfg.LLMTemperature, 0.0},
		{"LLMTimeout", cfg.LLMTimeout, time.Duration(0)},
		{"DatasetModel", cfg.DatasetModel, "llama2"},
		{"ChunkSize", cfg.ChunkSize, 1000},
		{"ChunkOverlap", cfg.ChunkOverlap, 200},
		{"DatasetPath", cfg.DatasetPath, "qa_dataset.csv"},
		{"DatasetFormat", cfg.DatasetFormat, "csv"},
		{"HistoryLimit", cfg.HistoryLimit, 50},
		{"MaxUploadSize", cfg.MaxUploadSize, int64(10485760)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("expected %s=%v, got %v", tt.name, tt.expected, tt.got)
			}
		})
	}

	assert.Equal(t, []string{"llama3.2:3b", "llama3.1"}, cfg.DatasetModelChoices)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CHAT_API_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LLM_TIMEOUT", "90s")
	t.Setenv("DATASET_MODEL_CHOICES", "mistral,phi3")

	cfg := Load()

	assert.Equal(t, 9090, cfg.ChatAPIPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 90*time.Second, cfg.LLMTimeout)
	assert.Equal(t, []string{"mistral", "phi3"}, cfg.DatasetModelChoices)
}

func TestLoadProviderOverrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("OPENAI_BASE_URL", "http://gpu-box:11434/v1")

	cfg := Load()

	if cfg.LLMProvider != "openai" {
		t.Errorf("expected LLM provider 'openai', got %s", cfg.LLMProvider)
	}
	if cfg.OpenAIBaseURL != "http://gpu-box:11434/v1" {
		t.Errorf("unexpected base url %s", cfg.OpenAIBaseURL)
	}
}
