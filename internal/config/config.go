package config

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds runtime configuration shared by every command.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Servers
	ChatAPIPort int    `env:"CHAT_API_PORT" envDefault:"8000"`
	WidgetPort  int    `env:"WIDGET_PORT" envDefault:"7860"`
	DatagenPort int    `env:"DATAGEN_PORT" envDefault:"7861"`
	CORSOrigins string `env:"CORS_ORIGINS" envDefault:"*"`

	// Upload limits
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE" envDefault:"10485760"` // 10MB in bytes

	// LLM runtime
	LLMProvider    string        `env:"LLM_PROVIDER" envDefault:"ollama"` // "ollama" (langchaingo) or "openai" (any OpenAI-compatible endpoint)
	OllamaURL      string        `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`
	OpenAIBaseURL  string        `env:"OPENAI_BASE_URL" envDefault:"http://localhost:11434/v1"`
	OpenAIKey      string        `env:"OPENAI_API_KEY" envDefault:"ollama"`
	ChatModel      string        `env:"CHAT_MODEL" envDefault:"KolekarPramod/hrbot"`
	WidgetModel    string        `env:"WIDGET_MODEL" envDefault:"KolekarPramod/hr_bot_v3"`
	LLMTemperature float64       `env:"LLM_TEMPERATURE" envDefault:"0"`
	LLMTimeout     time.Duration `env:"LLM_TIMEOUT" envDefault:"0s"` // 0 disables the per-call timeout

	// Dataset generation
	DatasetModel        string   `env:"DATASET_MODEL" envDefault:"llama2"`
	DatasetModelChoices []string `env:"DATASET_MODEL_CHOICES" envDefault:"llama3.2:3b,llama3.1" envSeparator:","`
	ChunkSize           int      `env:"CHUNK_SIZE" envDefault:"1000"`
	ChunkOverlap        int      `env:"CHUNK_OVERLAP" envDefault:"200"`
	DatasetPath         string   `env:"DATASET_PATH" envDefault:"qa_dataset.csv"`
	DatasetFormat       string   `env:"DATASET_FORMAT" envDefault:"csv"` // "csv" or "xlsx"
	PromptsFile         string   `env:"PROMPTS_FILE"`

	// Chat transcript
	HistoryLimit int `env:"HISTORY_LIMIT" envDefault:"50"`
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}
