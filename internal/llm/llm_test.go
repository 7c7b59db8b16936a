package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrbot/internal/apperr"
)

func TestClassify(t *testing.T) {
	refused := &url.Error{Op: "Post", URL: "http://localhost:11434/api/chat", Err: syscall.ECONNREFUSED}

	tests := []struct {
		name string
		err  error
		want apperr.Kind
	}{
		{"connection refused", refused, apperr.KindBackendUnavailable},
		{"deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), apperr.KindBackendUnavailable},
		{"flattened dial error", errors.New(`Post "http://localhost:11434/api/chat": dial tcp 127.0.0.1:11434: connect: connection refused`), apperr.KindBackendUnavailable},
		{"model missing", errors.New(`model "llama2" not found, try pulling it first`), apperr.KindGeneration},
		{"already typed", apperr.New(apperr.KindExtraction, "pdf", errors.New("bad xref")), apperr.KindExtraction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Classify("op", tt.err)
			require.Error(t, err)
			assert.Equal(t, tt.want, apperr.KindOf(err))
			assert.ErrorIs(t, err, tt.err)
		})
	}

	assert.NoError(t, Classify("op", nil))
}

func TestConstructorsRequireModel(t *testing.T) {
	_, err := NewOllamaClient("http://localhost:11434", "", 0, 0)
	assert.Error(t, err)

	_, err = NewOpenAIClient("http://localhost:11434/v1", "ollama", "", 0, 0)
	assert.Error(t, err)
}

func TestOpenAIClientGenerate(t *testing.T) {
	var gotPrompt, gotModel string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotModel = body.Model
		if len(body.Messages) > 0 {
			gotPrompt = body.Messages[0].Content
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1,
			"model": "KolekarPramod/hrbot",
			"choices": [{"index": 0, "finish_reason": "stop",
				"message": {"role": "assistant", "content": "Annual leave is 20 days."}}]
		}`))
	}))
	defer srv.Close()

	client, err := NewOpenAIClient(srv.URL+"/v1/", "ollama", "KolekarPramod/hrbot", 0, 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "KolekarPramod/hrbot", client.Model())

	out, err := client.Generate(context.Background(), "How much annual leave do I get?")
	require.NoError(t, err)
	assert.Equal(t, "Annual leave is 20 days.", out)
	assert.Equal(t, "How much annual leave do I get?", gotPrompt)
	assert.Equal(t, "KolekarPramod/hrbot", gotModel)
}

func TestOpenAIClientServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": {"message": "model not found", "type": "api_error"}}`))
	}))
	defer srv.Close()

	client, err := NewOpenAIClient(srv.URL+"/v1/", "ollama", "missing", 0, 0)
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "hello")
	require.Error(t, err)
	assert.Equal(t, apperr.KindGeneration, apperr.KindOf(err))
}

func TestClientsBackendUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	openaiClient, err := NewOpenAIClient(addr+"/v1/", "ollama", "m", 0, 0)
	require.NoError(t, err)
	ollamaClient, err := NewOllamaClient(addr, "m", 0, 0)
	require.NoError(t, err)

	for name, c := range map[string]Client{"openai": openaiClient, "ollama": ollamaClient} {
		t.Run(name, func(t *testing.T) {
			_, err := c.Generate(context.Background(), "hello")
			require.Error(t, err)
			assert.Equal(t, apperr.KindBackendUnavailable, apperr.KindOf(err))
		})
	}
}
