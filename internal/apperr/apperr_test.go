package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNil(t *testing.T) {
	assert.NoError(t, New(KindGeneration, "op", nil))
}

func TestKindOf(t *testing.T) {
	base := errors.New("connection refused")

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"direct", New(KindBackendUnavailable, "ollama", base), KindBackendUnavailable},
		{"wrapped", fmt.Errorf("chunk 3: %w", New(KindExtraction, "pdf", base)), KindExtraction},
		{"plain error defaults to generation", base, KindGeneration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	err := New(KindGeneration, "ollama generate", errors.New("model not found"))
	assert.Equal(t, "ollama generate: model not found", err.Error())
	assert.True(t, errors.Is(err, errors.Unwrap(err)))

	noOp := New(KindGeneration, "", errors.New("boom"))
	assert.Equal(t, "boom", noOp.Error())
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(KindInvalidInput))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(KindBackendUnavailable))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(KindGeneration))
}
