package llm

import (
	"context"
	"errors"
	"net"
	"strings"
	"syscall"
	"time"

	"hrbot/internal/apperr"
)

// Client is a minimal LLM interface to allow pluggable providers.
type Client interface {
	// Generate sends prompt verbatim and returns the completion text.
	Generate(ctx context.Context, prompt string) (string, error)
	// Model names the runtime model the client talks to.
	Model() string
}

// Factory builds a Client for a model chosen at call time.
type Factory func(model string) (Client, error)

// Classify wraps a provider error with the kind callers branch on.
// Transport failures mean the runtime is unreachable; anything else is a generation failure.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return err
	}
	if unavailable(err) {
		return apperr.New(apperr.KindBackendUnavailable, op, err)
	}
	return apperr.New(apperr.KindGeneration, op, err)
}

func unavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	// Some client libraries flatten transport errors into text.
	msg := err.Error()
	for _, s := range transportMarkers {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

var transportMarkers = []string{"connection refused", "no such host", "connection reset", "dial tcp"}

// withTimeout bounds a call only when d is positive.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
