package chat

import (
	"context"
	"log/slog"

	"hrbot/internal/apperr"
	"hrbot/internal/conversation"
	"hrbot/internal/llm"
)

// Service forwards user text to the model unchanged.
type Service struct {
	llm llm.Client
	log *slog.Logger
}

func NewService(client llm.Client, log *slog.Logger) *Service {
	return &Service{llm: client, log: log}
}

// Reply performs one model call with text as the whole prompt.
func (s *Service) Reply(ctx context.Context, text string) (string, error) {
	out, err := s.llm.Generate(ctx, text)
	if err != nil {
		s.log.Error("chat reply failed", "kind", apperr.KindOf(err), "err", err)
		return "", err
	}
	return out, nil
}

// Converse replies to text and, on success, records the turn in history.
// A failed call leaves history untouched.
func (s *Service) Converse(ctx context.Context, history *conversation.Log, text string) Result {
	out, err := s.Reply(ctx, text)
	if err != nil {
		return Result{Err: err}
	}
	if history != nil {
		history.Append(conversation.Turn{User: text, Bot: out})
	}
	return Result{Text: out}
}

// Result is the outcome of one chat call.
type Result struct {
	Text string
	Err  error
}

func (r Result) OK() bool { return r.Err == nil }

// Kind reports the failure kind, or "" on success.
func (r Result) Kind() apperr.Kind {
	if r.Err == nil {
		return ""
	}
	return apperr.KindOf(r.Err)
}

// Display is the text shown to the user: the reply, or "Error: <message>".
func (r Result) Display() string {
	if r.Err != nil {
		return "Error: " + r.Err.Error()
	}
	return r.Text
}
