package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	"hrbot/internal/app"
	"hrbot/internal/apperr"
	"hrbot/internal/chat"
	"hrbot/internal/conversation"
	"hrbot/internal/httputil"
)

//go:embed static
var staticFS embed.FS

type messageRequest struct {
	Message *string             `json:"message" validate:"required"`
	History []conversation.Turn `json:"history"`
}

type messageError struct {
	Kind    apperr.Kind `json:"kind"`
	Message string      `json:"message"`
}

type messageResponse struct {
	Reply   string              `json:"reply"`
	History []conversation.Turn `json:"history"`
	Error   *messageError       `json:"error,omitempty"`
}

func main() {
	deps, err := app.Build()
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	client, err := deps.LLM(deps.Config.WidgetModel)
	if err != nil {
		deps.Log.Error("failed to build widget model", "err", err)
		os.Exit(1)
	}
	svc := chat.NewService(client, deps.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf(":%d", deps.Config.WidgetPort)
	if err := httputil.Serve(ctx, deps.Log, addr, newRouter(deps, svc)); err != nil {
		deps.Log.Error("server failed", "err", err)
		os.Exit(1)
	}
}

func newRouter(deps app.Deps, svc *chat.Service) *chi.Mux {
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}

	r := httputil.NewRouter(deps.Log)
	r.Handle("/*", http.FileServer(http.FS(static)))
	r.Post("/api/messages", messageHandler(deps, svc))
	r.Get("/healthz", httputil.HealthHandler(deps.Log))
	return r
}

// messageHandler answers one widget message. Prior turns are not sent to the
// model; they are bounded and echoed back so the page can redraw them.
// Model failures are reported inline with a 200.
func messageHandler(deps app.Deps, svc *chat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req messageRequest
		if err := httputil.DecodeJSON(r, &req); err != nil {
			httputil.FailErr(deps.Log, w, err)
			return
		}

		history := conversation.FromTurns(req.History, deps.Config.HistoryLimit)
		res := svc.Converse(r.Context(), history, *req.Message)

		resp := messageResponse{Reply: res.Display(), History: history.Turns()}
		if !res.OK() {
			resp.Error = &messageError{Kind: res.Kind(), Message: res.Err.Error()}
		}
		httputil.WriteJSON(w, http.StatusOK, resp)
	}
}
