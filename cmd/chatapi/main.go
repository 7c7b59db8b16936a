package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"hrbot/internal/app"
	"hrbot/internal/chat"
	"hrbot/internal/httputil"
)

type chatRequest struct {
	Text *string `json:"text" validate:"required"`
}

type chatResponse struct {
	Response string `json:"response"`
}

func main() {
	deps, err := app.Build()
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	client, err := deps.LLM(deps.Config.ChatModel)
	if err != nil {
		deps.Log.Error("failed to build chat model", "err", err)
		os.Exit(1)
	}
	svc := chat.NewService(client, deps.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf(":%d", deps.Config.ChatAPIPort)
	if err := httputil.Serve(ctx, deps.Log, addr, newRouter(deps, svc)); err != nil {
		deps.Log.Error("server failed", "err", err)
		os.Exit(1)
	}
}

func newRouter(deps app.Deps, svc *chat.Service) *chi.Mux {
	r := httputil.NewRouter(deps.Log)
	r.Use(httputil.CORS(deps.Config.CORSOrigins))
	if deps.Config.LLMTimeout > 0 {
		// Leave headroom so the model call times out before the request does.
		r.Use(middleware.Timeout(deps.Config.LLMTimeout + 5*time.Second))
	}

	r.Post("/chat/", chatHandler(deps, svc))
	r.Post("/chat", chatHandler(deps, svc))
	r.Get("/healthz", httputil.HealthHandler(deps.Log))
	return r
}

func chatHandler(deps app.Deps, svc *chat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := httputil.DecodeJSON(r, &req); err != nil {
			httputil.FailErr(deps.Log, w, err)
			return
		}

		out, err := svc.Reply(r.Context(), *req.Text)
		if err != nil {
			httputil.FailErr(deps.Log, w, err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, chatResponse{Response: out})
	}
}
