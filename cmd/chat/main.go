package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"hrbot/internal/app"
	"hrbot/internal/chat"
	"hrbot/internal/config"
	"hrbot/internal/conversation"
	"hrbot/internal/logger"
	"hrbot/internal/tui"
)

var cli struct {
	Model        string `help:"Model to chat with (overrides CHAT_MODEL)" default:""`
	HistoryLimit int    `help:"Turns kept in the transcript (overrides HISTORY_LIMIT)" default:"0"`
	LogFile      string `help:"File that receives logs while the terminal UI is running" default:"hrbot-chat.log" type:"path"`
}

func main() {
	_ = kong.Parse(&cli, kong.Description("Terminal chat with the HR bot."))
	_ = godotenv.Load()
	cfg := applyFlags(config.Load())

	// stdout belongs to the terminal UI.
	logFile, err := os.OpenFile(cli.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log := logger.NewWithWriter(cfg.LogLevel, logFile)

	deps, err := app.BuildWith(cfg, log)
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	client, err := deps.LLM(cfg.ChatModel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	history := conversation.New(cfg.HistoryLimit)
	model := tui.New(context.Background(), chat.NewService(client, log), history)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		log.Error("terminal ui failed", "err", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func applyFlags(cfg config.Config) config.Config {
	if cli.Model != "" {
		cfg.ChatModel = cli.Model
	}
	if cli.HistoryLimit > 0 {
		cfg.HistoryLimit = cli.HistoryLimit
	}
	return cfg
}
