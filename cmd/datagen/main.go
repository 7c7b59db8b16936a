package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"hrbot/internal/app"
	"hrbot/internal/chunker"
	"hrbot/internal/dataset"
	"hrbot/internal/extractor"
	"hrbot/internal/httputil"
	"hrbot/internal/pipeline"
	"hrbot/internal/qa"
)

type cli struct {
	Output  string `help:"Dataset file path (overrides DATASET_PATH)" default:""`
	Format  string `help:"Dataset format: csv or xlsx (overrides DATASET_FORMAT)" default:""`
	Prompts string `help:"YAML file overriding the QA prompt templates (overrides PROMPTS_FILE)" default:"" type:"path"`

	Serve    serveCmd    `cmd:"" default:"1" help:"Serve the upload page and JSON API."`
	Generate generateCmd `cmd:"" help:"Generate a dataset from one PDF and exit."`
}

type serveCmd struct {
	Port int `help:"Listen port (overrides DATAGEN_PORT)" default:"0"`
}

type generateCmd struct {
	PDF   string `arg:"" type:"existingfile" help:"PDF document to generate questions from."`
	Model string `help:"Model to generate with (overrides DATASET_MODEL)" default:""`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("datagen"),
		kong.Description("PDF Q&A Dataset Generator for LLM Fine-tuning."),
	)

	deps, err := app.Build()
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	c.apply(&deps)

	p, err := newPipeline(deps)
	if err != nil {
		deps.Log.Error("failed to build pipeline", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kctx.BindTo(ctx, (*context.Context)(nil))
	if err := kctx.Run(deps, p); err != nil {
		deps.Log.Error("datagen failed", "err", err)
		os.Exit(1)
	}
}

// apply copies flag overrides into the loaded config.
func (c *cli) apply(deps *app.Deps) {
	if c.Output != "" {
		deps.Config.DatasetPath = c.Output
	}
	if c.Format != "" {
		deps.Config.DatasetFormat = c.Format
	}
	if c.Prompts != "" {
		deps.Config.PromptsFile = c.Prompts
	}
	if c.Serve.Port > 0 {
		deps.Config.DatagenPort = c.Serve.Port
	}
	if c.Generate.Model != "" {
		deps.Config.DatasetModel = c.Generate.Model
	}
}

func newPipeline(deps app.Deps) (*pipeline.Pipeline, error) {
	format, err := dataset.ParseFormat(deps.Config.DatasetFormat)
	if err != nil {
		return nil, err
	}
	templates, err := qa.LoadTemplates(deps.Config.PromptsFile)
	if err != nil {
		return nil, err
	}
	opts := chunker.DefaultOptions()
	opts.Size = deps.Config.ChunkSize
	opts.Overlap = deps.Config.ChunkOverlap

	return &pipeline.Pipeline{
		Extractor: extractor.New(),
		NewLLM:    deps.LLM,
		Chunking:  opts,
		Templates: templates,
		Writer:    dataset.NewWriter(deps.Config.DatasetPath, format),
		Log:       deps.Log,
	}, nil
}

func (s *serveCmd) Run(ctx context.Context, deps app.Deps, p *pipeline.Pipeline) error {
	r, err := newRouter(deps, p)
	if err != nil {
		return err
	}
	addr := fmt.Sprintf(":%d", deps.Config.DatagenPort)
	return httputil.Serve(ctx, deps.Log, addr, r)
}

func (g *generateCmd) Run(ctx context.Context, deps app.Deps, p *pipeline.Pipeline) error {
	res, err := p.Run(ctx, pipeline.Input{Path: g.PDF, Model: deps.Config.DatasetModel}, func(f float64, msg string) {
		fmt.Fprintf(os.Stderr, "[%3.0f%%] %s\n", f*100, msg)
	})
	if err != nil {
		return fmt.Errorf("process pdf: %w", err)
	}
	fmt.Printf("wrote %d question-answer pairs to %s\n", len(res.Dataset), res.Path)
	return nil
}
