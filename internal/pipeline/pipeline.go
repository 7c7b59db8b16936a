package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"hrbot/internal/apperr"
	"hrbot/internal/chunker"
	"hrbot/internal/extractor"
	"hrbot/internal/llm"
	"hrbot/internal/qa"
)

// Progress receives the overall completion fraction and a stage message.
type Progress func(fraction float64, message string)

// Input names one uploaded document and the model to question it with.
type Input struct {
	Path  string
	Model string
}

// Result is the dataset written by a successful run.
type Result struct {
	RunID   string
	Path    string
	Dataset []qa.Pair
}

// DatasetWriter persists the generated pairs and returns the file path.
type DatasetWriter interface {
	Write(pairs []qa.Pair) (string, error)
	Path() string
}

// Pipeline runs Extractor -> Chunker -> QA Generator -> Dataset Writer.
type Pipeline struct {
	Extractor extractor.Extractor
	NewLLM    llm.Factory
	Chunking  chunker.Options
	Templates qa.Templates
	Writer    DatasetWriter
	Log       *slog.Logger
}

// Run processes one document synchronously. Any stage failure aborts the run
// before the writer is called, so a previous dataset file is left in place.
func (p *Pipeline) Run(ctx context.Context, in Input, progress Progress) (Result, error) {
	runID := uuid.NewString()
	log := p.Log.With("run_id", runID, "model", in.Model)
	report := func(fraction float64, message string) {
		log.Info("dataset progress", "fraction", fraction, "stage", message)
		if progress != nil {
			progress(fraction, message)
		}
	}

	report(0, "Initializing...")

	report(0.1, "Extracting text from PDF...")
	text, err := p.Extractor.ExtractFile(in.Path)
	if err != nil {
		return Result{}, fmt.Errorf("extract text: %w", err)
	}

	report(0.3, "Splitting text into chunks...")
	chunks, err := chunker.ChunkText(text, p.Chunking)
	if err != nil {
		return Result{}, fmt.Errorf("split text: %w", err)
	}

	report(0.4, "Initializing QA Generator...")
	client, err := p.NewLLM(in.Model)
	if err != nil {
		return Result{}, apperr.New(apperr.KindInvalidInput, "init model", err)
	}
	gen, err := qa.NewGenerator(client, p.Templates, log)
	if err != nil {
		return Result{}, fmt.Errorf("init generator: %w", err)
	}

	report(0.5, "Generating Q&A pairs...")
	pairs, err := gen.Generate(ctx, chunker.Texts(chunks), func(f float64, msg string) {
		report(0.5+f*0.4, msg)
	})
	if err != nil {
		return Result{}, fmt.Errorf("generate pairs: %w", err)
	}

	report(0.9, "Creating dataset...")
	path, err := p.Writer.Write(pairs)
	if err != nil {
		return Result{}, err
	}

	report(1.0, "Complete!")
	log.Info("dataset written", "path", path, "chunks", len(chunks), "pairs", len(pairs))
	return Result{RunID: runID, Path: path, Dataset: pairs}, nil
}
