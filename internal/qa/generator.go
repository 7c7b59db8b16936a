package qa

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tmc/langchaingo/prompts"

	"hrbot/internal/llm"
)

// ProgressFunc receives the fraction of chunks started (0..1) and a status message.
type ProgressFunc func(fraction float64, message string)

// Generator asks the model for a simple and a complex set of pairs per chunk.
type Generator struct {
	llm     llm.Client
	prompts compiled
	log     *slog.Logger
}

func NewGenerator(client llm.Client, templates Templates, log *slog.Logger) (*Generator, error) {
	c, err := templates.compile()
	if err != nil {
		return nil, err
	}
	return &Generator{llm: client, prompts: c, log: log}, nil
}

// Generate processes chunks in order, simple pairs before complex pairs for
// each chunk. The first failed call aborts the run and no pairs are returned.
func (g *Generator) Generate(ctx context.Context, chunks []string, progress ProgressFunc) ([]Pair, error) {
	var pairs []Pair
	total := len(chunks)
	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if progress != nil {
			progress(float64(i)/float64(total), fmt.Sprintf("Processing chunk %d/%d", i+1, total))
		}

		simplePairs, err := g.run(ctx, g.prompts.simple, chunk)
		if err != nil {
			return nil, fmt.Errorf("chunk %d/%d simple: %w", i+1, total, err)
		}
		complexPairs, err := g.run(ctx, g.prompts.complex, chunk)
		if err != nil {
			return nil, fmt.Errorf("chunk %d/%d complex: %w", i+1, total, err)
		}

		pairs = append(pairs, simplePairs...)
		pairs = append(pairs, complexPairs...)
		g.log.Debug("chunk processed", "chunk", i+1, "total", total, "simple", len(simplePairs), "complex", len(complexPairs))
	}
	return pairs, nil
}

func (g *Generator) run(ctx context.Context, tpl prompts.PromptTemplate, chunk string) ([]Pair, error) {
	prompt, err := tpl.Format(map[string]any{ContextVar: chunk})
	if err != nil {
		return nil, fmt.Errorf("format prompt: %w", err)
	}
	out, err := g.llm.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return Parse(out), nil
}
