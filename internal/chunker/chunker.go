package chunker

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tmc/langchaingo/textsplitter"
)

// ErrInvalidOptions is returned for a non-positive size or an overlap outside [0, size].
var ErrInvalidOptions = errors.New("invalid chunker options")

// DefaultSeparators are tried in order: paragraph, line, sentence, word, character.
var DefaultSeparators = []string{"\n\n", "\n", ".", " ", ""}

// Options controls how text is chunked. Sizes are in characters.
type Options struct {
	Size       int
	Overlap    int
	Separators []string
}

// DefaultOptions matches the dataset generator's settings.
func DefaultOptions() Options {
	return Options{Size: 1000, Overlap: 200, Separators: DefaultSeparators}
}

// Chunk represents a slice of the document text.
type Chunk struct {
	Index  int
	Text   string
	Length int
}

// ChunkText splits text recursively on the configured separators so that each
// chunk stays within Size where the separators allow it. Consecutive chunks
// share up to Overlap characters. Whitespace-only text yields no chunks.
func ChunkText(text string, opts Options) ([]Chunk, error) {
	if opts.Size <= 0 || opts.Overlap < 0 || opts.Overlap > opts.Size {
		return nil, fmt.Errorf("%w: size=%d overlap=%d", ErrInvalidOptions, opts.Size, opts.Overlap)
	}
	if len(opts.Separators) == 0 {
		opts.Separators = DefaultSeparators
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(opts.Size),
		textsplitter.WithChunkOverlap(opts.Overlap),
		textsplitter.WithSeparators(opts.Separators),
	)
	parts, err := splitter.SplitText(text)
	if err != nil {
		return nil, fmt.Errorf("split text: %w", err)
	}

	chunks := make([]Chunk, 0, len(parts))
	for _, p := range parts {
		chunks = append(chunks, Chunk{
			Index:  len(chunks),
			Text:   p,
			Length: utf8.RuneCountInString(p),
		})
	}
	return chunks, nil
}

// Texts returns the chunk bodies in order.
func Texts(chunks []Chunk) []string {
	out := make([]string, len(chunks))
	for i, c := range chunks {
		out[i] = c.Text
	}
	return out
}
