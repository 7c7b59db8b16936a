package chunker

import (
	"errors"
	"strings"
	"testing"
)

func TestChunkTextShortInputIsSingleChunk(t *testing.T) {
	text := "Employees accrue 1.5 days of leave per month.\nLeave requests go to your manager."
	chunks, err := ChunkText(text, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Text != text {
		t.Errorf("expected chunk to equal input, got %q", chunks[0].Text)
	}
	if chunks[0].Length != len(text) {
		t.Errorf("expected length %d, got %d", len(text), chunks[0].Length)
	}
}

func TestChunkTextRespectsSize(t *testing.T) {
	text := strings.Repeat("policy ", 600)
	opts := Options{Size: 100, Overlap: 20}

	chunks, err := ChunkText(text, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for _, c := range chunks {
		if c.Length > opts.Size {
			t.Errorf("chunk %d exceeds size %d: got %d", c.Index, opts.Size, c.Length)
		}
	}
}

func TestChunkTextIndexesInOrder(t *testing.T) {
	text := strings.Repeat("Paragraph about benefits.\n\n", 100)
	chunks, err := ChunkText(text, Options{Size: 200, Overlap: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, c := range chunks {
		if c.Index != i {
			t.Errorf("expected index %d, got %d", i, c.Index)
		}
	}
	if got := Texts(chunks); len(got) != len(chunks) || got[0] != chunks[0].Text {
		t.Errorf("Texts did not mirror chunks")
	}
}

func TestChunkTextEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   \n\n  "} {
		chunks, err := ChunkText(text, DefaultOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(chunks) != 0 {
			t.Errorf("expected 0 chunks for %q, got %d", text, len(chunks))
		}
	}
}

func TestChunkTextInvalidOptions(t *testing.T) {
	tests := []Options{
		{Size: 0, Overlap: 0},
		{Size: 10, Overlap: -1},
		{Size: 10, Overlap: 11},
	}
	for _, opts := range tests {
		if _, err := ChunkText("text", opts); !errors.Is(err, ErrInvalidOptions) {
			t.Errorf("options %+v: expected ErrInvalidOptions, got %v", opts, err)
		}
	}
}
