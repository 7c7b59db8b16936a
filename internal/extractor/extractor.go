package extractor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"hrbot/internal/apperr"
)

// ErrNotPDF is returned when the input lacks a PDF header.
var ErrNotPDF = errors.New("not a PDF document")

var pdfMagic = []byte("%PDF-")

// Extractor turns a document into plain text.
type Extractor interface {
	ExtractFile(path string) (string, error)
}

// PDF extracts per-page plain text, joining pages with a newline.
// Pages without content contribute an empty string.
type PDF struct{}

func New() *PDF { return &PDF{} }

// ExtractFile reads the document at path.
func (p *PDF) ExtractFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", apperr.New(apperr.KindExtraction, "open pdf", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", apperr.New(apperr.KindExtraction, "stat pdf", err)
	}
	return p.extract(f, info.Size())
}

// ExtractBytes reads a document held in memory.
func (p *PDF) ExtractBytes(content []byte) (string, error) {
	return p.extract(bytes.NewReader(content), int64(len(content)))
}

func (p *PDF) extract(r io.ReaderAt, size int64) (text string, err error) {
	head := make([]byte, len(pdfMagic))
	if _, rerr := r.ReadAt(head, 0); rerr != nil || !bytes.Equal(head, pdfMagic) {
		return "", apperr.New(apperr.KindExtraction, "read pdf", ErrNotPDF)
	}

	// The pdf package panics on some malformed object graphs.
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = apperr.New(apperr.KindExtraction, "parse pdf", fmt.Errorf("malformed document: %v", rec))
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", apperr.New(apperr.KindExtraction, "parse pdf", err)
	}

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", apperr.New(apperr.KindExtraction, fmt.Sprintf("page %d", i), err)
		}
		pages = append(pages, pageText)
	}
	return strings.Join(pages, "\n"), nil
}
