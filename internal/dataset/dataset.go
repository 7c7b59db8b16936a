package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"hrbot/internal/apperr"
	"hrbot/internal/qa"
)

// Header is the column order of every dataset file.
var Header = []string{"question", "answer"}

const sheet = "Sheet1"

// Format selects the on-disk encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat accepts "csv" or "xlsx", case-insensitively. Empty means csv.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unknown dataset format %q (valid: csv, xlsx)", s)
	}
}

// Writer overwrites a fixed path with the latest dataset.
type Writer struct {
	path   string
	format Format
}

// NewWriter fixes the output extension to match format.
func NewWriter(path string, format Format) *Writer {
	ext := "." + string(format)
	if filepath.Ext(path) != ext {
		path = strings.TrimSuffix(path, filepath.Ext(path)) + ext
	}
	return &Writer{path: path, format: format}
}

func (w *Writer) Path() string { return w.path }

// Write replaces the file atomically: readers see either the previous
// dataset or the new one, never a partial file.
func (w *Writer) Write(pairs []qa.Pair) (string, error) {
	var err error
	switch w.format {
	case FormatXLSX:
		err = writeAtomic(w.path, func(f io.Writer) error { return encodeXLSX(f, pairs) })
	default:
		err = writeAtomic(w.path, func(f io.Writer) error { return encodeCSV(f, pairs) })
	}
	if err != nil {
		return "", apperr.New(apperr.KindWrite, "write dataset", err)
	}
	return w.path, nil
}

func writeAtomic(path string, encode func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = encode(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func encodeCSV(w io.Writer, pairs []qa.Pair) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, p := range pairs {
		if err := cw.Write([]string{p.Question, p.Answer}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func encodeXLSX(w io.Writer, pairs []qa.Pair) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetRow(sheet, "A1", &[]any{Header[0], Header[1]}); err != nil {
		return err
	}
	for i, p := range pairs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &[]any{p.Question, p.Answer}); err != nil {
			return err
		}
	}
	_, err := f.WriteTo(w)
	return err
}

// Read loads a dataset file, choosing the decoder by extension.
func Read(path string) ([]qa.Pair, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readXLSX(path)
	}
	return ReadCSV(path)
}

// ReadCSV loads a file written by Writer in csv format.
func ReadCSV(path string) ([]qa.Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return fromRows(records)
}

func readXLSX(path string) ([]qa.Pair, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	return fromRows(rows)
}

func fromRows(rows [][]string) ([]qa.Pair, error) {
	if len(rows) == 0 || len(rows[0]) < 2 || rows[0][0] != Header[0] || rows[0][1] != Header[1] {
		return nil, errors.New("missing question,answer header")
	}
	pairs := make([]qa.Pair, 0, len(rows)-1)
	for _, row := range rows[1:] {
		// Spreadsheet readers drop trailing empty cells.
		for len(row) < 2 {
			row = append(row, "")
		}
		pairs = append(pairs, qa.Pair{Question: row[0], Answer: row[1]})
	}
	return pairs, nil
}
