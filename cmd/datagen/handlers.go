package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"hrbot/internal/app"
	"hrbot/internal/httputil"
	"hrbot/internal/pipeline"
	"hrbot/internal/qa"
)

// multipartOverhead is the slack allowed on top of MaxUploadSize for form boundaries and fields.
const multipartOverhead = 64 << 10

type datasetResponse struct {
	RunID string    `json:"run_id"`
	Path  string    `json:"path"`
	Count int       `json:"count"`
	Pairs []qa.Pair `json:"pairs"`
}

func newRouter(deps app.Deps, p *pipeline.Pipeline) (*chi.Mux, error) {
	pg, err := newPage(deps.Config)
	if err != nil {
		return nil, err
	}

	r := httputil.NewRouter(deps.Log)
	r.Get("/", indexHandler(deps, pg))
	r.Post("/api/datasets", createDatasetHandler(deps, p))
	r.Get("/api/datasets/latest", latestDatasetHandler(deps, p))
	r.Get("/healthz", httputil.HealthHandler(deps.Log))
	return r, nil
}

func indexHandler(deps app.Deps, pg *page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pg.render(w); err != nil {
			deps.Log.Error("render page failed", "err", err)
		}
	}
}

func createDatasetHandler(deps app.Deps, p *pipeline.Pipeline) http.HandlerFunc {
	maxFileSize := deps.Config.MaxUploadSize

	return func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > maxFileSize+multipartOverhead {
			httputil.Fail(deps.Log, w, fmt.Sprintf("file too large (max %d bytes)", maxFileSize), nil, http.StatusBadRequest)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxFileSize+multipartOverhead)

		file, header, err := r.FormFile("file")
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				httputil.Fail(deps.Log, w, fmt.Sprintf("file too large (max %d bytes)", maxFileSize), err, http.StatusBadRequest)
				return
			}
			httputil.Fail(deps.Log, w, "file is required", err, http.StatusBadRequest)
			return
		}
		defer file.Close()

		if header.Size > maxFileSize {
			httputil.Fail(deps.Log, w, fmt.Sprintf("file too large (max %d bytes)", maxFileSize), nil, http.StatusBadRequest)
			return
		}
		if !strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
			httputil.Fail(deps.Log, w, "unsupported file type (only PDF allowed)", nil, http.StatusBadRequest)
			return
		}

		model := strings.TrimSpace(r.FormValue("model"))
		if model == "" {
			model = deps.Config.DatasetModel
		}

		tmpPath, err := saveUpload(file)
		if err != nil {
			httputil.Fail(deps.Log, w, "failed to store upload", err, http.StatusInternalServerError)
			return
		}
		defer func() {
			if err := os.Remove(tmpPath); err != nil && !os.IsNotExist(err) {
				deps.Log.Warn("failed to remove upload", "path", tmpPath, "err", err)
			}
		}()

		res, err := p.Run(r.Context(), pipeline.Input{Path: tmpPath, Model: model}, nil)
		if err != nil {
			httputil.FailErr(deps.Log.With("filename", header.Filename), w, fmt.Errorf("error processing PDF: %w", err))
			return
		}

		pairs := res.Dataset
		if pairs == nil {
			pairs = []qa.Pair{}
		}
		httputil.WriteJSON(w, http.StatusOK, datasetResponse{
			RunID: res.RunID,
			Path:  res.Path,
			Count: len(pairs),
			Pairs: pairs,
		})
	}
}

// saveUpload copies the upload to a per-request temp file.
func saveUpload(src io.Reader) (string, error) {
	path := filepath.Join(os.TempDir(), "datagen-"+uuid.NewString()+".pdf")
	dst, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return path, nil
}

func latestDatasetHandler(deps app.Deps, p *pipeline.Pipeline) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := p.Writer.Path()
		if _, err := os.Stat(path); err != nil {
			httputil.Fail(deps.Log, w, "no dataset generated yet", err, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(path)))
		http.ServeFile(w, r, path)
	}
}
