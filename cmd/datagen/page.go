package main

import (
	"bytes"
	"embed"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"hrbot/internal/config"
)

//go:embed templates/index.html
var templatesFS embed.FS

const intro = `# PDF Q&A Dataset Generator for LLM Fine-tuning

Upload a PDF and generate question-answer pairs for fine-tuning language models.`

type modelOption struct {
	Name     string
	Selected bool
}

type page struct {
	tmpl *template.Template
	data struct {
		Intro   template.HTML
		Models  []modelOption
		MaxSize int64
	}
}

func newPage(cfg config.Config) (*page, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
	)
	var buf bytes.Buffer
	if err := md.Convert([]byte(intro), &buf); err != nil {
		return nil, err
	}

	tmpl, err := template.ParseFS(templatesFS, "templates/index.html")
	if err != nil {
		return nil, err
	}

	p := &page{tmpl: tmpl}
	p.data.Intro = template.HTML(buf.String())
	p.data.Models = modelOptions(cfg.DatasetModel, cfg.DatasetModelChoices)
	p.data.MaxSize = cfg.MaxUploadSize
	return p, nil
}

// modelOptions lists the configured choices with the default selected. A
// default outside the choices is listed first so it stays selectable.
func modelOptions(def string, choices []string) []modelOption {
	var opts []modelOption
	found := false
	for _, c := range choices {
		if c == "" {
			continue
		}
		sel := c == def
		found = found || sel
		opts = append(opts, modelOption{Name: c, Selected: sel})
	}
	if !found && def != "" {
		opts = append([]modelOption{{Name: def, Selected: true}}, opts...)
	}
	return opts
}

func (p *page) render(w io.Writer) error {
	return p.tmpl.Execute(w, p.data)
}
