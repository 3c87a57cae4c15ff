package exporter

import (
	"context"
	"errors"
	"fmt"

	"resumeforge/internal/config"
	"resumeforge/internal/logging"
	"resumeforge/internal/render"
	"resumeforge/pkg/models"
)

// Sentinel errors to allow precise mapping in handlers
var (
	ErrRender        = errors.New("render_error")
	ErrUnknownFormat = errors.New("unknown_format")
	ErrCompile       = errors.New("compile_failed")
)

// Result is a finished export: the bytes plus what the handler needs to
// serve them as a download.
type Result struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Exporter turns a resume record into a downloadable document. Every
// format goes through the same template projection, so any template can
// be exported in any format.
type Exporter struct {
	config *config.Config
	logger logging.Logger
}

// NewExporter creates a new exporter instance
func NewExporter(cfg *config.Config) *Exporter {
	return &Exporter{
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// Export projects the record through the named template and writes it in
// the requested format.
func (e *Exporter) Export(ctx context.Context, record *models.ResumeRecord, template render.Template, format string) (*Result, error) {
	tree, err := render.Render(*record, template)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	base := filenameBase(record)

	switch format {
	case "html":
		data, err := writeHTML(tree)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRender, err)
		}
		return &Result{Filename: base + ".html", ContentType: "text/html; charset=utf-8", Data: data}, nil

	case "docx":
		data, err := writeDOCX(tree)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRender, err)
		}
		return &Result{
			Filename:    base + ".docx",
			ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			Data:        data,
		}, nil

	case "pdf":
		latexSrc, err := writeLaTeX(tree)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRender, err)
		}
		pdf, err := e.compile(ctx, latexSrc)
		if err != nil {
			e.logger.Error("PDF compilation failed", map[string]interface{}{
				"template": string(template),
				"error":    err.Error(),
			})
			return nil, fmt.Errorf("%w: %v", ErrCompile, err)
		}
		return &Result{Filename: base + ".pdf", ContentType: "application/pdf", Data: pdf}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

func filenameBase(record *models.ResumeRecord) string {
	name := record.FullName
	if name == "" {
		name = "resume"
	}
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		case r == ' ', r == '-', r == '_':
			out = append(out, '_')
		}
	}
	if len(out) == 0 {
		return "resume"
	}
	return string(out)
}
