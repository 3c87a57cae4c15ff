package exporter

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/internal/config"
	"resumeforge/internal/render"
	"resumeforge/pkg/models"
)

func testExporter(t *testing.T) *Exporter {
	t.Helper()
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	return NewExporter(cfg)
}

func TestExportHTML(t *testing.T) {
	exp := testExporter(t)
	record := models.DefaultResume()

	result, err := exp.Export(context.Background(), &record, render.TemplateModern, "html")
	require.NoError(t, err)

	assert.Equal(t, "Alex_Morgan.html", result.Filename)
	assert.Equal(t, "text/html; charset=utf-8", result.ContentType)

	page := string(result.Data)
	assert.Contains(t, page, "<!DOCTYPE html>")
	assert.Contains(t, page, "<h1>Alex Morgan</h1>")
	assert.Contains(t, page, `<span class="badge">React</span>`)
}

func TestExportHTMLEscapesContent(t *testing.T) {
	exp := testExporter(t)
	record := models.ResumeRecord{
		FullName: "Alex <script>alert(1)</script>",
		Summary:  "Works with C&C systems",
	}

	result, err := exp.Export(context.Background(), &record, render.TemplateProfessional, "html")
	require.NoError(t, err)

	page := string(result.Data)
	assert.NotContains(t, page, "<script>alert(1)</script>")
	assert.Contains(t, page, "&lt;script&gt;")
	assert.Contains(t, page, "C&amp;C")
}

func TestExportDOCXPackage(t *testing.T) {
	exp := testExporter(t)
	record := models.DefaultResume()

	result, err := exp.Export(context.Background(), &record, render.TemplateMinimalist, "docx")
	require.NoError(t, err)
	assert.Equal(t, "Alex_Morgan.docx", result.Filename)

	zr, err := zip.NewReader(bytes.NewReader(result.Data), int64(len(result.Data)))
	require.NoError(t, err)

	parts := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		parts[f.Name] = string(content)
	}

	require.Contains(t, parts, "[Content_Types].xml")
	require.Contains(t, parts, "_rels/.rels")
	require.Contains(t, parts, "word/document.xml")

	doc := parts["word/document.xml"]
	assert.Contains(t, doc, "Alex Morgan")
	assert.Contains(t, doc, "ABOUT ME")
	assert.Contains(t, doc, "<w:body>")
}

func TestExportUnknownFormat(t *testing.T) {
	exp := testExporter(t)
	record := models.DefaultResume()

	_, err := exp.Export(context.Background(), &record, render.TemplateModern, "rtf")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteLaTeXEscapesSpecials(t *testing.T) {
	record := models.ResumeRecord{
		FullName: "Sam & Dana O'Neil",
		Summary:  `Raised revenue 20% via A_B testing with a $0 budget and C:\scripts tooling`,
	}
	tree, err := render.Render(record, render.TemplateProfessional)
	require.NoError(t, err)

	src, err := writeLaTeX(tree)
	require.NoError(t, err)

	assert.Contains(t, src, `Sam \& Dana O'Neil`)
	assert.Contains(t, src, `20\%`)
	assert.Contains(t, src, `A\_B`)
	assert.Contains(t, src, `\$0`)
	assert.Contains(t, src, `C:\textbackslash{}scripts`)
	assert.NotContains(t, src, `C:\\scripts`)
	assert.Contains(t, src, `\begin{document}`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(src), `\end{document}`))
}

func TestFilenameBase(t *testing.T) {
	record := models.ResumeRecord{FullName: "José Álvarez-Smith"}
	assert.Equal(t, "Jos_lvarez_Smith", filenameBase(&record))

	empty := models.ResumeRecord{}
	assert.Equal(t, "resume", filenameBase(&empty))
}
