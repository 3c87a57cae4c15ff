package exporter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"resumeforge/pkg/utils"
)

// compile turns LaTeX source into PDF bytes, either through the remote
// renderer configured in export.pdf_renderer_url or by invoking pdflatex
// locally. Returns the LaTeX log in the error on failure.
func (e *Exporter) compile(ctx context.Context, latexSource string) ([]byte, error) {
	if strings.TrimSpace(latexSource) == "" {
		return nil, fmt.Errorf("empty LaTeX source")
	}

	if rendererURL := strings.TrimSpace(e.config.Export.PDFRendererURL); rendererURL != "" {
		return e.compileRemote(ctx, rendererURL, latexSource)
	}

	return e.compileLocal(ctx, latexSource)
}

func (e *Exporter) compileRemote(ctx context.Context, rendererURL, latexSource string) ([]byte, error) {
	body, _ := json.Marshal(map[string]string{"latex": latexSource})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(rendererURL, "/")+"/compile", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("renderer request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("renderer error: status=%d body=%s", resp.StatusCode, string(b))
	}
	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read renderer response: %w", err)
	}
	if len(pdf) == 0 {
		return nil, fmt.Errorf("renderer returned empty pdf")
	}
	return pdf, nil
}

func (e *Exporter) compileLocal(ctx context.Context, latexSource string) ([]byte, error) {
	workDir, err := os.MkdirTemp("", "latex-build-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	texFile := filepath.Join(workDir, "document.tex")
	if err := os.WriteFile(texFile, []byte(latexSource), 0644); err != nil {
		return nil, fmt.Errorf("write tex file: %w", err)
	}

	pdflatex := utils.GetStringOrDefault(e.config.Export.PDFLatexPath, "pdflatex")

	// nonstopmode and halt-on-error keep the run deterministic
	cmd := exec.CommandContext(ctx, pdflatex, "-interaction=nonstopmode", "-halt-on-error", "-output-directory", workDir, texFile)
	cmd.Dir = workDir

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("pdflatex failed: %w; log:\n%s", err, out.String())
	}

	pdfBytes, err := os.ReadFile(filepath.Join(workDir, "document.pdf"))
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w; log:\n%s", err, out.String())
	}
	return pdfBytes, nil
}
