package service

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/ioe2040/supporter-wall-go/internal/domain"
	apperrors "github.com/ioe2040/supporter-wall-go/pkg/errors"
)

//go:embed templates/*.tmpl
var pageTemplateFS embed.FS

var (
	pageTemplate *template.Template
	pageOnce     sync.Once
	pageErr      error
)

type RendererService struct {
	logger *zap.Logger
}

func NewRendererService(logger *zap.Logger) *RendererService {
	return &RendererService{logger: logger}
}

type pageData struct {
	Supporters []domain.Supporter
	Count      int
}

// Render produces the complete, self-contained supporter wall page.
// html/template escapes every field value for its context, so scraped names,
// links and industry texts can never break the markup.
func (s *RendererService) Render(supporters []domain.Supporter) (string, error) {
	pageOnce.Do(func() {
		pageTemplate, pageErr = template.ParseFS(pageTemplateFS, "templates/*.tmpl")
	})
	if pageErr != nil {
		return "", fmt.Errorf("template parse failed: %w", pageErr)
	}

	var builder strings.Builder
	err := pageTemplate.ExecuteTemplate(&builder, "page.html.tmpl", pageData{
		Supporters: supporters,
		Count:      len(supporters),
	})
	if err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}

	return builder.String(), nil
}

// WriteFile writes the rendered page. Callers must run the minimum-count
// guard first; nothing here writes partial output.
func (s *RendererService) WriteFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperrors.NewRenderError("failed to create output directory", path, err)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return apperrors.NewRenderError("failed to write output file", path, err)
	}

	s.logger.Info("Output written",
		zap.String("file", path),
		zap.Int("bytes", len(content)))

	return nil
}
