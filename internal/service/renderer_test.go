package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/ioe2040/supporter-wall-go/internal/domain"
)

func testSupporters() []domain.Supporter {
	return []domain.Supporter{
		{
			Name:     "Acme GmbH",
			Industry: "Bau",
			Link:     "https://acme.example.com",
			Logo:     "https://partners.example.org/logos/acme.png",
			SortKey:  "acme gmbh",
		},
		{
			Name:    "Beta AG",
			SortKey: "beta ag",
			Link:    "https://beta.example.com",
		},
	}
}

func TestRenderEscapesFieldValues(t *testing.T) {
	renderer := NewRendererService(zap.NewNop())
	out, err := renderer.Render([]domain.Supporter{{
		Name:     `Tom & "Jerry" <AG>`,
		Industry: "Forschung & Lehre",
		Link:     "https://tom.example.com",
		SortKey:  "tom",
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(out, "<AG>") {
		t.Fatalf("name was embedded unescaped")
	}
	if !strings.Contains(out, "&lt;AG&gt;") {
		t.Fatalf("expected escaped angle brackets in output")
	}
	if !strings.Contains(out, "Forschung &amp; Lehre") {
		t.Fatalf("expected escaped ampersand in industry")
	}
}

func TestRenderHandlesAbsentOptionalFields(t *testing.T) {
	renderer := NewRendererService(zap.NewNop())
	out, err := renderer.Render([]domain.Supporter{{
		Name:     "Nur Name Und Branche",
		Industry: "IT",
		SortKey:  "nur name und branche",
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, `href="#"`) {
		t.Fatalf("missing link must fall back to #")
	}
	if !strings.Contains(out, `src=""`) {
		t.Fatalf("missing logo must render as empty src")
	}
	if !strings.Contains(out, "Branche: IT") {
		t.Fatalf("industry line missing")
	}
}

func TestRenderIncludesCountSearchAndHeightScript(t *testing.T) {
	renderer := NewRendererService(zap.NewNop())
	out, err := renderer.Render(testSupporters())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "Partner: <strong>2</strong>") {
		t.Fatalf("supporter count missing from footer")
	}
	if !strings.Contains(out, `id="search"`) {
		t.Fatalf("search input missing")
	}
	if !strings.Contains(out, "ioe2040_iframe_height") {
		t.Fatalf("iframe height signaling script missing")
	}
	if !strings.Contains(out, `lang="de"`) {
		t.Fatalf("document language missing")
	}
}

func TestWriteFileCreatesDirectories(t *testing.T) {
	renderer := NewRendererService(zap.NewNop())
	path := filepath.Join(t.TempDir(), "dist", "index.html")

	if err := renderer.WriteFile(path, "<!doctype html>"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	if string(content) != "<!doctype html>" {
		t.Fatalf("unexpected file content: %q", content)
	}
}
