package frontend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/jo-hoe/goadvent/internal/core"
	"github.com/jo-hoe/goadvent/internal/puzzle"
)

func newTestFrontend(t *testing.T) (*echo.Echo, *core.CoreService) {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.InputDir = t.TempDir()
	coreService, err := core.NewCoreService(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewCoreService error: %v", err)
	}
	t.Cleanup(func() { _ = coreService.Close() })

	e := echo.New()
	NewFrontendService(cfg, coreService).SetRoutes(e)
	return e, coreService
}

func serve(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestRootRedirect(t *testing.T) {
	e, _ := newTestFrontend(t)
	rec := serve(e, http.MethodGet, "/")
	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("expected 301, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/"+MainPageName {
		t.Errorf("unexpected redirect target %q", loc)
	}
}

func TestIndexPage(t *testing.T) {
	e, coreService := newTestFrontend(t)
	if _, err := coreService.Solve(context.Background(), 4, puzzle.PartOne,
		"Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53\n"); err != nil {
		t.Fatalf("Solve error: %v", err)
	}

	rec := serve(e, http.MethodGet, "/"+MainPageName)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"Trebuchet?!", "Lens Library", "day16.txt", "<code>8</code>"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected index page to contain %q", want)
		}
	}
}

func TestHtmxResults_ListAndDelete(t *testing.T) {
	e, coreService := newTestFrontend(t)

	rec := serve(e, http.MethodGet, "/htmx/results")
	if !strings.Contains(rec.Body.String(), "No results cached yet.") {
		t.Errorf("expected empty state, got %s", rec.Body.String())
	}

	solution, err := coreService.Solve(context.Background(), 9, puzzle.PartTwo, "10 13 16 21 30 45\n")
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}
	rec = serve(e, http.MethodGet, "/htmx/results")
	if !strings.Contains(rec.Body.String(), solution.Key) {
		t.Fatalf("expected result %s listed, got %s", solution.Key, rec.Body.String())
	}

	rec = serve(e, http.MethodDelete, "/htmx/results/"+solution.Key)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), solution.Key) {
		t.Errorf("expected result to be removed, got %s", rec.Body.String())
	}
}

func TestIcon(t *testing.T) {
	e, _ := newTestFrontend(t)
	rec := serve(e, http.MethodGet, "/icon.svg")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "image/svg+xml" {
		t.Errorf("unexpected content type %q", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "<svg") {
		t.Errorf("expected SVG document, got %q", rec.Body.String())
	}
}
