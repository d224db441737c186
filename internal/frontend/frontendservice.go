package frontend

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jo-hoe/goadvent/internal/core"
	"github.com/jo-hoe/goadvent/internal/render"
	"github.com/jo-hoe/goadvent/internal/store"
)

const (
	MainPageName    = "index.html"
	resultsPartName = "results.html"
)

type FrontendService struct {
	coreService *core.CoreService
	config      *core.ServiceConfig
}

type indexPage struct {
	Days    []core.DayInfo
	Results []*store.Result
}

func NewFrontendService(config *core.ServiceConfig, coreService *core.CoreService) *FrontendService {
	return &FrontendService{
		coreService: coreService,
		config:      config,
	}
}

func (service *FrontendService) SetRoutes(e *echo.Echo) {
	e.Renderer = newTemplate()

	e.GET("/", service.rootRedirectHandler) // Redirect root to index.html
	e.GET("/"+MainPageName, service.indexHandler)

	e.GET("/htmx/results", service.htmxListResultsHandler)
	e.DELETE("/htmx/results/:key", service.htmxDeleteResultHandler)

	// Favicon (SVG) route
	e.GET("/icon.svg", service.iconHandler)
}

// rootRedirectHandler redirects root path to index.html
func (service *FrontendService) rootRedirectHandler(ctx echo.Context) error {
	return ctx.Redirect(http.StatusMovedPermanently, "/"+MainPageName)
}

func (service *FrontendService) indexHandler(ctx echo.Context) error {
	results, err := service.coreService.Results(ctx.Request().Context())
	if err != nil {
		slog.Error("indexHandler: failed to list results",
			"status", http.StatusInternalServerError, "error", err)
		return ctx.String(http.StatusInternalServerError, "Failed to list results")
	}
	service.setNoCache(ctx)
	return ctx.Render(http.StatusOK, MainPageName, indexPage{
		Days:    service.coreService.Days(),
		Results: results,
	})
}

func (service *FrontendService) htmxListResultsHandler(ctx echo.Context) error {
	results, err := service.coreService.Results(ctx.Request().Context())
	if err != nil {
		slog.Error("htmxListResultsHandler: failed to list results",
			"status", http.StatusInternalServerError, "error", err)
		return ctx.String(http.StatusInternalServerError, "Failed to list results")
	}

	// Prevent caching so the latest results are always shown
	service.setNoCache(ctx)

	return ctx.Render(http.StatusOK, resultsPartName, results)
}

func (service *FrontendService) htmxDeleteResultHandler(ctx echo.Context) error {
	key := ctx.Param("key")
	if key == "" {
		slog.Warn("htmxDeleteResultHandler: missing result key",
			"status", http.StatusBadRequest,
			"route", "/htmx/results/:key")
		return ctx.String(http.StatusBadRequest, "Missing result key")
	}
	if err := service.coreService.DeleteResult(ctx.Request().Context(), key); err != nil {
		slog.Error("htmxDeleteResultHandler: failed to delete result",
			"status", http.StatusInternalServerError, "error", err, "key", key)
		return ctx.String(http.StatusInternalServerError, "Failed to delete result")
	}
	return service.htmxListResultsHandler(ctx)
}

func (service *FrontendService) setNoCache(ctx echo.Context) {
	ctx.Response().Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
	ctx.Response().Header().Set("Pragma", "no-cache")
	ctx.Response().Header().Set("Expires", "0")
}

// iconScene is a small star drawn with the same primitives as the animations.
func iconScene() *render.Scene {
	s := render.NewScene(32, 32)
	s.Add(
		render.Rect{X: 0, Y: 0, W: 32, H: 32, Fill: render.Black},
		render.Line{X1: 16, Y1: 3, X2: 16, Y2: 29, Width: 3, Stroke: render.Yellow},
		render.Line{X1: 3, Y1: 16, X2: 29, Y2: 16, Width: 3, Stroke: render.Yellow},
		render.Line{X1: 7, Y1: 7, X2: 25, Y2: 25, Width: 2, Stroke: render.Yellow},
		render.Line{X1: 25, Y1: 7, X2: 7, Y2: 25, Width: 2, Stroke: render.Yellow},
		render.Circle{CX: 16, CY: 16, R: 5, Fill: render.Yellow},
	)
	return s
}

var iconSVG = render.SVG(iconScene())

func (service *FrontendService) iconHandler(ctx echo.Context) error {
	// Cache for 7 days
	ctx.Response().Header().Set("Cache-Control", "public, max-age=604800, immutable")
	return ctx.Stream(http.StatusOK, "image/svg+xml", bytes.NewReader(iconSVG))
}
