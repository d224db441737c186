package backend

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jo-hoe/goadvent/internal/core"
	"github.com/jo-hoe/goadvent/internal/puzzle"
)

const (
	mimeGIF = "image/gif"
	mimePNG = "image/png"
)

type APIService struct {
	coreService *core.CoreService
	config      *core.ServiceConfig
}

// SolveRequest is the body of the solve, animation and snapshot routes. An
// empty input falls back to the stored input of the day.
type SolveRequest struct {
	Part  string `json:"part" validate:"required"`
	Input string `json:"input"`
}

func NewAPIService(config *core.ServiceConfig, coreService *core.CoreService) *APIService {
	return &APIService{
		coreService: coreService,
		config:      config,
	}
}

func (s *APIService) SetRoutes(e *echo.Echo) {
	// Set probe route
	e.GET("/probe", func(c echo.Context) error {
		return c.String(http.StatusOK, "API Service is running")
	})

	e.GET("/api/days", s.listDaysHandler)
	e.POST("/api/days/:day/solve", s.solveHandler)
	e.POST("/api/days/:day/animation", s.animationHandler)
	e.POST("/api/days/:day/snapshot", s.snapshotHandler)

	e.GET("/api/results", s.listResultsHandler)
	e.DELETE("/api/results/:key", s.deleteResultHandler)
}

func (s *APIService) listDaysHandler(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.coreService.Days())
}

func (s *APIService) solveHandler(ctx echo.Context) error {
	day, part, input, err := s.bindPuzzle(ctx)
	if err != nil {
		return err
	}
	solution, err := s.coreService.Solve(ctx.Request().Context(), day, part, input)
	if err != nil {
		return toHTTPError("solveHandler", err)
	}
	return ctx.JSON(http.StatusOK, solution)
}

func (s *APIService) animationHandler(ctx echo.Context) error {
	return s.renderHandler(ctx, "animationHandler", mimeGIF, s.coreService.Animate)
}

func (s *APIService) snapshotHandler(ctx echo.Context) error {
	return s.renderHandler(ctx, "snapshotHandler", mimePNG, s.coreService.Snapshot)
}

type renderFunc func(ctx context.Context, day int, part puzzle.Part, input string) ([]byte, error)

func (s *APIService) renderHandler(ctx echo.Context, name, mime string, render renderFunc) error {
	day, part, input, err := s.bindPuzzle(ctx)
	if err != nil {
		return err
	}
	data, err := render(ctx.Request().Context(), day, part, input)
	if err != nil {
		return toHTTPError(name, err)
	}
	return ctx.Blob(http.StatusOK, mime, data)
}

func (s *APIService) listResultsHandler(ctx echo.Context) error {
	results, err := s.coreService.Results(ctx.Request().Context())
	if err != nil {
		return toHTTPError("listResultsHandler", err)
	}
	return ctx.JSON(http.StatusOK, results)
}

func (s *APIService) deleteResultHandler(ctx echo.Context) error {
	key := ctx.Param("key")
	if key == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing result key")
	}
	if err := s.coreService.DeleteResult(ctx.Request().Context(), key); err != nil {
		return toHTTPError("deleteResultHandler", err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// bindPuzzle reads the day path parameter and the validated request body.
func (s *APIService) bindPuzzle(ctx echo.Context) (int, puzzle.Part, string, error) {
	day, err := strconv.Atoi(ctx.Param("day"))
	if err != nil {
		return 0, 0, "", echo.NewHTTPError(http.StatusBadRequest, "day must be a number")
	}

	var req SolveRequest
	if err := ctx.Bind(&req); err != nil {
		return 0, 0, "", err
	}
	if err := ctx.Validate(&req); err != nil {
		return 0, 0, "", err
	}
	part, err := puzzle.ParsePart(req.Part)
	if err != nil {
		return 0, 0, "", echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := req.Input
	if input == "" {
		input, err = s.coreService.ReadInput(day)
		if err != nil {
			return 0, 0, "", toHTTPError("bindPuzzle", err)
		}
	}
	return day, part, input, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, puzzle.ErrUnknownDay),
		errors.Is(err, puzzle.ErrNotAnimated),
		errors.Is(err, os.ErrNotExist):
		return http.StatusNotFound
	case errors.Is(err, puzzle.ErrInvalidPart):
		return http.StatusBadRequest
	case errors.Is(err, puzzle.ErrInvalidInput):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func toHTTPError(handler string, err error) error {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		slog.Error(handler+": request failed", "status", status, "error", err)
		return echo.NewHTTPError(status, "internal error")
	}
	slog.Warn(handler+": request rejected", "status", status, "error", err)
	return echo.NewHTTPError(status, err.Error())
}
