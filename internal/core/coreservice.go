package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jo-hoe/goadvent/internal/puzzle"
	"github.com/jo-hoe/goadvent/internal/render"
	_ "github.com/jo-hoe/goadvent/internal/solutions"
	"github.com/jo-hoe/goadvent/internal/store"
)

type CoreService struct {
	config   *ServiceConfig
	registry *puzzle.Registry
	store    store.ResultStore
}

// DayInfo describes one registered day.
type DayInfo struct {
	Day      int    `json:"day"`
	Title    string `json:"title"`
	Animated bool   `json:"animated"`
}

// Solution is the answer to one part of one day.
type Solution struct {
	Key      string        `json:"key"`
	Day      int           `json:"day"`
	Part     puzzle.Part   `json:"part"`
	Answer   int64         `json:"answer"`
	Duration time.Duration `json:"duration"`
	Cached   bool          `json:"cached"`
}

func NewCoreService(ctx context.Context, config *ServiceConfig) (*CoreService, error) {
	resultStore, err := store.NewResultStore(ctx, config.Database.Type, config.Database.ConnectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize result store: %w", err)
	}
	slog.Info("result store initialized successfully", "type", config.Database.Type)

	return &CoreService{
		config:   config,
		registry: puzzle.DefaultRegistry,
		store:    resultStore,
	}, nil
}

func (service *CoreService) Close() error {
	return service.store.Close()
}

// Days lists every registered day in ascending order.
func (service *CoreService) Days() []DayInfo {
	days := service.registry.Days()
	out := make([]DayInfo, 0, len(days))
	for _, day := range days {
		solver, err := service.registry.Get(day)
		if err != nil {
			continue
		}
		_, animated := solver.(puzzle.Animator)
		out = append(out, DayInfo{Day: day, Title: solver.Title(), Animated: animated})
	}
	return out
}

// Solve answers one part of a day, serving repeated inputs from the result store.
func (service *CoreService) Solve(ctx context.Context, day int, part puzzle.Part, input string) (*Solution, error) {
	solver, err := service.registry.Get(day)
	if err != nil {
		return nil, err
	}
	if !part.Valid() {
		return nil, fmt.Errorf("%w: %d", puzzle.ErrInvalidPart, int(part))
	}

	key := store.GenerateKey(day, part, input)
	cached, err := service.store.GetResult(ctx, key)
	if err != nil {
		slog.Warn("failed to read cached result", "key", key, "error", err)
	}
	if cached != nil {
		slog.Debug("serving cached result", "day", day, "part", part.String(), "key", key)
		return &Solution{Key: key, Day: day, Part: part, Answer: cached.Answer, Duration: cached.Duration, Cached: true}, nil
	}

	start := time.Now()
	answer, err := solver.Solve(part, input)
	if err != nil {
		return nil, fmt.Errorf("day %d part %v: %w", day, part, err)
	}
	elapsed := time.Since(start)
	slog.Info("solved puzzle", "day", day, "part", part.String(), "duration", elapsed)

	result := &store.Result{
		Key:       key,
		Day:       day,
		Part:      int(part),
		Answer:    answer,
		Duration:  elapsed,
		CreatedAt: time.Now().UTC(),
	}
	if err := service.store.SaveResult(ctx, result); err != nil {
		slog.Warn("failed to cache result", "key", key, "error", err)
	}
	return &Solution{Key: key, Day: day, Part: part, Answer: answer, Duration: elapsed}, nil
}

func (service *CoreService) scenes(ctx context.Context, day int, part puzzle.Part, input string) ([]*render.Scene, error) {
	solver, err := service.registry.Get(day)
	if err != nil {
		return nil, err
	}
	animator, ok := solver.(puzzle.Animator)
	if !ok {
		return nil, fmt.Errorf("day %d: %w", day, puzzle.ErrNotAnimated)
	}
	if !part.Valid() {
		return nil, fmt.Errorf("%w: %d", puzzle.ErrInvalidPart, int(part))
	}
	scenes, err := animator.Animate(part, input)
	if err != nil {
		return nil, fmt.Errorf("day %d part %v: %w", day, part, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return scenes, nil
}

// Animate renders the day's animation as a GIF.
func (service *CoreService) Animate(ctx context.Context, day int, part puzzle.Part, input string) ([]byte, error) {
	scenes, err := service.scenes(ctx, day, part, input)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	data, err := render.EncodeGIF(scenes, service.config.RenderOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to encode animation: %w", err)
	}
	slog.Info("rendered animation", "day", day, "part", part.String(), "frames", len(scenes), "bytes", len(data), "duration", time.Since(start))
	return data, nil
}

// Snapshot renders the final frame of the day's animation as a PNG.
func (service *CoreService) Snapshot(ctx context.Context, day int, part puzzle.Part, input string) ([]byte, error) {
	scenes, err := service.scenes(ctx, day, part, input)
	if err != nil {
		return nil, err
	}
	if len(scenes) == 0 {
		return nil, render.ErrNoFrames
	}
	data, err := render.EncodePNG(scenes[len(scenes)-1], service.config.RenderOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

func (service *CoreService) Results(ctx context.Context) ([]*store.Result, error) {
	return service.store.ListResults(ctx)
}

func (service *CoreService) DeleteResult(ctx context.Context, key string) error {
	return service.store.DeleteResult(ctx, key)
}

// InputPath returns where the input of a day is expected inside the input directory.
func (service *CoreService) InputPath(day int) string {
	return filepath.Join(service.config.InputDir, fmt.Sprintf("day%02d.txt", day))
}

// ReadInput loads the stored puzzle input of a day.
func (service *CoreService) ReadInput(day int) (string, error) {
	if !service.registry.IsRegistered(day) {
		return "", fmt.Errorf("%w: %d", puzzle.ErrUnknownDay, day)
	}
	path := service.InputPath(day)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("no input for day %d at %s: %w", day, path, err)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input %s: %w", path, err)
	}
	return string(data), nil
}
