package store

import (
	"context"
	"time"
)

// Result is a cached puzzle answer.
type Result struct {
	Key       string        `json:"key"`
	Day       int           `json:"day"`
	Part      int           `json:"part"`
	Answer    int64         `json:"answer"`
	Duration  time.Duration `json:"duration"`
	CreatedAt time.Time     `json:"createdAt"`
}

type ResultStore interface {
	// Init creates the schema if needed. It is idempotent.
	Init(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error

	// SaveResult inserts the result or replaces the one stored under the same key.
	SaveResult(ctx context.Context, result *Result) error
	// GetResult returns nil without error when no result is stored under key.
	GetResult(ctx context.Context, key string) (*Result, error)
	// ListResults returns all results ordered by day, part and creation time.
	ListResults(ctx context.Context) ([]*Result, error)
	DeleteResult(ctx context.Context, key string) error
}
