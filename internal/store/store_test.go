package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func newTestSQLiteStore(t *testing.T) ResultStore {
	t.Helper()

	s, err := NewResultStore(context.Background(), "sqlite", ":memory:")
	if err != nil {
		t.Fatalf("NewResultStore(sqlite) error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newTestRedisStore(t *testing.T) ResultStore {
	t.Helper()

	mr := miniredis.RunT(t)
	s, err := NewResultStore(context.Background(), "redis", "redis://"+mr.Addr())
	if err != nil {
		t.Fatalf("NewResultStore(redis) error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

var testStores = map[string]func(t *testing.T) ResultStore{
	"sqlite": newTestSQLiteStore,
	"redis":  newTestRedisStore,
}

func testResult(key string, day, part int, answer int64, created time.Time) *Result {
	return &Result{
		Key:       key,
		Day:       day,
		Part:      part,
		Answer:    answer,
		Duration:  1500 * time.Microsecond,
		CreatedAt: created,
	}
}

func TestStore_SaveAndGet(t *testing.T) {
	for name, newStore := range testStores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t)
			created := time.Date(2023, 12, 1, 6, 0, 0, 0, time.UTC)

			if err := s.SaveResult(ctx, testResult("d01-p1-aaaa", 1, 1, 142, created)); err != nil {
				t.Fatalf("SaveResult error: %v", err)
			}
			got, err := s.GetResult(ctx, "d01-p1-aaaa")
			if err != nil {
				t.Fatalf("GetResult error: %v", err)
			}
			if got == nil {
				t.Fatal("expected stored result, got nil")
			}
			if got.Answer != 142 || got.Day != 1 || got.Part != 1 {
				t.Errorf("unexpected result %+v", got)
			}
			if got.Duration != 1500*time.Microsecond {
				t.Errorf("expected duration 1.5ms, got %v", got.Duration)
			}
			if !got.CreatedAt.Equal(created) {
				t.Errorf("expected created %v, got %v", created, got.CreatedAt)
			}
		})
	}
}

func TestStore_GetMissing(t *testing.T) {
	for name, newStore := range testStores {
		t.Run(name, func(t *testing.T) {
			got, err := newStore(t).GetResult(context.Background(), "d01-p1-missing")
			if err != nil {
				t.Fatalf("GetResult error: %v", err)
			}
			if got != nil {
				t.Errorf("expected nil for missing key, got %+v", got)
			}
		})
	}
}

func TestStore_SaveReplaces(t *testing.T) {
	for name, newStore := range testStores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t)
			now := time.Now().UTC()

			if err := s.SaveResult(ctx, testResult("k", 2, 1, 1, now)); err != nil {
				t.Fatalf("SaveResult #1 error: %v", err)
			}
			if err := s.SaveResult(ctx, testResult("k", 2, 1, 2, now)); err != nil {
				t.Fatalf("SaveResult #2 error: %v", err)
			}
			results, err := s.ListResults(ctx)
			if err != nil {
				t.Fatalf("ListResults error: %v", err)
			}
			if len(results) != 1 || results[0].Answer != 2 {
				t.Errorf("expected one result with answer 2, got %+v", results)
			}
		})
	}
}

func TestStore_ListOrdered(t *testing.T) {
	for name, newStore := range testStores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t)
			base := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)

			inserts := []*Result{
				testResult("c", 3, 2, 30, base),
				testResult("a", 1, 2, 12, base),
				testResult("b", 1, 1, 11, base.Add(time.Hour)),
				testResult("d", 1, 1, 10, base),
			}
			for _, r := range inserts {
				if err := s.SaveResult(ctx, r); err != nil {
					t.Fatalf("SaveResult(%s) error: %v", r.Key, err)
				}
			}

			results, err := s.ListResults(ctx)
			if err != nil {
				t.Fatalf("ListResults error: %v", err)
			}
			want := []string{"d", "b", "a", "c"}
			if len(results) != len(want) {
				t.Fatalf("expected %d results, got %d", len(want), len(results))
			}
			for i, key := range want {
				if results[i].Key != key {
					t.Errorf("results[%d] = %s, want %s", i, results[i].Key, key)
				}
			}
		})
	}
}

func TestStore_Delete(t *testing.T) {
	for name, newStore := range testStores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t)

			if err := s.SaveResult(ctx, testResult("gone", 4, 1, 13, time.Now())); err != nil {
				t.Fatalf("SaveResult error: %v", err)
			}
			if err := s.DeleteResult(ctx, "gone"); err != nil {
				t.Fatalf("DeleteResult error: %v", err)
			}
			if got, _ := s.GetResult(ctx, "gone"); got != nil {
				t.Errorf("expected deleted result to be gone, got %+v", got)
			}
			results, err := s.ListResults(ctx)
			if err != nil {
				t.Fatalf("ListResults error: %v", err)
			}
			if len(results) != 0 {
				t.Errorf("expected no results, got %d", len(results))
			}
			if err := s.DeleteResult(ctx, "never-stored"); err != nil {
				t.Errorf("deleting an unknown key should not fail: %v", err)
			}
		})
	}
}

func TestStore_Ping(t *testing.T) {
	for name, newStore := range testStores {
		t.Run(name, func(t *testing.T) {
			if err := newStore(t).Ping(context.Background()); err != nil {
				t.Errorf("Ping error: %v", err)
			}
		})
	}
}

func TestNewResultStore_Unsupported(t *testing.T) {
	if _, err := NewResultStore(context.Background(), "postgres", ""); err == nil {
		t.Fatal("expected error for unsupported store type")
	}
}

func TestNewResultStore_RedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	if _, err := NewResultStore(context.Background(), "redis", addr); err == nil {
		t.Fatal("expected error when redis is unreachable")
	}
}
