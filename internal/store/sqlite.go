package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(connectionString string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", connectionString)
	if err != nil {
		return nil, err
	}
	// Every connection to ":memory:" is its own database.
	db.SetMaxOpenConns(1)
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Init(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS results (
		result_key TEXT PRIMARY KEY,
		day INTEGER NOT NULL,
		part INTEGER NOT NULL,
		answer INTEGER NOT NULL,
		duration_ns INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	)`)
	return err
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) SaveResult(ctx context.Context, r *Result) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO results (result_key, day, part, answer, duration_ns, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(result_key) DO UPDATE SET
			answer = excluded.answer,
			duration_ns = excluded.duration_ns,
			created_at = excluded.created_at`,
		r.Key, r.Day, r.Part, r.Answer, int64(r.Duration), r.CreatedAt.UnixNano())
	return err
}

func (s *SQLiteStore) GetResult(ctx context.Context, key string) (*Result, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT result_key, day, part, answer, duration_ns, created_at FROM results WHERE result_key = ?", key)
	r, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return r, err
}

func (s *SQLiteStore) ListResults(ctx context.Context) ([]*Result, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT result_key, day, part, answer, duration_ns, created_at FROM results ORDER BY day, part, created_at, result_key")
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	var results []*Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

func (s *SQLiteStore) DeleteResult(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM results WHERE result_key = ?", key)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResult(row rowScanner) (*Result, error) {
	var r Result
	var duration, created int64
	if err := row.Scan(&r.Key, &r.Day, &r.Part, &r.Answer, &duration, &created); err != nil {
		return nil, err
	}
	r.Duration = time.Duration(duration)
	r.CreatedAt = time.Unix(0, created).UTC()
	return &r, nil
}
