package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	apperrors "github.com/campusdesk/campus-info-api/pkg/errors"
)

// QueryObserver receives the duration of every store call. The metrics
// service plugs in here; a nil observer disables observation.
type QueryObserver func(op string, seconds float64)

// Result reports the outcome of a mutating statement.
type Result struct {
	LastInsertID int64
	RowsAffected int64
}

// Store is the single access point to the SQLite file. Every
// repository goes through it so that failures are uniformly wrapped
// as STORE_ERROR and durations are observed in one place.
type Store struct {
	db  *sqlx.DB
	obs QueryObserver
}

// NewStore constructs a Store around an open database handle.
func NewStore(db *sqlx.DB, obs QueryObserver) *Store {
	return &Store{db: db, obs: obs}
}

// DB exposes the underlying handle for schema setup and shutdown.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

func (s *Store) observe(op string, start time.Time) {
	if s.obs != nil {
		s.obs(op, time.Since(start).Seconds())
	}
}

// Execute runs a mutating statement.
func (s *Store) Execute(ctx context.Context, query string, args ...interface{}) (Result, error) {
	defer s.observe("execute", time.Now())

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return Result{}, apperrors.Wrap(err, apperrors.ErrStore.Code, apperrors.ErrStore.Status, apperrors.ErrStore.Message)
	}
	id, _ := res.LastInsertId()
	rows, _ := res.RowsAffected()
	return Result{LastInsertID: id, RowsAffected: rows}, nil
}

// Get scans a single row into a struct, passing sql.ErrNoRows
// through untouched so callers can map it to NOT_FOUND.
func (s *Store) Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	defer s.observe("get", time.Now())

	if err := s.db.GetContext(ctx, dest, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return err
		}
		return apperrors.Wrap(err, apperrors.ErrStore.Code, apperrors.ErrStore.Status, apperrors.ErrStore.Message)
	}
	return nil
}

// Select scans all rows into a slice of structs.
func (s *Store) Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	defer s.observe("select", time.Now())

	if err := s.db.SelectContext(ctx, dest, query, args...); err != nil {
		return apperrors.Wrap(err, apperrors.ErrStore.Code, apperrors.ErrStore.Status, apperrors.ErrStore.Message)
	}
	return nil
}

// FetchOne returns the first row of a query as a column map, or
// sql.ErrNoRows when the query matches nothing.
func (s *Store) FetchOne(ctx context.Context, query string, args ...interface{}) (map[string]interface{}, error) {
	defer s.observe("fetch_one", time.Now())

	row := s.db.QueryRowxContext(ctx, query, args...)
	out := map[string]interface{}{}
	if err := row.MapScan(out); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, apperrors.Wrap(err, apperrors.ErrStore.Code, apperrors.ErrStore.Status, apperrors.ErrStore.Message)
	}
	return out, nil
}

// FetchAll returns every row of a query as column maps.
func (s *Store) FetchAll(ctx context.Context, query string, args ...interface{}) ([]map[string]interface{}, error) {
	defer s.observe("fetch_all", time.Now())

	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrStore.Code, apperrors.ErrStore.Status, apperrors.ErrStore.Message)
	}
	defer rows.Close()

	var out []map[string]interface{}
	for rows.Next() {
		m := map[string]interface{}{}
		if err := rows.MapScan(m); err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrStore.Code, apperrors.ErrStore.Status, apperrors.ErrStore.Message)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrStore.Code, apperrors.ErrStore.Status, apperrors.ErrStore.Message)
	}
	return out, nil
}
