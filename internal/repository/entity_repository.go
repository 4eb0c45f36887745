package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	apperrors "github.com/campusdesk/campus-info-api/pkg/errors"
)

// entityColumns is the allow-list of writable columns per managed
// table. Anything outside this map never reaches the SQL layer.
var entityColumns = map[string]map[string]bool{
	"timetables": {"program": true, "section": true, "course": true, "day": true, "time": true, "room": true},
	"schedules":  {"subject": true, "date": true, "details": true},
	"events":     {"title": true, "date": true, "description": true},
	"contacts":   {"name": true, "department": true, "email": true},
}

// EntityRepository provides uniform row access for the simple managed
// tables (timetables, schedules, events, contacts).
type EntityRepository struct {
	store *Store
}

// NewEntityRepository constructs an EntityRepository.
func NewEntityRepository(store *Store) *EntityRepository {
	return &EntityRepository{store: store}
}

// Known reports whether a table is managed by this repository.
func Known(table string) bool {
	_, ok := entityColumns[table]
	return ok
}

func checkColumns(table string, fields map[string]interface{}) error {
	allowed, ok := entityColumns[table]
	if !ok {
		return apperrors.Clone(apperrors.ErrValidation, fmt.Sprintf("unknown table %q", table))
	}
	for col := range fields {
		if !allowed[col] {
			return apperrors.Clone(apperrors.ErrValidation, fmt.Sprintf("unknown column %q for %s", col, table))
		}
	}
	return nil
}

// sortedKeys keeps generated SQL deterministic.
func sortedKeys(fields map[string]interface{}) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// List returns every row of the table ordered by id.
func (r *EntityRepository) List(ctx context.Context, table string) ([]map[string]interface{}, error) {
	if !Known(table) {
		return nil, apperrors.Clone(apperrors.ErrValidation, fmt.Sprintf("unknown table %q", table))
	}
	return r.store.FetchAll(ctx, fmt.Sprintf("SELECT * FROM %s ORDER BY id", table))
}

// Get returns one row by id, or NOT_FOUND.
func (r *EntityRepository) Get(ctx context.Context, table string, id int64) (map[string]interface{}, error) {
	if !Known(table) {
		return nil, apperrors.Clone(apperrors.ErrValidation, fmt.Sprintf("unknown table %q", table))
	}
	row, err := r.store.FetchOne(ctx, fmt.Sprintf("SELECT * FROM %s WHERE id = ?", table), id)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Create inserts a row and returns its new id.
func (r *EntityRepository) Create(ctx context.Context, table string, fields map[string]interface{}) (int64, error) {
	if err := checkColumns(table, fields); err != nil {
		return 0, err
	}

	keys := sortedKeys(fields)
	placeholders := make([]string, len(keys))
	args := make([]interface{}, len(keys))
	for i, k := range keys {
		placeholders[i] = "?"
		args[i] = fields[k]
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(keys, ", "), strings.Join(placeholders, ", "))
	res, err := r.store.Execute(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertID, nil
}

// Update overwrites the given columns of one row. It reports
// NOT_FOUND when no row has the id.
func (r *EntityRepository) Update(ctx context.Context, table string, id int64, fields map[string]interface{}) error {
	if err := checkColumns(table, fields); err != nil {
		return err
	}

	keys := sortedKeys(fields)
	sets := make([]string, len(keys))
	args := make([]interface{}, 0, len(keys)+1)
	for i, k := range keys {
		sets[i] = k + " = ?"
		args = append(args, fields[k])
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", table, strings.Join(sets, ", "))
	res, err := r.store.Execute(ctx, query, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes one row by id.
func (r *EntityRepository) Delete(ctx context.Context, table string, id int64) error {
	if !Known(table) {
		return apperrors.Clone(apperrors.ErrValidation, fmt.Sprintf("unknown table %q", table))
	}
	res, err := r.store.Execute(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", table), id)
	if err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
