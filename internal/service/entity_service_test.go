package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/campusdesk/campus-info-api/pkg/errors"
)

type mockEntityRepo struct {
	rows      []map[string]interface{}
	row       map[string]interface{}
	createID  int64
	gotFields map[string]interface{}
	err       error
}

func (m *mockEntityRepo) List(ctx context.Context, table string) ([]map[string]interface{}, error) {
	return m.rows, m.err
}

func (m *mockEntityRepo) Get(ctx context.Context, table string, id int64) (map[string]interface{}, error) {
	return m.row, m.err
}

func (m *mockEntityRepo) Create(ctx context.Context, table string, fields map[string]interface{}) (int64, error) {
	m.gotFields = fields
	return m.createID, m.err
}

func (m *mockEntityRepo) Update(ctx context.Context, table string, id int64, fields map[string]interface{}) error {
	m.gotFields = fields
	return m.err
}

func (m *mockEntityRepo) Delete(ctx context.Context, table string, id int64) error {
	return m.err
}

func TestEntityServiceListNeverNil(t *testing.T) {
	svc := NewEntityService(&mockEntityRepo{}, nil)

	rows, err := svc.List(context.Background(), "events")
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestEntityServiceCreateDropsProtectedKeys(t *testing.T) {
	repo := &mockEntityRepo{createID: 3}
	svc := NewEntityService(repo, nil)

	id, err := svc.Create(context.Background(), "events", map[string]interface{}{
		"id":       99,
		"password": "sneaky",
		"title":    "Tech Fest",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
	assert.Equal(t, map[string]interface{}{"title": "Tech Fest"}, repo.gotFields)
}

func TestEntityServiceUpdateEmptyPayload(t *testing.T) {
	svc := NewEntityService(&mockEntityRepo{}, nil)

	err := svc.Update(context.Background(), "events", 1, map[string]interface{}{})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperrors.FromError(err).Code)
}

// A payload holding only protected keys is empty after sanitizing.
func TestEntityServiceUpdateOnlyProtectedKeys(t *testing.T) {
	svc := NewEntityService(&mockEntityRepo{}, nil)

	err := svc.Update(context.Background(), "events", 1, map[string]interface{}{"password": "x"})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperrors.FromError(err).Code)
}

func TestEntityServiceDeletePropagatesNotFound(t *testing.T) {
	svc := NewEntityService(&mockEntityRepo{err: apperrors.ErrNotFound}, nil)

	err := svc.Delete(context.Background(), "events", 404)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
