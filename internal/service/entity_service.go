package service

import (
	"context"

	"go.uber.org/zap"

	appErrors "github.com/campusdesk/campus-info-api/pkg/errors"
)

type entityRepository interface {
	List(ctx context.Context, table string) ([]map[string]interface{}, error)
	Get(ctx context.Context, table string, id int64) (map[string]interface{}, error)
	Create(ctx context.Context, table string, fields map[string]interface{}) (int64, error)
	Update(ctx context.Context, table string, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, table string, id int64) error
}

// EntityService handles the uniform admin CRUD over the simple
// managed tables.
type EntityService struct {
	repo   entityRepository
	logger *zap.Logger
}

// NewEntityService constructs an EntityService.
func NewEntityService(repo entityRepository, logger *zap.Logger) *EntityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EntityService{repo: repo, logger: logger}
}

// sanitizeFields drops keys that must never be written through the
// generic path, whatever the client sends.
func sanitizeFields(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if k == "id" || k == "password" {
			continue
		}
		out[k] = v
	}
	return out
}

// List returns every row of the table.
func (s *EntityService) List(ctx context.Context, table string) ([]map[string]interface{}, error) {
	rows, err := s.repo.List(ctx, table)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []map[string]interface{}{}
	}
	return rows, nil
}

// Get returns one row by id.
func (s *EntityService) Get(ctx context.Context, table string, id int64) (map[string]interface{}, error) {
	return s.repo.Get(ctx, table, id)
}

// Create inserts a row from the supplied fields and returns its id.
func (s *EntityService) Create(ctx context.Context, table string, fields map[string]interface{}) (int64, error) {
	fields = sanitizeFields(fields)
	if len(fields) == 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "no fields supplied")
	}

	id, err := s.repo.Create(ctx, table, fields)
	if err != nil {
		return 0, err
	}
	s.logger.Info("entity created", zap.String("table", table), zap.Int64("id", id))
	return id, nil
}

// Update overwrites the supplied columns of one row.
func (s *EntityService) Update(ctx context.Context, table string, id int64, fields map[string]interface{}) error {
	fields = sanitizeFields(fields)
	if len(fields) == 0 {
		return appErrors.Clone(appErrors.ErrValidation, "no fields supplied")
	}

	if err := s.repo.Update(ctx, table, id, fields); err != nil {
		return err
	}
	s.logger.Info("entity updated", zap.String("table", table), zap.Int64("id", id))
	return nil
}

// Delete removes one row.
func (s *EntityService) Delete(ctx context.Context, table string, id int64) error {
	if err := s.repo.Delete(ctx, table, id); err != nil {
		return err
	}
	s.logger.Info("entity deleted", zap.String("table", table), zap.Int64("id", id))
	return nil
}
