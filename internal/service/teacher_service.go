package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusdesk/campus-info-api/internal/models"
	appErrors "github.com/campusdesk/campus-info-api/pkg/errors"
)

type teacherUserRepository interface {
	ListTeachers(ctx context.Context) ([]models.TeacherInfo, error)
	FindTeacherByID(ctx context.Context, id int64) (*models.TeacherInfo, error)
	CreateTeacher(ctx context.Context, name, email, password string) (int64, error)
	UpdateTeacher(ctx context.Context, id int64, name, email, password string) error
	DeleteTeacher(ctx context.Context, id int64) error
}

// CreateTeacherRequest is the payload for creating teacher accounts.
type CreateTeacherRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateTeacherRequest is the payload for editing a teacher account.
// The password is only changed when a non-empty one is supplied.
type UpdateTeacherRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
}

// TeacherService manages the teacher accounts view over the users
// table.
type TeacherService struct {
	repo      teacherUserRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTeacherService constructs a TeacherService.
func NewTeacherService(repo teacherUserRepository, validate *validator.Validate, logger *zap.Logger) *TeacherService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherService{repo: repo, validator: validate, logger: logger}
}

// List returns every teacher account without passwords.
func (s *TeacherService) List(ctx context.Context) ([]models.TeacherInfo, error) {
	teachers, err := s.repo.ListTeachers(ctx)
	if err != nil {
		return nil, err
	}
	if teachers == nil {
		teachers = []models.TeacherInfo{}
	}
	return teachers, nil
}

// Get returns one teacher account.
func (s *TeacherService) Get(ctx context.Context, id int64) (*models.TeacherInfo, error) {
	return s.repo.FindTeacherByID(ctx, id)
}

// Create registers a teacher account.
func (s *TeacherService) Create(ctx context.Context, req CreateTeacherRequest) (*models.TeacherInfo, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Name, email and password are required.")
	}

	id, err := s.repo.CreateTeacher(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	s.logger.Info("teacher created", zap.Int64("teacher_id", id))
	return &models.TeacherInfo{ID: id, Name: req.Name, Email: req.Email}, nil
}

// Update changes name and email of a teacher account.
func (s *TeacherService) Update(ctx context.Context, id int64, req UpdateTeacherRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "Name and email are required.")
	}

	if err := s.repo.UpdateTeacher(ctx, id, req.Name, req.Email, req.Password); err != nil {
		return err
	}
	s.logger.Info("teacher updated", zap.Int64("teacher_id", id))
	return nil
}

// Delete removes a teacher account. Uploaded notes stay behind.
func (s *TeacherService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteTeacher(ctx, id); err != nil {
		return err
	}
	s.logger.Info("teacher deleted", zap.Int64("teacher_id", id))
	return nil
}
