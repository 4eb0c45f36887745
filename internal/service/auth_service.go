package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusdesk/campus-info-api/internal/models"
	appErrors "github.com/campusdesk/campus-info-api/pkg/errors"
)

type authUserRepository interface {
	FindByCredentials(ctx context.Context, email, password, role string) (*models.User, error)
	CreateStudent(ctx context.Context, req models.SignupRequest) (int64, error)
}

// AuthService provides signup and login use cases. Passwords are
// stored and compared as plain text; the service never returns them.
type AuthService struct {
	repo      authUserRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthService constructs an AuthService.
func NewAuthService(repo authUserRepository, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{repo: repo, validator: validate, logger: logger}
}

// Signup registers a new student account. Every field is required and
// the role is always student.
func (s *AuthService) Signup(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "All fields are required.")
	}

	id, err := s.repo.CreateStudent(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("student registered", zap.Int64("user_id", id), zap.String("email", req.Email))

	program := req.Program
	section := req.Section
	return &models.User{
		ID:      id,
		Name:    req.Name,
		Email:   req.Email,
		Role:    models.RoleStudent,
		Program: &program,
		Section: &section,
	}, nil
}

// Login checks the exact email, password and role combination. Any
// mismatch yields the same INVALID_CREDENTIALS error.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Email, password and role are required.")
	}

	user, err := s.repo.FindByCredentials(ctx, req.Email, req.Password, req.Role)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "Invalid credentials or role.")
	}

	s.logger.Info("login", zap.Int64("user_id", user.ID), zap.String("role", user.Role))

	user.Password = ""
	return user, nil
}
