package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdesk/campus-info-api/internal/models"
	apperrors "github.com/campusdesk/campus-info-api/pkg/errors"
)

type mockAuthRepo struct {
	user      *models.User
	findErr   error
	createID  int64
	createErr error
	created   *models.SignupRequest
}

func (m *mockAuthRepo) FindByCredentials(ctx context.Context, email, password, role string) (*models.User, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	if m.user != nil && m.user.Email == email && m.user.Password == password && m.user.Role == role {
		cp := *m.user
		return &cp, nil
	}
	return nil, nil
}

func (m *mockAuthRepo) CreateStudent(ctx context.Context, req models.SignupRequest) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	m.created = &req
	return m.createID, nil
}

func TestAuthServiceSignup(t *testing.T) {
	repo := &mockAuthRepo{createID: 5}
	svc := NewAuthService(repo, nil, nil)

	user, err := svc.Signup(context.Background(), models.SignupRequest{
		Name: "Student A", Email: "a@campus.com", Password: "secret",
		Program: "BSc CS", Section: "A",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), user.ID)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.Empty(t, user.Password)
	require.NotNil(t, repo.created)
	assert.Equal(t, "secret", repo.created.Password)
}

func TestAuthServiceSignupMissingField(t *testing.T) {
	svc := NewAuthService(&mockAuthRepo{}, nil, nil)

	_, err := svc.Signup(context.Background(), models.SignupRequest{
		Name: "Student A", Email: "a@campus.com", Password: "secret",
		Program: "BSc CS",
	})
	require.Error(t, err)
	appErr := apperrors.FromError(err)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Equal(t, 400, appErr.Status)
}

func TestAuthServiceSignupDuplicateEmail(t *testing.T) {
	repo := &mockAuthRepo{createErr: apperrors.Clone(apperrors.ErrConflict, "Email already exists.")}
	svc := NewAuthService(repo, nil, nil)

	_, err := svc.Signup(context.Background(), models.SignupRequest{
		Name: "Student A", Email: "a@campus.com", Password: "secret",
		Program: "BSc CS", Section: "A",
	})
	require.Error(t, err)
	appErr := apperrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "Email already exists.", appErr.Message)
}

func TestAuthServiceLoginStripsPassword(t *testing.T) {
	repo := &mockAuthRepo{user: &models.User{
		ID: 7, Name: "Student A", Email: "a@campus.com",
		Password: "secret", Role: "student",
	}}
	svc := NewAuthService(repo, nil, nil)

	user, err := svc.Login(context.Background(), models.LoginRequest{
		Email: "a@campus.com", Password: "secret", Role: "student",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Empty(t, user.Password)
}

func TestAuthServiceLoginWrongRole(t *testing.T) {
	repo := &mockAuthRepo{user: &models.User{
		Email: "a@campus.com", Password: "secret", Role: "student",
	}}
	svc := NewAuthService(repo, nil, nil)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email: "a@campus.com", Password: "secret", Role: "admin",
	})
	require.Error(t, err)
	appErr := apperrors.FromError(err)
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.Code)
	assert.Equal(t, 401, appErr.Status)
}

func TestAuthServiceLoginStoreError(t *testing.T) {
	repo := &mockAuthRepo{findErr: apperrors.ErrStore}
	svc := NewAuthService(repo, nil, nil)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email: "a@campus.com", Password: "secret", Role: "student",
	})
	require.Error(t, err)
	assert.Equal(t, 500, apperrors.FromError(err).Status)
}
