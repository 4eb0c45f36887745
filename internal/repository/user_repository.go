package repository

import (
	"context"
	"database/sql"
	"strings"

	apperrors "github.com/campusdesk/campus-info-api/pkg/errors"

	"github.com/campusdesk/campus-info-api/internal/models"
)

// UserRepository manages persistence for user accounts.
type UserRepository struct {
	store *Store
}

// NewUserRepository constructs a UserRepository.
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// FindByEmail returns the user with the given email, or nil when no
// account exists.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.store.Get(ctx, &u, "SELECT id, name, email, password, role, program, section FROM users WHERE email = ?", email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByCredentials matches the exact email, password and role
// triple. A miss on any of the three returns nil.
func (r *UserRepository) FindByCredentials(ctx context.Context, email, password, role string) (*models.User, error) {
	var u models.User
	err := r.store.Get(ctx, &u,
		"SELECT id, name, email, password, role, program, section FROM users WHERE email = ? AND password = ? AND role = ?",
		email, password, role)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateStudent inserts a student account and returns its id. A
// duplicate email surfaces as CONFLICT.
func (r *UserRepository) CreateStudent(ctx context.Context, req models.SignupRequest) (int64, error) {
	res, err := r.store.Execute(ctx,
		"INSERT INTO users (name, email, password, role, program, section) VALUES (?, ?, ?, ?, ?, ?)",
		req.Name, req.Email, req.Password, models.RoleStudent, req.Program, req.Section)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, apperrors.Clone(apperrors.ErrConflict, "Email already exists.")
		}
		return 0, err
	}
	return res.LastInsertID, nil
}

// ListTeachers returns every teacher account, newest last.
func (r *UserRepository) ListTeachers(ctx context.Context) ([]models.TeacherInfo, error) {
	var teachers []models.TeacherInfo
	err := r.store.Select(ctx, &teachers,
		"SELECT id, name, email FROM users WHERE role = ? ORDER BY id", models.RoleTeacher)
	if err != nil {
		return nil, err
	}
	return teachers, nil
}

// FindTeacherByID returns one teacher account, or NOT_FOUND.
func (r *UserRepository) FindTeacherByID(ctx context.Context, id int64) (*models.TeacherInfo, error) {
	var t models.TeacherInfo
	err := r.store.Get(ctx, &t,
		"SELECT id, name, email FROM users WHERE id = ? AND role = ?", id, models.RoleTeacher)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTeacher inserts a teacher account and returns its id.
func (r *UserRepository) CreateTeacher(ctx context.Context, name, email, password string) (int64, error) {
	res, err := r.store.Execute(ctx,
		"INSERT INTO users (name, email, password, role) VALUES (?, ?, ?, ?)",
		name, email, password, models.RoleTeacher)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, apperrors.Clone(apperrors.ErrConflict, "Email already exists.")
		}
		return 0, err
	}
	return res.LastInsertID, nil
}

// UpdateTeacher overwrites name and email of a teacher row, and the
// password too when a new one is supplied.
func (r *UserRepository) UpdateTeacher(ctx context.Context, id int64, name, email, password string) error {
	var (
		res Result
		err error
	)
	if password != "" {
		res, err = r.store.Execute(ctx,
			"UPDATE users SET name = ?, email = ?, password = ? WHERE id = ? AND role = ?",
			name, email, password, id, models.RoleTeacher)
	} else {
		res, err = r.store.Execute(ctx,
			"UPDATE users SET name = ?, email = ? WHERE id = ? AND role = ?",
			name, email, id, models.RoleTeacher)
	}
	if err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTeacher removes a teacher account. Notes uploaded by the
// teacher are left in place.
func (r *UserRepository) DeleteTeacher(ctx context.Context, id int64) error {
	res, err := r.store.Execute(ctx,
		"DELETE FROM users WHERE id = ? AND role = ?", id, models.RoleTeacher)
	if err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// isUniqueViolation detects the SQLite unique constraint error on
// users.email without depending on driver error types.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique")
}
