package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdesk/campus-info-api/internal/models"
	apperrors "github.com/campusdesk/campus-info-api/pkg/errors"
)

func newStoreMock(t *testing.T) (*Store, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	store := NewStore(sqlx.NewDb(db, "sqlmock"), nil)
	return store, mock, func() { db.Close() }
}

func TestUserRepositoryFindByCredentials(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()
	repo := NewUserRepository(store)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "password", "role", "program", "section"}).
		AddRow(7, "Student A", "a@campus.com", "secret", "student", "BSc CS", "A")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, password, role, program, section FROM users WHERE email = ? AND password = ? AND role = ?")).
		WithArgs("a@campus.com", "secret", "student").
		WillReturnRows(rows)

	user, err := repo.FindByCredentials(context.Background(), "a@campus.com", "secret", "student")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "student", user.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryFindByCredentialsMiss(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()
	repo := NewUserRepository(store)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, password, role, program, section FROM users WHERE email = ? AND password = ? AND role = ?")).
		WithArgs("a@campus.com", "wrong", "student").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := repo.FindByCredentials(context.Background(), "a@campus.com", "wrong", "student")
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryCreateStudent(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()
	repo := NewUserRepository(store)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("Student A", "a@campus.com", "secret", "student", "BSc CS", "A").
		WillReturnResult(sqlmock.NewResult(11, 1))

	id, err := repo.CreateStudent(context.Background(), models.SignupRequest{
		Name: "Student A", Email: "a@campus.com", Password: "secret",
		Program: "BSc CS", Section: "A",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryCreateStudentDuplicateEmail(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()
	repo := NewUserRepository(store)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("constraint failed: UNIQUE constraint failed: users.email"))

	_, err := repo.CreateStudent(context.Background(), models.SignupRequest{
		Name: "Student A", Email: "a@campus.com", Password: "secret",
		Program: "BSc CS", Section: "A",
	})
	require.Error(t, err)
	appErr := apperrors.FromError(err)
	assert.Equal(t, "CONFLICT", appErr.Code)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "Email already exists.", appErr.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryListTeachers(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()
	repo := NewUserRepository(store)

	rows := sqlmock.NewRows([]string{"id", "name", "email"}).
		AddRow(2, "Teacher A", "ta@campus.com").
		AddRow(3, "Teacher B", "tb@campus.com")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email FROM users WHERE role = ? ORDER BY id")).
		WithArgs("teacher").
		WillReturnRows(rows)

	teachers, err := repo.ListTeachers(context.Background())
	require.NoError(t, err)
	require.Len(t, teachers, 2)
	assert.Equal(t, "Teacher A", teachers[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryDeleteTeacherNotFound(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()
	repo := NewUserRepository(store)

	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(99), "teacher").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteTeacher(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryUpdateTeacherWithPassword(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()
	repo := NewUserRepository(store)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET name = ?, email = ?, password = ? WHERE id = ? AND role = ?")).
		WithArgs("Teacher A", "ta@campus.com", "newpass", int64(2), "teacher").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateTeacher(context.Background(), 2, "Teacher A", "ta@campus.com", "newpass")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
