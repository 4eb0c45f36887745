package repository

import (
	"context"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdesk/campus-info-api/pkg/config"
	apperrors "github.com/campusdesk/campus-info-api/pkg/errors"
)

func TestStoreFetchAllMapsRows(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "title"}).
		AddRow(1, "Tech Fest").
		AddRow(2, "Hackathon")
	mock.ExpectQuery("SELECT id, title FROM events").WillReturnRows(rows)

	out, err := store.FetchAll(context.Background(), "SELECT id, title FROM events")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Hackathon", out[1]["title"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreWrapsEngineFailures(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO events").WillReturnError(errors.New("disk I/O error"))

	_, err := store.Execute(context.Background(), "INSERT INTO events (title) VALUES (?)", "x")
	require.Error(t, err)
	appErr := apperrors.FromError(err)
	assert.Equal(t, "STORE_ERROR", appErr.Code)
	assert.Equal(t, 500, appErr.Status)
}

func TestStoreObservesDurations(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	var ops []string
	store := NewStore(sqlx.NewDb(db, "sqlmock"), func(op string, seconds float64) {
		ops = append(ops, op)
	})

	mock.ExpectExec("INSERT").WillReturnResult(sqlmock.NewResult(1, 1))
	_, err = store.Execute(context.Background(), "INSERT INTO events (title) VALUES (?)", "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"execute"}, ops)
}

func TestInitSchemaSeedsAdminOnce(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()

	for range schemaStatements {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectQuery("SELECT id FROM users WHERE email").
		WithArgs("admin@campus.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("INSERT INTO users").
		WithArgs("Admin User", "admin@campus.com", "admin123", "admin").
		WillReturnResult(sqlmock.NewResult(1, 1))

	seed := config.SeedConfig{AdminName: "Admin User", AdminEmail: "admin@campus.com", AdminPassword: "admin123"}
	require.NoError(t, InitSchema(context.Background(), store, seed))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitSchemaSkipsSeedWhenAdminExists(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()

	for range schemaStatements {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectQuery("SELECT id FROM users WHERE email").
		WithArgs("admin@campus.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	seed := config.SeedConfig{AdminName: "Admin User", AdminEmail: "admin@campus.com", AdminPassword: "admin123"}
	require.NoError(t, InitSchema(context.Background(), store, seed))
	assert.NoError(t, mock.ExpectationsWereMet())
}
