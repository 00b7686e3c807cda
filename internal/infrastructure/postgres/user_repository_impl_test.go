package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authapi/internal/domain/entity"
	"authapi/internal/domain/repository"
)

func TestUserRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "hashed-pw").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("11111111-2222-3333-4444-555555555555", now, now))

	r := NewUserRepository(mock)
	u := &entity.User{Username: "alice", Password: "hashed-pw"}
	require.NoError(t, r.Create(context.Background(), u))

	assert.Equal(t, "11111111-2222-3333-4444-555555555555", u.ID)
	assert.Equal(t, now, u.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_UniqueViolation(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "hashed-pw").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	r := NewUserRepository(mock)
	u := &entity.User{Username: "alice", Password: "hashed-pw"}
	err = r.Create(context.Background(), u)

	assert.ErrorIs(t, err, repository.ErrDuplicateUsername)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT id, username, password_hash, created_at, updated_at").
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password_hash", "created_at", "updated_at"}).
			AddRow("uid-1", "alice", "hashed-pw", now, now))

	r := NewUserRepository(mock)
	u, err := r.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, "uid-1", u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "hashed-pw", u.Password)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByUsername_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, username, password_hash, created_at, updated_at").
		WithArgs("nobody").
		WillReturnError(pgx.ErrNoRows)

	r := NewUserRepository(mock)
	_, err = r.GetByUsername(context.Background(), "nobody")

	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, username, password_hash, created_at, updated_at").
		WithArgs("uid-gone").
		WillReturnError(pgx.ErrNoRows)

	r := NewUserRepository(mock)
	_, err = r.GetByID(context.Background(), "uid-gone")

	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditLogger_Record(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("INSERT INTO audit_logs").
		WithArgs(pgxmock.AnyArg(), "alice", "login", "10.0.0.1", "test-agent", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	a := NewAuditLogger(mock, nil)
	a.Record(context.Background(), AuditEntry{
		Username:  "alice",
		Action:    "login",
		IP:        "10.0.0.1",
		UserAgent: "test-agent",
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditLogger_NilSafe(t *testing.T) {
	var a *AuditLogger
	// Must not panic with a nil receiver or nil db.
	a.Record(context.Background(), AuditEntry{Action: "noop"})
	NewAuditLogger(nil, nil).Record(context.Background(), AuditEntry{Action: "noop"})
}
