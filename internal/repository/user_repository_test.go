package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserMock(t *testing.T) (*UserRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewUserRepo(db), mock
}

func TestUserCreateNormalizesEmail(t *testing.T) {
	repo, mock := newUserMock(t)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("Ada Lovelace", "0123456789", "ada@example.com", sqlmock.AnyArg(), "SELLER").
		WillReturnResult(sqlmock.NewResult(5, 1))

	id, err := repo.Create(context.Background(), "Ada Lovelace", "0123456789",
		"  Ada@Example.COM ", "secret1", "SELLER", 4)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	repo, mock := newUserMock(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'ada@example.com' for key 'uq_users_email'"))

	_, err := repo.Create(context.Background(), "Ada Lovelace", "0123456789",
		"ada@example.com", "secret1", "BUYER", 4)
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestUserGetByEmail(t *testing.T) {
	repo, mock := newUserMock(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email=").
		WithArgs("ada@example.com").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "full_name", "phone", "email", "password_hash", "role", "is_active", "created_at", "updated_at",
		}).AddRow(5, "Ada Lovelace", "0123456789", "ada@example.com", "$2a$hash", "BUYER", true, now, now))

	u, err := repo.GetByEmail(context.Background(), "Ada@Example.com")
	require.NoError(t, err)
	assert.Equal(t, uint64(5), u.ID)
	assert.Equal(t, "BUYER", u.Role)
	assert.True(t, u.IsActive)
}
