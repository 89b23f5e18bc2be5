package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venueverse/venue-verse/internal/config"
	"github.com/venueverse/venue-verse/internal/model"
	"github.com/venueverse/venue-verse/internal/repository"
	"github.com/venueverse/venue-verse/internal/utils"
)

func newAuthHandlerMock(t *testing.T) (*AuthHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	cfg := config.Config{
		JWTSecret:      "test-secret",
		AccessTTLMin:   15,
		RefreshTTLDays: 7,
		BcryptCost:     4, // keep tests fast
	}
	return NewAuthHandler(cfg, repository.NewUserRepo(db), repository.NewTokenRepo(db)), mock
}

func authContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestRegisterValidation(t *testing.T) {
	h, mock := newAuthHandlerMock(t)

	c, rec := authContext(t, `{"full_name":"","phone":"12345","email":"not-an-email","password":"123"}`)
	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Errors, "full_name")
	assert.Contains(t, body.Errors, "phone")
	assert.Contains(t, body.Errors, "email")
	assert.Contains(t, body.Errors, "password")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterDefaultsToBuyer(t *testing.T) {
	h, mock := newAuthHandlerMock(t)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("Ada Lovelace", "0123456789", "ada@example.com", sqlmock.AnyArg(), "BUYER").
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectExec("INSERT INTO refresh_tokens").
		WillReturnResult(sqlmock.NewResult(1, 1))

	c, rec := authContext(t, `{"full_name":"Ada Lovelace","phone":"0123456789","email":"Ada@Example.com","password":"secret1","role":"admin"}`)
	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		User struct {
			Role string `json:"role"`
		} `json:"user"`
		Access struct {
			Token string `json:"token"`
		} `json:"access"`
		Refresh struct {
			Token string `json:"token"`
		} `json:"refresh"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, model.RoleBuyer, body.User.Role)
	assert.NotEmpty(t, body.Access.Token)
	assert.NotEmpty(t, body.Refresh.Token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginDisabledAccountForbidden(t *testing.T) {
	h, mock := newAuthHandlerMock(t)
	now := time.Now()

	hash, err := utils.HashPassword("secret1", 4)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email=").
		WithArgs("ada@example.com").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "full_name", "phone", "email", "password_hash", "role", "is_active", "created_at", "updated_at",
		}).AddRow(5, "Ada Lovelace", "0123456789", "ada@example.com", hash, "BUYER", false, now, now))

	c, rec := authContext(t, `{"email":"ada@example.com","password":"secret1"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestLoginWrongPasswordUnauthorized(t *testing.T) {
	h, mock := newAuthHandlerMock(t)
	now := time.Now()

	hash, err := utils.HashPassword("secret1", 4)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email=").
		WithArgs("ada@example.com").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "full_name", "phone", "email", "password_hash", "role", "is_active", "created_at", "updated_at",
		}).AddRow(5, "Ada Lovelace", "0123456789", "ada@example.com", hash, "BUYER", true, now, now))

	c, rec := authContext(t, `{"email":"ada@example.com","password":"wrong"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginUnknownEmailUnauthorized(t *testing.T) {
	h, mock := newAuthHandlerMock(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email=").
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "full_name", "phone", "email", "password_hash", "role", "is_active", "created_at", "updated_at",
		}))

	c, rec := authContext(t, `{"email":"ghost@example.com","password":"secret1"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestValidPhone(t *testing.T) {
	assert.True(t, validPhone("0123456789"))
	assert.True(t, validPhone("123456789012345"))
	assert.False(t, validPhone("123456789"))       // too short
	assert.False(t, validPhone("1234567890123456")) // too long
	assert.False(t, validPhone("01234abcde"))
	assert.False(t, validPhone("01234567٨٩")) // non-ASCII digit runes
	assert.False(t, validPhone("0123456789 "))
}
