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

	"github.com/venueverse/venue-verse/internal/repository"
)

func newVenueHandlerMock(t *testing.T) (*SellerVenueHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSellerVenueHandler(repository.NewVenueRepo(db)), mock
}

func sellerContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.Set("user_id", float64(3))
	c.Set("role", "SELLER")
	return c, rec
}

func TestCreateVenueValidation(t *testing.T) {
	h, mock := newVenueHandlerMock(t)

	c, rec := sellerContext(t, http.MethodPost, "/v1/my-venues",
		`{"name":"ab","open_time":"","close_time":"10 pm","open_days":[],"location":" ","price":0}`)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Errors, "name")
	assert.Contains(t, body.Errors, "open_time")
	assert.Contains(t, body.Errors, "open_days")
	assert.Contains(t, body.Errors, "location")
	assert.Contains(t, body.Errors, "price")
	assert.NotContains(t, body.Errors, "close_time")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateVenueRejectsUnknownDay(t *testing.T) {
	h, mock := newVenueHandlerMock(t)

	c, rec := sellerContext(t, http.MethodPost, "/v1/my-venues",
		`{"name":"Grand Hall","open_time":"9 am","close_time":"10 pm","open_days":["funday"],"location":"Downtown","price":5000}`)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Errors, "open_days")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateVenueSuccess(t *testing.T) {
	h, mock := newVenueHandlerMock(t)
	now := time.Now()

	mock.ExpectExec("INSERT INTO venues").
		WithArgs(uint64(3), "Grand Hall", "9 am", "10 pm", "monday,wednesday",
			true, false, false, "Downtown", 5000.0).
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectQuery("SELECT (.+) FROM venues WHERE id = ?").
		WithArgs(uint64(11)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "owner_id", "name", "open_time", "close_time", "open_days",
			"has_ac", "has_sound_system", "has_food_court", "location", "price", "created_at",
		}).AddRow(11, 3, "Grand Hall", "9 am", "10 pm", "monday,wednesday", true, false, false, "Downtown", 5000.0, now))

	// Mixed-case day names are normalized before storage.
	c, rec := sellerContext(t, http.MethodPost, "/v1/my-venues",
		`{"name":"Grand Hall","open_time":"9 am","close_time":"10 pm","open_days":["Monday","wednesday"],"ac":true,"location":"Downtown","price":5000}`)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var got struct {
		ID      uint64 `json:"id"`
		OwnerID uint64 `json:"owner_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, uint64(11), got.ID)
	assert.Equal(t, uint64(3), got.OwnerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteVenueForbiddenForOtherSeller(t *testing.T) {
	h, mock := newVenueHandlerMock(t)

	mock.ExpectQuery("SELECT owner_id FROM venues WHERE id = ?").
		WithArgs(uint64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"owner_id"}).AddRow(99))

	c, rec := sellerContext(t, http.MethodDelete, "/v1/my-venues/11", "")
	c.SetParamNames("id")
	c.SetParamValues("11")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteVenueNotFound(t *testing.T) {
	h, mock := newVenueHandlerMock(t)

	mock.ExpectQuery("SELECT owner_id FROM venues WHERE id = ?").
		WithArgs(uint64(999)).
		WillReturnRows(sqlmock.NewRows([]string{"owner_id"}))

	c, rec := sellerContext(t, http.MethodDelete, "/v1/my-venues/999", "")
	c.SetParamNames("id")
	c.SetParamValues("999")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
