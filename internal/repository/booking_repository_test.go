package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venueverse/venue-verse/internal/model"
)

func newBookingMock(t *testing.T) (*BookingRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewBookingRepo(db), mock
}

func bookingRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "venue_id", "venue_name", "seller_id", "buyer_id", "booking_date",
		"purpose", "attendees", "notes", "status", "price", "created_at", "updated_at",
	})
}

func TestBookingCreateCopiesSnapshots(t *testing.T) {
	repo, mock := newBookingMock(t)
	now := time.Now()

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(uint64(10), "Grand Hall", uint64(3), uint64(7), "2025-09-01",
			"wedding", 120, nil, model.BookingPending, 5000.0).
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id = ?").
		WithArgs(uint64(42)).
		WillReturnRows(bookingRows().AddRow(
			42, 10, "Grand Hall", 3, 7, "2025-09-01",
			"wedding", 120, nil, "pending", 5000.0, now, nil))

	b := &model.Booking{
		VenueID:   10,
		VenueName: "Grand Hall",
		SellerID:  3,
		BuyerID:   7,

		BookingDate: "2025-09-01",
		Purpose:     "wedding",
		Attendees:   120,
		Price:       5000,
	}
	err := repo.Create(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), b.ID)
	assert.Equal(t, model.BookingPending, b.Status)
	assert.Equal(t, uint64(3), b.SellerID)
	assert.Nil(t, b.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingUpdateStatusBySeller(t *testing.T) {
	repo, mock := newBookingMock(t)
	decidedAt := time.Now()

	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs("approved", decidedAt, uint64(42), uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatusBySeller(context.Background(), 42, 3, "approved", decidedAt)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingUpdateStatusMissNotFound(t *testing.T) {
	repo, mock := newBookingMock(t)

	mock.ExpectExec("UPDATE bookings SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT seller_id, buyer_id, status FROM bookings").
		WithArgs(uint64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"seller_id", "buyer_id", "status"}))

	err := repo.UpdateStatusBySeller(context.Background(), 42, 3, "approved", time.Now())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestBookingUpdateStatusMissWrongSeller(t *testing.T) {
	repo, mock := newBookingMock(t)

	mock.ExpectExec("UPDATE bookings SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT seller_id, buyer_id, status FROM bookings").
		WithArgs(uint64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"seller_id", "buyer_id", "status"}).
			AddRow(99, 7, "pending"))

	err := repo.UpdateStatusBySeller(context.Background(), 42, 3, "approved", time.Now())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestBookingUpdateStatusMissAlreadyDecided(t *testing.T) {
	repo, mock := newBookingMock(t)

	mock.ExpectExec("UPDATE bookings SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT seller_id, buyer_id, status FROM bookings").
		WithArgs(uint64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"seller_id", "buyer_id", "status"}).
			AddRow(3, 7, "approved"))

	err := repo.UpdateStatusBySeller(context.Background(), 42, 3, "rejected", time.Now())
	assert.ErrorIs(t, err, ErrConflict)
}

func TestBookingCancelOnlyWhilePending(t *testing.T) {
	repo, mock := newBookingMock(t)

	mock.ExpectExec("DELETE FROM bookings").
		WithArgs(uint64(42), uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT seller_id, buyer_id, status FROM bookings").
		WithArgs(uint64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"seller_id", "buyer_id", "status"}).
			AddRow(3, 7, "approved"))

	err := repo.DeleteByIDAndBuyer(context.Background(), 42, 7)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestBookingCancelWrongBuyer(t *testing.T) {
	repo, mock := newBookingMock(t)

	mock.ExpectExec("DELETE FROM bookings").
		WithArgs(uint64(42), uint64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT seller_id, buyer_id, status FROM bookings").
		WithArgs(uint64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"seller_id", "buyer_id", "status"}).
			AddRow(3, 7, "pending"))

	err := repo.DeleteByIDAndBuyer(context.Background(), 42, 8)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestBookingCancelSuccess(t *testing.T) {
	repo, mock := newBookingMock(t)

	mock.ExpectExec("DELETE FROM bookings").
		WithArgs(uint64(42), uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteByIDAndBuyer(context.Background(), 42, 7)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingListByBuyerNewestFirst(t *testing.T) {
	repo, mock := newBookingMock(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE buyer_id = (.+) ORDER BY created_at DESC").
		WithArgs(uint64(7)).
		WillReturnRows(bookingRows().
			AddRow(2, 10, "Grand Hall", 3, 7, "2025-09-02", "expo", 40, nil, "pending", 5000.0, now, nil).
			AddRow(1, 10, "Grand Hall", 3, 7, "2025-09-01", "gala", 80, "vip", "approved", 5000.0, now.Add(-time.Hour), now))

	got, err := repo.ListByBuyer(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(2), got[0].ID)
	assert.Equal(t, "vip", got[1].Notes)
	require.NotNil(t, got[1].UpdatedAt)
}

func TestBookingDateColumnRoundTrip(t *testing.T) {
	repo, mock := newBookingMock(t)
	now := time.Now()

	// With parseTime=true the driver returns DATE columns as time.Time
	// at midnight UTC; the record must still carry plain YYYY-MM-DD.
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id = ?").
		WithArgs(uint64(42)).
		WillReturnRows(bookingRows().AddRow(
			42, 10, "Grand Hall", 3, 7, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
			"wedding", 50, nil, "pending", 5000.0, now, nil))

	b, err := repo.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "2025-09-01", b.BookingDate)
}

func TestBookingGetByIDNotFound(t *testing.T) {
	repo, mock := newBookingMock(t)

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id = ?").
		WithArgs(uint64(999)).
		WillReturnRows(bookingRows())

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
