// This file defines repository methods for booking requests. The
// write paths are deliberately guarded: status updates and buyer
// cancellations include the expected current status in the WHERE
// clause, so a request decided from another session cannot be
// silently overwritten — the miss surfaces as ErrConflict instead.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/venueverse/venue-verse/internal/model"
)

// BookingRepo encapsulates all database queries related to bookings.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingColumns = "id, venue_id, venue_name, seller_id, buyer_id, booking_date, purpose, attendees, notes, status, price, created_at, updated_at"

func scanBooking(row interface {
	Scan(dest ...any) error
}) (*model.Booking, error) {
	var b model.Booking
	var bookingDate any
	var notes sql.NullString
	var updatedAt sql.NullTime
	if err := row.Scan(&b.ID, &b.VenueID, &b.VenueName, &b.SellerID, &b.BuyerID,
		&bookingDate, &b.Purpose, &b.Attendees, &notes, &b.Status, &b.Price,
		&b.CreatedAt, &updatedAt); err != nil {
		return nil, err
	}
	b.BookingDate = bookingDateString(bookingDate)
	if notes.Valid {
		b.Notes = notes.String
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		b.UpdatedAt = &t
	}
	return &b, nil
}

// bookingDateString normalizes the booking_date column to YYYY-MM-DD.
// With parseTime=true in the DSN the driver hands DATE columns over as
// time.Time; without it they arrive as []byte or string.
func bookingDateString(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.Format("2006-01-02")
	case []byte:
		return string(t)
	case string:
		return t
	}
	return ""
}

// Create inserts a new booking in pending state. The venue name,
// seller id and price on the record must already be the snapshots
// copied from the venue row; this method stores them verbatim. On
// success the generated ID and created_at are populated on the
// record via a follow-up SELECT.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	const qInsert = `INSERT INTO bookings
	    (venue_id, venue_name, seller_id, buyer_id, booking_date, purpose, attendees, notes, status, price)
	    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	var notes any
	if b.Notes != "" {
		notes = b.Notes
	}
	res, err := r.db.ExecContext(ctx, qInsert,
		b.VenueID, b.VenueName, b.SellerID, b.BuyerID,
		b.BookingDate, b.Purpose, b.Attendees, notes, model.BookingPending, b.Price)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)

	const qSelect = "SELECT " + bookingColumns + " FROM bookings WHERE id = ?"
	got, err := scanBooking(r.db.QueryRowContext(ctx, qSelect, b.ID))
	if err != nil {
		return err
	}
	*b = *got
	return nil
}

// GetByID fetches a booking by id. It returns ErrBookingNotFound
// when no row matches.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
	const q = "SELECT " + bookingColumns + " FROM bookings WHERE id = ?"
	b, err := scanBooking(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

// ListBySeller returns all bookings whose seller id matches, ordered
// by id. The seller handler applies its own view filters and the
// pending-first sort in memory.
func (r *BookingRepo) ListBySeller(ctx context.Context, sellerID uint64) ([]*model.Booking, error) {
	const q = "SELECT " + bookingColumns + " FROM bookings WHERE seller_id = ? ORDER BY id"
	return r.list(ctx, q, sellerID)
}

// ListByBuyer returns the buyer's bookings newest first.
func (r *BookingRepo) ListByBuyer(ctx context.Context, buyerID uint64) ([]*model.Booking, error) {
	const q = "SELECT " + bookingColumns + " FROM bookings WHERE buyer_id = ? ORDER BY created_at DESC, id DESC"
	return r.list(ctx, q, buyerID)
}

func (r *BookingRepo) list(ctx context.Context, q string, args ...any) ([]*model.Booking, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatusBySeller moves a pending booking to the given terminal
// status and stamps updated_at. The WHERE clause requires the caller
// to be the booking's seller and the current status to still be
// pending. When nothing is affected the method distinguishes the
// cases: missing row → ErrBookingNotFound, wrong seller →
// ErrForbidden, already decided → ErrConflict.
func (r *BookingRepo) UpdateStatusBySeller(ctx context.Context, id, sellerID uint64, status string, decidedAt time.Time) error {
	const q = `UPDATE bookings SET status = ?, updated_at = ?
	           WHERE id = ? AND seller_id = ? AND status = 'pending'`
	res, err := r.db.ExecContext(ctx, q, status, decidedAt, id, sellerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	return r.classifyMiss(ctx, id, sellerID, true)
}

// DeleteByIDAndBuyer cancels a pending booking by hard delete. The
// WHERE clause requires ownership by the buyer and pending status;
// misses are classified the same way as UpdateStatusBySeller.
func (r *BookingRepo) DeleteByIDAndBuyer(ctx context.Context, id, buyerID uint64) error {
	const q = `DELETE FROM bookings WHERE id = ? AND buyer_id = ? AND status = 'pending'`
	res, err := r.db.ExecContext(ctx, q, id, buyerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	return r.classifyMiss(ctx, id, buyerID, false)
}

// classifyMiss explains why a guarded write affected no rows by
// re-reading the booking. asSeller selects which party column is
// checked for ownership.
func (r *BookingRepo) classifyMiss(ctx context.Context, id, userID uint64, asSeller bool) error {
	var sellerID, buyerID uint64
	var status string
	err := r.db.QueryRowContext(ctx,
		"SELECT seller_id, buyer_id, status FROM bookings WHERE id = ?", id).
		Scan(&sellerID, &buyerID, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBookingNotFound
		}
		return err
	}
	owner := buyerID
	if asSeller {
		owner = sellerID
	}
	if owner != userID {
		return ErrForbidden
	}
	// Row exists and is owned by the caller, so the status guard is
	// what failed (already decided, or changed concurrently).
	return ErrConflict
}
