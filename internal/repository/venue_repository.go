// This file defines repository methods for venue listings. A venue
// belongs to a single seller; ownership is enforced in the SQL so
// handlers cannot accidentally operate across owners. Venues are
// created and hard-deleted only — the client this API serves has no
// edit-in-place for listings.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/venueverse/venue-verse/internal/model"
)

// VenueRepo encapsulates all database queries related to venues. It
// depends on a sql.DB connection which should be configured
// elsewhere.
type VenueRepo struct {
	db *sql.DB
}

// NewVenueRepo constructs a VenueRepo with the provided DB handle.
// This function allows dependency injection of the database in tests
// and at startup.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

const venueColumns = "id, owner_id, name, open_time, close_time, open_days, has_ac, has_sound_system, has_food_court, location, price, created_at"

func scanVenue(row interface {
	Scan(dest ...any) error
}) (*model.Venue, error) {
	var v model.Venue
	var days string
	if err := row.Scan(&v.ID, &v.OwnerID, &v.Name, &v.OpenTime, &v.CloseTime, &days,
		&v.Amenities.AC, &v.Amenities.SoundSystem, &v.Amenities.FoodCourt,
		&v.Location, &v.Price, &v.CreatedAt); err != nil {
		return nil, err
	}
	v.OpenDays = model.SplitOpenDays(days)
	return &v, nil
}

// Create inserts a new venue. On success the venue's ID field is
// populated with the auto-generated value and a follow-up SELECT
// fills in the created_at default so callers receive a fully
// populated record.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	const qInsert = `INSERT INTO venues
	    (owner_id, name, open_time, close_time, open_days, has_ac, has_sound_system, has_food_court, location, price)
	    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert,
		v.OwnerID, v.Name, v.OpenTime, v.CloseTime, model.JoinOpenDays(v.OpenDays),
		v.Amenities.AC, v.Amenities.SoundSystem, v.Amenities.FoodCourt,
		v.Location, v.Price)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)

	const qSelect = "SELECT " + venueColumns + " FROM venues WHERE id = ?"
	got, err := scanVenue(r.db.QueryRowContext(ctx, qSelect, v.ID))
	if err != nil {
		return err
	}
	*v = *got
	return nil
}

// GetByID fetches a venue by its ID regardless of owner. It returns
// ErrVenueNotFound when no row is found. Buyers use this lookup when
// constructing a booking against someone else's venue.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	const q = "SELECT " + venueColumns + " FROM venues WHERE id = ?"
	v, err := scanVenue(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return v, nil
}

// ListAll returns the full venue collection ordered by id. The buyer
// browse endpoint fetches this once and filters in memory.
func (r *VenueRepo) ListAll(ctx context.Context) ([]*model.Venue, error) {
	const q = "SELECT " + venueColumns + " FROM venues ORDER BY id"
	return r.list(ctx, q)
}

// ListByOwner returns all venues for a specific seller ordered by id.
func (r *VenueRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]*model.Venue, error) {
	const q = "SELECT " + venueColumns + " FROM venues WHERE owner_id = ? ORDER BY id"
	return r.list(ctx, q, ownerID)
}

func (r *VenueRepo) list(ctx context.Context, q string, args ...any) ([]*model.Venue, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Venue, 0)
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteByIDAndOwner removes a venue provided it belongs to the
// specified owner. If the venue does not exist, sql.ErrNoRows is
// returned; if it exists but is owned by a different user,
// ErrForbidden is returned. Bookings referencing the venue are left
// untouched on purpose — they carry their own venue name and price
// snapshots and must stay visible after the listing is gone.
func (r *VenueRepo) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint64) error {
	var dbOwnerID uint64
	err := r.db.QueryRowContext(ctx, "SELECT owner_id FROM venues WHERE id = ?", id).Scan(&dbOwnerID)
	if err != nil {
		return err
	}
	if dbOwnerID != ownerID {
		return ErrForbidden
	}
	res, err := r.db.ExecContext(ctx, "DELETE FROM venues WHERE id = ? AND owner_id = ?", id, ownerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
