package model

import (
	"sort"
	"time"
)

// Booking statuses. A booking is created pending and is decided by
// the venue's seller exactly once: pending → approved or pending →
// rejected. Both decided states are terminal; a pending booking can
// instead be cancelled (hard-deleted) by its buyer.
const (
	BookingPending  = "pending"
	BookingApproved = "approved"
	BookingRejected = "rejected"
)

// Booking represents a buyer's request to reserve a venue for a
// date, as stored in the `bookings` table. VenueName, SellerID and
// Price are copied from the venue row at creation time rather than
// re-derived later, so a booking stays resolvable and priced even
// after its venue is deleted.
//
// Fields:
//  ID          – primary key identifier.
//  VenueID     – venue the request targets (no FK; may be dangling).
//  VenueName   – venue name snapshot taken at creation.
//  SellerID    – venue owner snapshot taken at creation.
//  BuyerID     – user who created the request.
//  BookingDate – requested date (YYYY-MM-DD).
//  Purpose     – what the venue is needed for.
//  Attendees   – expected head count, always positive.
//  Notes       – optional free-form notes.
//  Status      – pending, approved or rejected.
//  Price       – per-day price snapshot taken at creation.
//  CreatedAt   – timestamp of creation.
//  UpdatedAt   – set when the seller decides the request (nullable).
type Booking struct {
	ID          uint64     `json:"id"`
	VenueID     uint64     `json:"venue_id"`
	VenueName   string     `json:"venue_name"`
	SellerID    uint64     `json:"seller_id"`
	BuyerID     uint64     `json:"buyer_id"`
	BookingDate string     `json:"booking_date"`
	Purpose     string     `json:"purpose"`
	Attendees   int        `json:"attendees"`
	Notes       string     `json:"notes,omitempty"`
	Status      string     `json:"status"`
	Price       float64    `json:"price"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// IsTerminal reports whether the booking has been decided. Terminal
// bookings accept no further status updates and cannot be cancelled.
func (b *Booking) IsTerminal() bool {
	return b.Status == BookingApproved || b.Status == BookingRejected
}

// BookingFilter holds the seller-side view filters. Empty fields are
// inactive; both filters are exact matches.
type BookingFilter struct {
	Status  string
	VenueID uint64
}

// FilterBookings returns the bookings matching the status and venue
// filters, preserving order. Inactive filters pass everything.
func FilterBookings(bookings []*Booking, f BookingFilter) []*Booking {
	if f.Status == "" && f.VenueID == 0 {
		return bookings
	}
	out := make([]*Booking, 0, len(bookings))
	for _, b := range bookings {
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		if f.VenueID != 0 && b.VenueID != f.VenueID {
			continue
		}
		out = append(out, b)
	}
	return out
}

// SortBookingsForSeller orders a seller's booking list in place:
// pending requests before everything else, then ascending by booking
// date. The date comparison is unconditional on the second key, so
// decided bookings end up date-ordered within their partition too.
// The sort is stable, so equal elements keep their fetched order.
func SortBookingsForSeller(bookings []*Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		a, b := bookings[i], bookings[j]
		if a.Status == BookingPending && b.Status != BookingPending {
			return true
		}
		if a.Status != BookingPending && b.Status == BookingPending {
			return false
		}
		return a.BookingDate < b.BookingDate
	})
}
