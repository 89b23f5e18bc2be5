package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortBookingsForSellerPendingFirst(t *testing.T) {
	bookings := []*Booking{
		{ID: 1, Status: BookingApproved, BookingDate: "2025-01-01"},
		{ID: 2, Status: BookingPending, BookingDate: "2025-12-31"},
		{ID: 3, Status: BookingRejected, BookingDate: "2025-02-01"},
		{ID: 4, Status: BookingPending, BookingDate: "2025-03-01"},
	}
	SortBookingsForSeller(bookings)

	// Every pending item sorts before every decided item regardless of
	// date, and each partition is ascending by date.
	require.Equal(t, uint64(4), bookings[0].ID)
	require.Equal(t, uint64(2), bookings[1].ID)
	require.Equal(t, uint64(1), bookings[2].ID)
	require.Equal(t, uint64(3), bookings[3].ID)
}

func TestSortBookingsForSellerDecidedAlsoDateOrdered(t *testing.T) {
	bookings := []*Booking{
		{ID: 1, Status: BookingApproved, BookingDate: "2025-06-01"},
		{ID: 2, Status: BookingRejected, BookingDate: "2025-01-15"},
		{ID: 3, Status: BookingApproved, BookingDate: "2025-03-20"},
	}
	SortBookingsForSeller(bookings)

	assert.Equal(t, uint64(2), bookings[0].ID)
	assert.Equal(t, uint64(3), bookings[1].ID)
	assert.Equal(t, uint64(1), bookings[2].ID)
}

func TestSortBookingsForSellerStable(t *testing.T) {
	// Same status and date keeps fetched order.
	bookings := []*Booking{
		{ID: 7, Status: BookingPending, BookingDate: "2025-05-05"},
		{ID: 8, Status: BookingPending, BookingDate: "2025-05-05"},
	}
	SortBookingsForSeller(bookings)
	assert.Equal(t, uint64(7), bookings[0].ID)
	assert.Equal(t, uint64(8), bookings[1].ID)
}

func TestFilterBookings(t *testing.T) {
	bookings := []*Booking{
		{ID: 1, VenueID: 10, Status: BookingPending},
		{ID: 2, VenueID: 20, Status: BookingApproved},
		{ID: 3, VenueID: 10, Status: BookingApproved},
	}

	got := FilterBookings(bookings, BookingFilter{})
	assert.Len(t, got, 3)

	got = FilterBookings(bookings, BookingFilter{Status: BookingApproved})
	require.Len(t, got, 2)
	assert.Equal(t, uint64(2), got[0].ID)

	got = FilterBookings(bookings, BookingFilter{VenueID: 10})
	require.Len(t, got, 2)
	assert.Equal(t, uint64(1), got[0].ID)

	got = FilterBookings(bookings, BookingFilter{Status: BookingApproved, VenueID: 10})
	require.Len(t, got, 1)
	assert.Equal(t, uint64(3), got[0].ID)
}

func TestBookingIsTerminal(t *testing.T) {
	assert.False(t, (&Booking{Status: BookingPending}).IsTerminal())
	assert.True(t, (&Booking{Status: BookingApproved}).IsTerminal())
	assert.True(t, (&Booking{Status: BookingRejected}).IsTerminal())
}
