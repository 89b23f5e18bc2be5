// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingRequestedEvent is published when a buyer submits a booking request.
// It carries the snapshot fields copied onto the booking so downstream
// consumers can log or notify without querying the primary database.
type BookingRequestedEvent struct {
	BookingID   uint64  `json:"booking_id"`
	VenueID     uint64  `json:"venue_id"`
	VenueName   string  `json:"venue_name"`
	SellerID    uint64  `json:"seller_id"`
	BuyerID     uint64  `json:"buyer_id"`
	BookingDate string  `json:"booking_date"`
	Purpose     string  `json:"purpose"`
	Attendees   int     `json:"attendees"`
	Price       float64 `json:"price"`
	RequestedAt string  `json:"requested_at"`
}

// BookingDecidedEvent is published when a seller approves or rejects a
// pending booking request. Status is "approved" or "rejected".
type BookingDecidedEvent struct {
	BookingID   uint64  `json:"booking_id"`
	VenueID     uint64  `json:"venue_id"`
	VenueName   string  `json:"venue_name"`
	SellerID    uint64  `json:"seller_id"`
	BuyerID     uint64  `json:"buyer_id"`
	BookingDate string  `json:"booking_date"`
	Status      string  `json:"status"`
	Price       float64 `json:"price"`
	DecidedAt   string  `json:"decided_at"`
}
