package ports

import "github.com/stellarops/gsbooker/internal/domain"

// ReservationOutbox buffers bookings whose local persist failed after the
// provider-side reservation already committed, for later retry.
type ReservationOutbox interface {
	Enqueue(b *domain.Booking)
	Drain() []*domain.Booking
	Len() int
}
