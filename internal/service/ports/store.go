package ports

import (
	"context"

	"github.com/stellarops/gsbooker/internal/domain"
)

type BookingStore interface {
	CreateBooking(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	ListBookings(ctx context.Context) ([]*domain.Booking, error)
	ListPending(ctx context.Context) ([]*domain.Booking, error)
	Approve(ctx context.Context, bookingID int, approver, comments string) (bool, error)
	Reject(ctx context.Context, bookingID int, approver, reason string) (bool, error)
}

type CatalogStore interface {
	ListProviders(ctx context.Context) ([]*domain.Provider, error)
	EnumValues(ctx context.Context) (*domain.EnumValues, error)
}
