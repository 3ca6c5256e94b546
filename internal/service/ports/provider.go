package ports

import (
	"context"
	"time"

	"github.com/stellarops/gsbooker/internal/domain"
)

// GSClient is the capability set every ground-station provider client
// implements. Each client owns its own authenticated session.
type GSClient interface {
	ProviderType() string

	// Connect performs the credential exchange and records the token
	// expiry. Safe to call concurrently with other operations.
	Connect(ctx context.Context) error

	ListSatellites(ctx context.Context) ([]domain.ProviderSatellite, error)
	ListGroundStations(ctx context.Context) ([]domain.ProviderGroundStation, error)
	ListActivityScopes(ctx context.Context, satelliteID string) ([]domain.ProviderActivityScope, error)

	// ListContacts suppresses exact-duplicate visibility-window ids,
	// keeping the first occurrence in arrival order.
	ListContacts(ctx context.Context, gsID, satelliteID, spbasID string, startDate, endDate time.Time) ([]domain.ProviderContact, error)

	ReserveContact(ctx context.Context, gsID, satelliteID, visibilityID, gsabracID string) (*domain.ProviderReservation, error)

	// CancelReservation is best effort: a non-success provider response
	// yields false rather than an error.
	CancelReservation(ctx context.Context, providerBookingID string) (bool, error)

	ListBookings(ctx context.Context) ([]domain.ProviderReservation, error)
}

type ClientRegistry interface {
	// Resolve returns the long-lived client for the provider key, or
	// domain.ErrProviderNotSupported before any network activity.
	Resolve(providerKey string) (GSClient, error)
	IsSupported(providerKey string) bool
}
