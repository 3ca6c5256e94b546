package service

import (
	"context"
	"time"

	"github.com/stellarops/gsbooker/internal/domain"
	"github.com/stellarops/gsbooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// ProviderService exposes the catalog and visibility surface of a ground
// station provider. Reads need no principal; cancellation does.
type ProviderService struct {
	registry ports.ClientRegistry
	log      logger.Logger
}

func NewProviderService(registry ports.ClientRegistry, log logger.Logger) *ProviderService {
	return &ProviderService{registry: registry, log: log}
}

func (s *ProviderService) Satellites(ctx context.Context, provider string) ([]domain.ProviderSatellite, error) {
	client, err := s.registry.Resolve(provider)
	if err != nil {
		return nil, err
	}
	return client.ListSatellites(ctx)
}

func (s *ProviderService) GroundStations(ctx context.Context, provider string) ([]domain.ProviderGroundStation, error) {
	client, err := s.registry.Resolve(provider)
	if err != nil {
		return nil, err
	}
	return client.ListGroundStations(ctx)
}

func (s *ProviderService) ActivityScopes(ctx context.Context, provider, satelliteID string) ([]domain.ProviderActivityScope, error) {
	client, err := s.registry.Resolve(provider)
	if err != nil {
		return nil, err
	}
	return client.ListActivityScopes(ctx, satelliteID)
}

func (s *ProviderService) Contacts(ctx context.Context, provider, gsID, satelliteID, spbasID string, startDate, endDate time.Time) ([]domain.ProviderContact, error) {
	client, err := s.registry.Resolve(provider)
	if err != nil {
		return nil, err
	}
	return client.ListContacts(ctx, gsID, satelliteID, spbasID, startDate, endDate)
}

func (s *ProviderService) Bookings(ctx context.Context, provider string) ([]domain.ProviderReservation, error) {
	client, err := s.registry.Resolve(provider)
	if err != nil {
		return nil, err
	}
	return client.ListBookings(ctx)
}

// Cancel asks the provider to release a reservation. The result reports
// whether the provider actually cancelled it.
func (s *ProviderService) Cancel(ctx context.Context, principal, provider, providerBookingID string) (bool, error) {
	if principal == "" {
		return false, domain.ErrAuthRequired
	}

	client, err := s.registry.Resolve(provider)
	if err != nil {
		return false, err
	}

	cancelled, err := client.CancelReservation(ctx, providerBookingID)
	if err != nil {
		return false, err
	}

	s.log.Info("provider cancellation requested",
		logger.String("provider", provider),
		logger.String("provider_booking_id", providerBookingID),
		logger.String("requested_by", principal),
		logger.Any("cancelled", cancelled),
	)
	return cancelled, nil
}
