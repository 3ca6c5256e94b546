package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/stellarops/gsbooker/internal/domain"
	"github.com/stellarops/gsbooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// BookingService owns the booking lifecycle: manual requests through the
// approval workflow, and provider reservations that land pre-approved.
type BookingService struct {
	store    ports.BookingStore
	catalog  ports.CatalogStore
	registry ports.ClientRegistry
	notifier ports.ApprovalNotifier
	outbox   ports.ReservationOutbox
	log      logger.Logger

	enumsMu sync.Mutex
	enums   *domain.EnumValues
}

func NewBookingService(
	store ports.BookingStore,
	catalog ports.CatalogStore,
	registry ports.ClientRegistry,
	notifier ports.ApprovalNotifier,
	outbox ports.ReservationOutbox,
	log logger.Logger,
) *BookingService {
	return &BookingService{
		store:    store,
		catalog:  catalog,
		registry: registry,
		notifier: notifier,
		outbox:   outbox,
		log:      log,
	}
}

// enumValues caches the catalog vocabularies after the first successful
// load; the sets only change by migration.
func (s *BookingService) enumValues(ctx context.Context) (*domain.EnumValues, error) {
	s.enumsMu.Lock()
	defer s.enumsMu.Unlock()

	if s.enums != nil {
		return s.enums, nil
	}

	enums, err := s.catalog.EnumValues(ctx)
	if err != nil {
		return nil, err
	}
	s.enums = enums
	return enums, nil
}

func (s *BookingService) validateInput(ctx context.Context, input *domain.CreateBookingInput) error {
	if input.SatelliteID == "" {
		return fmt.Errorf("%w: satellite_id is required", domain.ErrValidation)
	}
	if input.StartTime.IsZero() {
		return fmt.Errorf("%w: start_time is required", domain.ErrValidation)
	}
	if input.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration_minutes must be positive", domain.ErrValidation)
	}
	if input.RuleType == domain.RuleTypeRecurring && (input.FrequencyDays == nil || *input.FrequencyDays <= 0) {
		return fmt.Errorf("%w: recurring bookings require positive frequency_days", domain.ErrValidation)
	}

	enums, err := s.enumValues(ctx)
	if err != nil {
		// The database also enforces the vocabularies; without the
		// catalog we let the insert be the judge.
		s.log.Warn("enum catalog unavailable, deferring validation to store", logger.Any("error", err))
		return nil
	}

	checks := []struct {
		field  string
		value  string
		values []string
	}{
		{"provider", input.Provider, enums.ProviderTypes},
		{"pass_type", input.PassType, enums.PassTypes},
		{"purpose", input.Purpose, enums.PurposeTypes},
		{"rule_type", input.RuleType, enums.RuleTypes},
	}
	for _, check := range checks {
		if !slices.Contains(check.values, check.value) {
			return fmt.Errorf("%w: invalid %s %q", domain.ErrValidation, check.field, check.value)
		}
	}

	return nil
}

// Create registers a manual booking request in pending state.
func (s *BookingService) Create(ctx context.Context, principal string, input *domain.CreateBookingInput) (*domain.Booking, error) {
	if principal == "" {
		return nil, domain.ErrAuthRequired
	}

	if input.DurationMinutes == 0 {
		input.DurationMinutes = domain.DefaultDurationMinutes
	}
	if input.PassType == "" {
		input.PassType = domain.DefaultPassType
	}
	if input.RuleType == "" {
		input.RuleType = domain.RuleTypeOneTime
	}

	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		Provider:        input.Provider,
		SatelliteID:     input.SatelliteID,
		StartTime:       input.StartTime,
		DurationMinutes: input.DurationMinutes,
		PassType:        input.PassType,
		Purpose:         input.Purpose,
		RuleType:        input.RuleType,
		FrequencyDays:   input.FrequencyDays,
		Status:          domain.BookingStatusPending,
		GsStatus:        domain.GsStatusScheduled,
		RequestedBy:     principal,
		Notes:           input.Notes,
	}

	created, err := s.store.CreateBooking(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("booking requested",
		logger.Int("booking_id", created.ID),
		logger.String("satellite_id", created.SatelliteID),
		logger.String("requested_by", principal),
	)

	go s.notifier.NotifyBookingRequested(context.WithoutCancel(ctx), created)

	return created, nil
}

// Approve transitions a pending booking to approved; the decision and its
// audit record commit atomically. Comments are optional and land on the
// audit row only.
func (s *BookingService) Approve(ctx context.Context, principal string, bookingID int, comments string) error {
	if principal == "" {
		return domain.ErrAuthRequired
	}

	ok, err := s.store.Approve(ctx, bookingID, principal, strings.TrimSpace(comments))
	if err != nil {
		return fmt.Errorf("approve booking %d: %w", bookingID, err)
	}
	if !ok {
		return domain.ErrBookingNotPending
	}

	s.log.Info("booking approved",
		logger.Int("booking_id", bookingID),
		logger.String("approved_by", principal),
	)

	go s.notifier.NotifyBookingApproved(context.WithoutCancel(ctx), bookingID, principal)

	return nil
}

// Reject transitions a pending booking to rejected. The reason is
// mandatory and recorded on both the booking and the audit trail.
func (s *BookingService) Reject(ctx context.Context, principal string, bookingID int, reason string) error {
	if principal == "" {
		return domain.ErrAuthRequired
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fmt.Errorf("%w: rejection reason is required", domain.ErrValidation)
	}

	ok, err := s.store.Reject(ctx, bookingID, principal, reason)
	if err != nil {
		return fmt.Errorf("reject booking %d: %w", bookingID, err)
	}
	if !ok {
		return domain.ErrBookingNotPending
	}

	s.log.Info("booking rejected",
		logger.Int("booking_id", bookingID),
		logger.String("rejected_by", principal),
	)

	go s.notifier.NotifyBookingRejected(context.WithoutCancel(ctx), bookingID, principal, reason)

	return nil
}

// ReserveFromProvider places a binding reservation with the provider, then
// records it locally as an approved booking. A failed local persist does
// not undo the reservation: the booking is parked in the outbox and the
// reservation is still reported to the caller.
func (s *BookingService) ReserveFromProvider(ctx context.Context, principal string, input *domain.ReserveContactInput) (*domain.Booking, error) {
	if principal == "" {
		return nil, domain.ErrAuthRequired
	}
	if input.GsID == "" || input.SatelliteID == "" || input.VisibilityID == "" || input.GsabracID == "" {
		return nil, fmt.Errorf("%w: gs_id, satellite_id, visibility_id and gsabrac_id are required", domain.ErrValidation)
	}

	client, err := s.registry.Resolve(input.Provider)
	if err != nil {
		return nil, err
	}

	reservation, err := client.ReserveContact(ctx, input.GsID, input.SatelliteID, input.VisibilityID, input.GsabracID)
	if err != nil {
		return nil, err
	}

	booking := s.bookingFromReservation(principal, input, reservation)

	created, err := s.store.CreateBooking(ctx, booking)
	if err != nil {
		// The reservation is already binding upstream; keep the record
		// for the reconciler instead of dropping it.
		s.log.Error("reservation persisted upstream but local store failed, enqueueing",
			logger.String("provider_booking_id", reservation.BookingID),
			logger.Any("error", err),
		)
		s.outbox.Enqueue(booking)
		return booking, nil
	}

	s.log.Info("provider contact reserved",
		logger.Int("booking_id", created.ID),
		logger.String("provider_booking_id", reservation.BookingID),
		logger.String("requested_by", principal),
	)

	go s.notifier.NotifyBookingRequested(context.WithoutCancel(ctx), created)

	return created, nil
}

func (s *BookingService) bookingFromReservation(principal string, input *domain.ReserveContactInput, res *domain.ProviderReservation) *domain.Booking {
	now := time.Now().UTC()

	startTime := now
	durationMinutes := domain.DefaultDurationMinutes
	if res.StartDateTime != nil {
		startTime = res.StartDateTime.UTC()
		if res.EndDateTime != nil {
			if minutes := int(res.EndDateTime.Sub(*res.StartDateTime).Minutes()); minutes > 0 {
				durationMinutes = minutes
			}
		}
	}

	purpose := input.Purpose
	if purpose == "" {
		purpose = "telemetry"
	}

	satelliteID := input.SatelliteName
	if satelliteID == "" {
		satelliteID = res.SatelliteID
	}
	if satelliteID == "" {
		satelliteID = input.SatelliteID
	}

	gsName := res.GroundStationName

	metadata := &domain.ProviderMetadata{
		Provider: input.Provider,
		Dhruva: &domain.DhruvaMetadata{
			NoradID:             res.NoradID,
			SatelliteName:       satelliteID,
			GroundStationName:   gsName,
			GsapName:            res.GsapName,
			ActivityScope:       res.ActivityScope,
			GsabracID:           input.GsabracID,
			SpbasID:             res.SpbasID,
			GsaID:               res.GsaID,
			GsapID:              res.GsapID,
			BookingStartEpochMs: res.BookingStartEpochMs,
			BookingEndEpochMs:   res.BookingEndEpochMs,
			RecordingStartTime:  res.RecordingStartTime,
			RecordingEndTime:    res.RecordingEndTime,
		},
	}

	var maxElevation *float64
	if res.MaxElevation != 0 {
		v := res.MaxElevation
		maxElevation = &v
	}

	approvedAt := now
	approvedBy := principal

	return &domain.Booking{
		Provider:            input.Provider,
		SatelliteID:         satelliteID,
		StartTime:           startTime,
		DurationMinutes:     durationMinutes,
		PassType:            domain.DefaultPassType,
		Purpose:             purpose,
		RuleType:            domain.RuleTypeOneTime,
		Status:              domain.BookingStatusApproved,
		GsStatus:            domain.GsStatusConfirmed,
		RequestedBy:         principal,
		ApprovedBy:          &approvedBy,
		ApprovedAt:          &approvedAt,
		Notes:               input.Notes,
		ProviderSatelliteID: &input.SatelliteID,
		ProviderGsID:        &input.GsID,
		ProviderContactID:   &input.VisibilityID,
		ProviderBookingID:   &res.BookingID,
		ProviderMetadata:    metadata,
		MaxElevation:        maxElevation,
	}
}

// RetryFailedStores drains the outbox and re-attempts each persist,
// re-queueing anything that still fails. It reports how many bookings were
// stored and how many remain pending.
func (s *BookingService) RetryFailedStores(ctx context.Context) (stored, pending int) {
	for _, booking := range s.outbox.Drain() {
		if _, err := s.store.CreateBooking(ctx, booking); err != nil {
			s.log.Warn("outbox persist retry failed",
				logger.Any("provider_booking_id", booking.ProviderBookingID),
				logger.Any("error", err),
			)
			s.outbox.Enqueue(booking)
			pending++
			continue
		}
		stored++
	}
	return stored, pending
}

func (s *BookingService) List(ctx context.Context) ([]*domain.Booking, error) {
	return s.store.ListBookings(ctx)
}

func (s *BookingService) ListPending(ctx context.Context) ([]*domain.Booking, error) {
	return s.store.ListPending(ctx)
}

func (s *BookingService) ListProviders(ctx context.Context) ([]*domain.Provider, error) {
	return s.catalog.ListProviders(ctx)
}

func (s *BookingService) EnumValues(ctx context.Context) (*domain.EnumValues, error) {
	return s.enumValues(ctx)
}
