package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stellarops/gsbooker/internal/domain"
	"github.com/stellarops/gsbooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testEnums() *domain.EnumValues {
	return &domain.EnumValues{
		ProviderTypes: []string{"dhruva", "leafspace", "isro"},
		PassTypes:     []string{"uplink", "downlink", "both"},
		PurposeTypes:  []string{"telemetry", "command", "routine", "emergency"},
		RuleTypes:     []string{"one_time", "recurring"},
		StatusTypes:   []string{"pending", "approved", "rejected"},
		GsStatusTypes: []string{"scheduled", "confirmed", "in_progress", "completed", "failed", "cancelled"},
	}
}

type bookingServiceDeps struct {
	store    *mocks.MockBookingStore
	catalog  *mocks.MockCatalogStore
	registry *mocks.MockClientRegistry
	notifier *mocks.MockApprovalNotifier
	outbox   *mocks.MockReservationOutbox
}

func newBookingService(t *testing.T) (*BookingService, bookingServiceDeps) {
	t.Helper()
	deps := bookingServiceDeps{
		store:    mocks.NewMockBookingStore(t),
		catalog:  mocks.NewMockCatalogStore(t),
		registry: mocks.NewMockClientRegistry(t),
		notifier: mocks.NewMockApprovalNotifier(t),
		outbox:   mocks.NewMockReservationOutbox(t),
	}
	svc := NewBookingService(deps.store, deps.catalog, deps.registry, deps.notifier, deps.outbox, newTestLogger(t))
	return svc, deps
}

func TestBookingService_Create_AppliesDefaults(t *testing.T) {
	svc, deps := newBookingService(t)

	deps.catalog.EXPECT().EnumValues(mock.Anything).Return(testEnums(), nil)
	deps.store.EXPECT().CreateBooking(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
			stored := *b
			stored.ID = 1
			return &stored, nil
		})
	deps.notifier.EXPECT().NotifyBookingRequested(mock.Anything, mock.Anything).Return()

	input := &domain.CreateBookingInput{
		Provider:    "dhruva",
		SatelliteID: "SAT-1",
		StartTime:   time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC),
		Purpose:     "telemetry",
	}

	booking, err := svc.Create(context.Background(), "alice", input)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, domain.GsStatusScheduled, booking.GsStatus)
	assert.Equal(t, domain.DefaultDurationMinutes, booking.DurationMinutes)
	assert.Equal(t, domain.DefaultPassType, booking.PassType)
	assert.Equal(t, domain.RuleTypeOneTime, booking.RuleType)
	assert.Equal(t, "alice", booking.RequestedBy)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_RequiresPrincipal(t *testing.T) {
	svc, _ := newBookingService(t)

	input := &domain.CreateBookingInput{
		Provider:    "dhruva",
		SatelliteID: "SAT-1",
		StartTime:   time.Now().UTC(),
		Purpose:     "telemetry",
	}

	_, err := svc.Create(context.Background(), "", input)

	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}

func TestBookingService_Create_RejectsUnknownEnumValue(t *testing.T) {
	svc, deps := newBookingService(t)

	deps.catalog.EXPECT().EnumValues(mock.Anything).Return(testEnums(), nil)

	input := &domain.CreateBookingInput{
		Provider:    "dhruva",
		SatelliteID: "SAT-1",
		StartTime:   time.Now().UTC(),
		Purpose:     "sightseeing",
	}

	_, err := svc.Create(context.Background(), "alice", input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_RecurringNeedsFrequency(t *testing.T) {
	svc, _ := newBookingService(t)

	input := &domain.CreateBookingInput{
		Provider:    "dhruva",
		SatelliteID: "SAT-1",
		StartTime:   time.Now().UTC(),
		Purpose:     "telemetry",
		RuleType:    domain.RuleTypeRecurring,
	}

	_, err := svc.Create(context.Background(), "alice", input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_EnumValues_Cached(t *testing.T) {
	svc, deps := newBookingService(t)

	deps.catalog.EXPECT().EnumValues(mock.Anything).Return(testEnums(), nil).Once()

	first, err := svc.EnumValues(context.Background())
	require.NoError(t, err)

	second, err := svc.EnumValues(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestBookingService_Approve(t *testing.T) {
	svc, deps := newBookingService(t)

	deps.store.EXPECT().Approve(mock.Anything, 7, "boss", "").Return(true, nil)
	deps.notifier.EXPECT().NotifyBookingApproved(mock.Anything, 7, "boss").Return()

	err := svc.Approve(context.Background(), "boss", 7, "")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Approve_CommentsReachAudit(t *testing.T) {
	svc, deps := newBookingService(t)

	deps.store.EXPECT().Approve(mock.Anything, 7, "boss", "cleared with ops").Return(true, nil)
	deps.notifier.EXPECT().NotifyBookingApproved(mock.Anything, 7, "boss").Return()

	err := svc.Approve(context.Background(), "boss", 7, "  cleared with ops  ")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Approve_NotPending(t *testing.T) {
	svc, deps := newBookingService(t)

	deps.store.EXPECT().Approve(mock.Anything, 7, "boss", "").Return(false, nil)

	err := svc.Approve(context.Background(), "boss", 7, "")

	assert.ErrorIs(t, err, domain.ErrBookingNotPending)
}

func TestBookingService_Approve_NotFound(t *testing.T) {
	svc, deps := newBookingService(t)

	deps.store.EXPECT().Approve(mock.Anything, 404, "boss", "").Return(false, domain.ErrBookingNotFound)

	err := svc.Approve(context.Background(), "boss", 404, "")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Approve_RequiresPrincipal(t *testing.T) {
	svc, _ := newBookingService(t)

	err := svc.Approve(context.Background(), "", 7, "")

	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}

func TestBookingService_Reject_RequiresReason(t *testing.T) {
	svc, _ := newBookingService(t)

	err := svc.Reject(context.Background(), "boss", 7, "   ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Reject(t *testing.T) {
	svc, deps := newBookingService(t)

	deps.store.EXPECT().Reject(mock.Anything, 7, "boss", "conflicts with maintenance").Return(true, nil)
	deps.notifier.EXPECT().NotifyBookingRejected(mock.Anything, 7, "boss", "conflicts with maintenance").Return()

	err := svc.Reject(context.Background(), "boss", 7, "conflicts with maintenance")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Reject_NotPending(t *testing.T) {
	svc, deps := newBookingService(t)

	deps.store.EXPECT().Reject(mock.Anything, 7, "boss", "too late").Return(false, nil)

	err := svc.Reject(context.Background(), "boss", 7, "too late")

	assert.ErrorIs(t, err, domain.ErrBookingNotPending)
}

func testReservation() *domain.ProviderReservation {
	start := time.Date(2026, 9, 12, 6, 30, 0, 0, time.UTC)
	end := start.Add(9 * time.Minute)
	return &domain.ProviderReservation{
		BookingID:         "SPB-42",
		GsID:              "GS-1",
		SatelliteID:       "SAT-1",
		VisibilityID:      "VIS-9",
		GroundStationName: "Hyderabad",
		GsapName:          "GSAP-A",
		NoradID:           54321,
		StartDateTime:     &start,
		EndDateTime:       &end,
		MaxElevation:      47.5,
		ActivityScope:     "payload_downlink",
		SpbasID:           "SPBAS-3",
		Status:            "booking_received",
	}
}

func TestBookingService_ReserveFromProvider(t *testing.T) {
	svc, deps := newBookingService(t)
	client := mocks.NewMockGSClient(t)

	deps.registry.EXPECT().Resolve("dhruva").Return(client, nil)
	client.EXPECT().ReserveContact(mock.Anything, "GS-1", "SAT-1", "VIS-9", "GSB-5").
		Return(testReservation(), nil)
	deps.store.EXPECT().CreateBooking(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
			stored := *b
			stored.ID = 11
			return &stored, nil
		})
	deps.notifier.EXPECT().NotifyBookingRequested(mock.Anything, mock.Anything).Return()

	input := &domain.ReserveContactInput{
		Provider:     "dhruva",
		GsID:         "GS-1",
		SatelliteID:  "SAT-1",
		VisibilityID: "VIS-9",
		GsabracID:    "GSB-5",
	}

	booking, err := svc.ReserveFromProvider(context.Background(), "alice", input)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusApproved, booking.Status)
	assert.Equal(t, domain.GsStatusConfirmed, booking.GsStatus)
	assert.Equal(t, "alice", booking.RequestedBy)
	require.NotNil(t, booking.ApprovedBy)
	assert.Equal(t, "alice", *booking.ApprovedBy)
	assert.NotNil(t, booking.ApprovedAt)
	assert.Equal(t, 9, booking.DurationMinutes)
	assert.Equal(t, "telemetry", booking.Purpose)
	require.NotNil(t, booking.ProviderBookingID)
	assert.Equal(t, "SPB-42", *booking.ProviderBookingID)
	require.NotNil(t, booking.ProviderMetadata)
	require.NotNil(t, booking.ProviderMetadata.Dhruva)
	assert.Equal(t, 54321, booking.ProviderMetadata.Dhruva.NoradID)
	assert.Equal(t, "Hyderabad", booking.ProviderMetadata.Dhruva.GroundStationName)
	assert.Equal(t, "GSB-5", booking.ProviderMetadata.Dhruva.GsabracID)
	require.NotNil(t, booking.MaxElevation)
	assert.InDelta(t, 47.5, *booking.MaxElevation, 0.001)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_ReserveFromProvider_StoreFailureKeepsReservation(t *testing.T) {
	svc, deps := newBookingService(t)
	client := mocks.NewMockGSClient(t)

	deps.registry.EXPECT().Resolve("dhruva").Return(client, nil)
	client.EXPECT().ReserveContact(mock.Anything, "GS-1", "SAT-1", "VIS-9", "GSB-5").
		Return(testReservation(), nil)
	deps.store.EXPECT().CreateBooking(mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))
	deps.outbox.EXPECT().Enqueue(mock.Anything).Return()

	input := &domain.ReserveContactInput{
		Provider:     "dhruva",
		GsID:         "GS-1",
		SatelliteID:  "SAT-1",
		VisibilityID: "VIS-9",
		GsabracID:    "GSB-5",
	}

	booking, err := svc.ReserveFromProvider(context.Background(), "alice", input)

	require.NoError(t, err)
	require.NotNil(t, booking.ProviderBookingID)
	assert.Equal(t, "SPB-42", *booking.ProviderBookingID)
}

func TestBookingService_ReserveFromProvider_UnsupportedProvider(t *testing.T) {
	svc, deps := newBookingService(t)

	deps.registry.EXPECT().Resolve("leafspace").Return(nil, domain.ErrProviderNotSupported)

	input := &domain.ReserveContactInput{
		Provider:     "leafspace",
		GsID:         "GS-1",
		SatelliteID:  "SAT-1",
		VisibilityID: "VIS-9",
		GsabracID:    "GSB-5",
	}

	_, err := svc.ReserveFromProvider(context.Background(), "alice", input)

	assert.ErrorIs(t, err, domain.ErrProviderNotSupported)
}

func TestBookingService_RetryFailedStores(t *testing.T) {
	svc, deps := newBookingService(t)

	good := &domain.Booking{SatelliteID: "SAT-1"}
	bad := &domain.Booking{SatelliteID: "SAT-2"}

	deps.outbox.EXPECT().Drain().Return([]*domain.Booking{good, bad})
	deps.store.EXPECT().CreateBooking(mock.Anything, good).Return(good, nil)
	deps.store.EXPECT().CreateBooking(mock.Anything, bad).Return(nil, errors.New("still down"))
	deps.outbox.EXPECT().Enqueue(bad).Return()

	stored, pending := svc.RetryFailedStores(context.Background())

	assert.Equal(t, 1, stored)
	assert.Equal(t, 1, pending)
}
