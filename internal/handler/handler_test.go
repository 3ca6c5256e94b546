package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stellarops/gsbooker/internal/domain"
	"github.com/stellarops/gsbooker/internal/handler/dto"
	hmocks "github.com/stellarops/gsbooker/internal/handler/mocks"
	"github.com/stellarops/gsbooker/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockBookingSvc, *hmocks.MockProviderSvc, http.Handler) {
	t.Helper()
	bookingSvc := hmocks.NewMockBookingSvc(t)
	providerSvc := hmocks.NewMockProviderSvc(t)

	h := NewHandler(bookingSvc, providerSvc)

	r := ginext.New("test")
	r.Use(middleware.Principal())
	api := r.Group("/api")
	{
		api.GET("/enums", h.GetEnums)
		api.GET("/providers", h.ListProviders)
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/pending", h.ListPendingBookings)
		api.POST("/bookings/:id/approve", h.ApproveBooking)
		api.POST("/bookings/:id/reject", h.RejectBooking)
		provider := api.Group("/providers/:provider")
		{
			provider.GET("/satellites", h.ListSatellites)
			provider.GET("/contacts", h.ListContacts)
			provider.POST("/reserve", h.ReserveContact)
			provider.POST("/bookings/cancel", h.CancelReservation)
		}
	}

	return bookingSvc, providerSvc, r
}

func testBooking() *domain.Booking {
	start := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:              1,
		Provider:        "dhruva",
		SatelliteID:     "SAT-1",
		StartTime:       start,
		EndTime:         start.Add(15 * time.Minute),
		DurationMinutes: 15,
		PassType:        "both",
		Purpose:         "telemetry",
		RuleType:        "one_time",
		Status:          domain.BookingStatusPending,
		GsStatus:        domain.GsStatusScheduled,
		RequestedBy:     "alice",
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}
}

// --- Bookings ---

func TestHandler_CreateBooking(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Create(mock.Anything, "alice", mock.Anything).Return(testBooking(), nil)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		Provider:    "dhruva",
		SatelliteID: "SAT-1",
		StartTime:   "2026-09-10T12:00:00Z",
		Purpose:     "telemetry",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Remote-User", "alice")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2026-09-10T12:15:00Z", resp.EndTime)
}

func TestHandler_CreateBooking_NoPrincipal(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Create(mock.Anything, "", mock.Anything).Return(nil, domain.ErrAuthRequired)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		Provider:    "dhruva",
		SatelliteID: "SAT-1",
		StartTime:   "2026-09-10T12:00:00Z",
		Purpose:     "telemetry",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CreateBooking_BadStartTime(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"provider":"dhruva","satellite_id":"SAT-1","start_time":"tomorrow","purpose":"telemetry"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Remote-User", "alice")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListBookings(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().List(mock.Anything).Return([]*domain.Booking{testBooking()}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "SAT-1", resp[0].SatelliteID)
}

func TestHandler_ApproveBooking(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Approve(mock.Anything, "boss", 7, "").Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/7/approve", nil)
	req.Header.Set("X-Remote-User", "boss")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ApproveBooking_WithComments(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Approve(mock.Anything, "boss", 7, "cleared with ops").Return(nil)

	body, _ := json.Marshal(dto.ApproveRequest{Comments: "cleared with ops"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/7/approve", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Remote-User", "boss")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ApproveBooking_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/abc/approve", nil)
	req.Header.Set("X-Remote-User", "boss")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ApproveBooking_NotPending(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Approve(mock.Anything, "boss", 7, "").Return(domain.ErrBookingNotPending)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/7/approve", nil)
	req.Header.Set("X-Remote-User", "boss")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ApproveBooking_NotFound(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Approve(mock.Anything, "boss", 404, "").Return(domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/404/approve", nil)
	req.Header.Set("X-Remote-User", "boss")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_RejectBooking(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Reject(mock.Anything, "boss", 7, "conflicts").Return(nil)

	body, _ := json.Marshal(dto.RejectRequest{Reason: "conflicts"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/7/reject", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Remote-User", "boss")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_RejectBooking_MissingReason(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/7/reject", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Remote-User", "boss")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Catalog ---

func TestHandler_GetEnums(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().EnumValues(mock.Anything).Return(&domain.EnumValues{
		ProviderTypes: []string{"dhruva", "leafspace", "isro"},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/enums", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EnumsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"dhruva", "leafspace", "isro"}, resp.ProviderTypes)
}

func TestHandler_GetEnums_StoreUnavailable(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().EnumValues(mock.Anything).Return(nil, domain.ErrStoreUnavailable)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/enums", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

// --- Provider surface ---

func TestHandler_ListSatellites(t *testing.T) {
	_, providerSvc, r := setupRouter(t)

	providerSvc.EXPECT().Satellites(mock.Anything, "dhruva").Return([]domain.ProviderSatellite{
		{ID: "SAT-1", Name: "OrbitOne", NoradID: "54321"},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/providers/dhruva/satellites", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListSatellites_UnsupportedProvider(t *testing.T) {
	_, providerSvc, r := setupRouter(t)

	providerSvc.EXPECT().Satellites(mock.Anything, "leafspace").Return(nil, domain.ErrProviderNotSupported)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/providers/leafspace/satellites", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListSatellites_ProviderDown(t *testing.T) {
	_, providerSvc, r := setupRouter(t)

	providerSvc.EXPECT().Satellites(mock.Anything, "dhruva").Return(nil, domain.ErrProviderRequest)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/providers/dhruva/satellites", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestHandler_ListContacts(t *testing.T) {
	_, providerSvc, r := setupRouter(t)

	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)
	providerSvc.EXPECT().Contacts(mock.Anything, "dhruva", "GS-1", "SAT-1", "SPBAS-3", start, end).
		Return([]domain.ProviderContact{{VisibilityID: "VIS-1"}}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/providers/dhruva/contacts?gs_id=GS-1&satellite_id=SAT-1&spbas_id=SPBAS-3&start=2026-09-10&end=2026-09-13", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListContacts_MissingParams(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/providers/dhruva/contacts?gs_id=GS-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ReserveContact(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	booking := testBooking()
	booking.Status = domain.BookingStatusApproved
	booking.GsStatus = domain.GsStatusConfirmed
	bookingSvc.EXPECT().ReserveFromProvider(mock.Anything, "alice", mock.Anything).Return(booking, nil)

	body, _ := json.Marshal(dto.ReserveContactRequest{
		GsID:         "GS-1",
		SatelliteID:  "SAT-1",
		VisibilityID: "VIS-9",
		GsabracID:    "GSB-5",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/providers/dhruva/reserve", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Remote-User", "alice")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, "confirmed", resp.GsStatus)
}

func TestHandler_CancelReservation(t *testing.T) {
	_, providerSvc, r := setupRouter(t)

	providerSvc.EXPECT().Cancel(mock.Anything, "alice", "dhruva", "SPB-42").Return(true, nil)

	body, _ := json.Marshal(dto.CancelReservationRequest{ProviderBookingID: "SPB-42"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/providers/dhruva/bookings/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Remote-User", "alice")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CancelResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Cancelled)
}
