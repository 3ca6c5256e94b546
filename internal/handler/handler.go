package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/stellarops/gsbooker/internal/domain"
	"github.com/stellarops/gsbooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Create(ctx context.Context, principal string, input *domain.CreateBookingInput) (*domain.Booking, error)
	Approve(ctx context.Context, principal string, bookingID int, comments string) error
	Reject(ctx context.Context, principal string, bookingID int, reason string) error
	ReserveFromProvider(ctx context.Context, principal string, input *domain.ReserveContactInput) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	ListPending(ctx context.Context) ([]*domain.Booking, error)
	ListProviders(ctx context.Context) ([]*domain.Provider, error)
	EnumValues(ctx context.Context) (*domain.EnumValues, error)
}

type ProviderSvc interface {
	Satellites(ctx context.Context, provider string) ([]domain.ProviderSatellite, error)
	GroundStations(ctx context.Context, provider string) ([]domain.ProviderGroundStation, error)
	ActivityScopes(ctx context.Context, provider, satelliteID string) ([]domain.ProviderActivityScope, error)
	Contacts(ctx context.Context, provider, gsID, satelliteID, spbasID string, startDate, endDate time.Time) ([]domain.ProviderContact, error)
	Bookings(ctx context.Context, provider string) ([]domain.ProviderReservation, error)
	Cancel(ctx context.Context, principal, provider, providerBookingID string) (bool, error)
}

type Handler struct {
	bookingService  BookingSvc
	providerService ProviderSvc
}

func NewHandler(bookingService BookingSvc, providerService ProviderSvc) *Handler {
	return &Handler{
		bookingService:  bookingService,
		providerService: providerService,
	}
}

func principal(c *ginext.Context) string {
	return c.GetString("principal")
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_time format, expected RFC3339",
		})
		return
	}

	input := &domain.CreateBookingInput{
		Provider:        req.Provider,
		SatelliteID:     req.SatelliteID,
		StartTime:       startTime.UTC(),
		DurationMinutes: req.DurationMinutes,
		PassType:        req.PassType,
		Purpose:         req.Purpose,
		RuleType:        req.RuleType,
		FrequencyDays:   req.FrequencyDays,
		Notes:           req.Notes,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), principal(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	bookings, err := h.bookingService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListPendingBookings(c *ginext.Context) {
	bookings, err := h.bookingService.ListPending(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ApproveBooking(c *ginext.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	// The body is optional; approvals without comments send none.
	var req dto.ApproveRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
	}

	if err := h.bookingService.Approve(c.Request.Context(), principal(c), id, req.Comments); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "approved"})
}

func (h *Handler) RejectBooking(c *ginext.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.bookingService.Reject(c.Request.Context(), principal(c), id, req.Reason); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "rejected"})
}

// Catalog

func (h *Handler) ListProviders(c *ginext.Context) {
	providers, err := h.bookingService.ListProviders(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ProviderResponse, 0, len(providers))
	for _, p := range providers {
		resp = append(resp, dto.ToProviderResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetEnums(c *ginext.Context) {
	enums, err := h.bookingService.EnumValues(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEnumsResponse(enums))
}

// Provider surface

func (h *Handler) ListSatellites(c *ginext.Context) {
	satellites, err := h.providerService.Satellites(c.Request.Context(), c.Param("provider"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, satellites)
}

func (h *Handler) ListGroundStations(c *ginext.Context) {
	stations, err := h.providerService.GroundStations(c.Request.Context(), c.Param("provider"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stations)
}

func (h *Handler) ListActivityScopes(c *ginext.Context) {
	scopes, err := h.providerService.ActivityScopes(
		c.Request.Context(), c.Param("provider"), c.Param("satelliteId"),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, scopes)
}

func (h *Handler) ListContacts(c *ginext.Context) {
	gsID := c.Query("gs_id")
	satelliteID := c.Query("satellite_id")
	spbasID := c.Query("spbas_id")
	if gsID == "" || satelliteID == "" || spbasID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "gs_id, satellite_id and spbas_id query parameters are required",
		})
		return
	}

	startDate, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start date, expected YYYY-MM-DD",
		})
		return
	}
	endDate, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid end date, expected YYYY-MM-DD",
		})
		return
	}

	contacts, err := h.providerService.Contacts(
		c.Request.Context(), c.Param("provider"), gsID, satelliteID, spbasID, startDate, endDate,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, contacts)
}

func (h *Handler) ListProviderBookings(c *ginext.Context) {
	bookings, err := h.providerService.Bookings(c.Request.Context(), c.Param("provider"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

func (h *Handler) ReserveContact(c *ginext.Context) {
	var req dto.ReserveContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := &domain.ReserveContactInput{
		Provider:      c.Param("provider"),
		GsID:          req.GsID,
		SatelliteID:   req.SatelliteID,
		SatelliteName: req.SatelliteName,
		VisibilityID:  req.VisibilityID,
		GsabracID:     req.GsabracID,
		Purpose:       req.Purpose,
		Notes:         req.Notes,
	}

	booking, err := h.bookingService.ReserveFromProvider(c.Request.Context(), principal(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	var req dto.CancelReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	cancelled, err := h.providerService.Cancel(
		c.Request.Context(), principal(c), c.Param("provider"), req.ProviderBookingID,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CancelResponse{Cancelled: cancelled})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrAuthRequired):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrBookingNotPending):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrProviderNotSupported):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrProviderRequest):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
