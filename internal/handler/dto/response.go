package dto

import (
	"time"

	"github.com/stellarops/gsbooker/internal/domain"
)

type BookingResponse struct {
	ID                  int                      `json:"id"`
	Provider            string                   `json:"provider"`
	SatelliteID         string                   `json:"satellite_id"`
	StartTime           string                   `json:"start_time"`
	EndTime             string                   `json:"end_time"`
	DurationMinutes     int                      `json:"duration_minutes"`
	PassType            string                   `json:"pass_type"`
	Purpose             string                   `json:"purpose"`
	RuleType            string                   `json:"rule_type"`
	FrequencyDays       *int                     `json:"frequency_days,omitempty"`
	Status              string                   `json:"status"`
	GsStatus            string                   `json:"gs_status"`
	RequestedBy         string                   `json:"requested_by"`
	ApprovedBy          *string                  `json:"approved_by,omitempty"`
	ApprovedAt          *string                  `json:"approved_at,omitempty"`
	RejectionReason     *string                  `json:"rejection_reason,omitempty"`
	Notes               *string                  `json:"notes,omitempty"`
	ProviderSatelliteID *string                  `json:"provider_satellite_id,omitempty"`
	ProviderGsID        *string                  `json:"provider_gs_id,omitempty"`
	ProviderContactID   *string                  `json:"provider_contact_id,omitempty"`
	ProviderBookingID   *string                  `json:"provider_booking_id,omitempty"`
	ProviderMetadata    *domain.ProviderMetadata `json:"provider_metadata,omitempty"`
	MaxElevation        *float64                 `json:"max_elevation,omitempty"`
	CreatedAt           string                   `json:"created_at"`
	UpdatedAt           string                   `json:"updated_at"`
}

type ProviderResponse struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	ContactEmail *string `json:"contact_email,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	APIEndpoint  *string `json:"api_endpoint,omitempty"`
	IsActive     bool    `json:"is_active"`
}

type EnumsResponse struct {
	ProviderTypes []string `json:"provider_types"`
	PassTypes     []string `json:"pass_types"`
	PurposeTypes  []string `json:"purpose_types"`
	RuleTypes     []string `json:"rule_types"`
	StatusTypes   []string `json:"status_types"`
	GsStatusTypes []string `json:"gs_status_types"`
}

type CancelResponse struct {
	Cancelled bool `json:"cancelled"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:                  b.ID,
		Provider:            b.Provider,
		SatelliteID:         b.SatelliteID,
		StartTime:           b.StartTime.Format(time.RFC3339),
		EndTime:             b.EndTime.Format(time.RFC3339),
		DurationMinutes:     b.DurationMinutes,
		PassType:            b.PassType,
		Purpose:             b.Purpose,
		RuleType:            b.RuleType,
		FrequencyDays:       b.FrequencyDays,
		Status:              string(b.Status),
		GsStatus:            string(b.GsStatus),
		RequestedBy:         b.RequestedBy,
		ApprovedBy:          b.ApprovedBy,
		RejectionReason:     b.RejectionReason,
		Notes:               b.Notes,
		ProviderSatelliteID: b.ProviderSatelliteID,
		ProviderGsID:        b.ProviderGsID,
		ProviderContactID:   b.ProviderContactID,
		ProviderBookingID:   b.ProviderBookingID,
		ProviderMetadata:    b.ProviderMetadata,
		MaxElevation:        b.MaxElevation,
		CreatedAt:           b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           b.UpdatedAt.Format(time.RFC3339),
	}
	if b.ApprovedAt != nil {
		v := b.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	return resp
}

func ToProviderResponse(p *domain.Provider) ProviderResponse {
	return ProviderResponse{
		ID:           p.ID,
		Name:         p.Name,
		Type:         p.Type,
		ContactEmail: p.ContactEmail,
		ContactPhone: p.ContactPhone,
		APIEndpoint:  p.APIEndpoint,
		IsActive:     p.IsActive,
	}
}

func ToEnumsResponse(e *domain.EnumValues) EnumsResponse {
	return EnumsResponse{
		ProviderTypes: e.ProviderTypes,
		PassTypes:     e.PassTypes,
		PurposeTypes:  e.PurposeTypes,
		RuleTypes:     e.RuleTypes,
		StatusTypes:   e.StatusTypes,
		GsStatusTypes: e.GsStatusTypes,
	}
}
