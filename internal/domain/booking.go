package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusApproved BookingStatus = "approved"
	BookingStatusRejected BookingStatus = "rejected"
)

// GsStatus is the execution status at the ground station,
// independent of the internal approval status.
type GsStatus string

const (
	GsStatusScheduled GsStatus = "scheduled"
	GsStatusConfirmed GsStatus = "confirmed"
)

const (
	ApprovalActionApproved = "approved"
	ApprovalActionRejected = "rejected"
)

const (
	DefaultDurationMinutes = 15
	DefaultPassType        = "both"
	RuleTypeOneTime        = "one_time"
	RuleTypeRecurring      = "recurring"
)

type Booking struct {
	ID              int           `json:"id"`
	Provider        string        `json:"provider"`
	SatelliteID     string        `json:"satellite_id"`
	StartTime       time.Time     `json:"start_time"`
	EndTime         time.Time     `json:"end_time"`
	DurationMinutes int           `json:"duration_minutes"`
	PassType        string        `json:"pass_type"`
	Purpose         string        `json:"purpose"`
	RuleType        string        `json:"rule_type"`
	FrequencyDays   *int          `json:"frequency_days,omitempty"`
	Status          BookingStatus `json:"status"`
	GsStatus        GsStatus      `json:"gs_status"`
	RequestedBy     string        `json:"requested_by"`
	ApprovedBy      *string       `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time    `json:"approved_at,omitempty"`
	RejectionReason *string       `json:"rejection_reason,omitempty"`
	Notes           *string       `json:"notes,omitempty"`

	// Correlation with the external provider, set only for
	// provider-backed bookings.
	ProviderSatelliteID *string           `json:"provider_satellite_id,omitempty"`
	ProviderGsID        *string           `json:"provider_gs_id,omitempty"`
	ProviderContactID   *string           `json:"provider_contact_id,omitempty"`
	ProviderBookingID   *string           `json:"provider_booking_id,omitempty"`
	ProviderMetadata    *ProviderMetadata `json:"provider_metadata,omitempty"`
	MaxElevation        *float64          `json:"max_elevation,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateBookingInput struct {
	Provider        string
	SatelliteID     string
	StartTime       time.Time
	DurationMinutes int
	PassType        string
	Purpose         string
	RuleType        string
	FrequencyDays   *int
	Notes           *string
}

type ReserveContactInput struct {
	Provider      string
	GsID          string
	SatelliteID   string
	SatelliteName string
	VisibilityID  string
	GsabracID     string
	Purpose       string
	Notes         *string
}

// EnumValues is the authoritative vocabulary for enumerated booking
// fields, sourced from the database enum types.
type EnumValues struct {
	ProviderTypes []string `json:"provider_types"`
	PassTypes     []string `json:"pass_types"`
	PurposeTypes  []string `json:"purpose_types"`
	RuleTypes     []string `json:"rule_types"`
	StatusTypes   []string `json:"status_types"`
	GsStatusTypes []string `json:"gs_status_types"`
}
