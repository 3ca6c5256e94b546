package dto

type CreateBookingRequest struct {
	Provider        string  `json:"provider" binding:"required"`
	SatelliteID     string  `json:"satellite_id" binding:"required"`
	StartTime       string  `json:"start_time" binding:"required"`
	DurationMinutes int     `json:"duration_minutes"`
	PassType        string  `json:"pass_type"`
	Purpose         string  `json:"purpose" binding:"required"`
	RuleType        string  `json:"rule_type"`
	FrequencyDays   *int    `json:"frequency_days"`
	Notes           *string `json:"notes"`
}

type ApproveRequest struct {
	Comments string `json:"comments"`
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type ReserveContactRequest struct {
	GsID          string  `json:"gs_id" binding:"required"`
	SatelliteID   string  `json:"satellite_id" binding:"required"`
	SatelliteName string  `json:"satellite_name"`
	VisibilityID  string  `json:"gs_visibility_id" binding:"required"`
	GsabracID     string  `json:"gsabrac_id" binding:"required"`
	Purpose       string  `json:"purpose"`
	Notes         *string `json:"notes"`
}

type CancelReservationRequest struct {
	ProviderBookingID string `json:"satellite_pass_booking_id" binding:"required"`
}
