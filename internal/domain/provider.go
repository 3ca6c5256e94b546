package domain

import "time"

// Provider is a registered ground-station operator. Rows are seeded by
// migration and read-only from this service.
type Provider struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	ContactEmail *string   `json:"contact_email,omitempty"`
	ContactPhone *string   `json:"contact_phone,omitempty"`
	APIEndpoint  *string   `json:"api_endpoint,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ProviderSatellite struct {
	ID      string `json:"id"`
	Name    string `json:"name,omitempty"`
	NoradID string `json:"norad_id,omitempty"`
}

type ProviderGroundStation struct {
	ID        string  `json:"id"`
	Name      string  `json:"name,omitempty"`
	City      string  `json:"city,omitempty"`
	State     string  `json:"state,omitempty"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ProviderActivityScope struct {
	GsabracID         string `json:"gsabrac_id"`
	SpbasID           string `json:"spbas_id"`
	SatelliteID       string `json:"satellite_id"`
	ActivityScope     string `json:"activity_scope,omitempty"`
	TaskName          string `json:"task_name,omitempty"`
	CommunicationBand string `json:"communication_band,omitempty"`
}

// ProviderContact is a visibility window during which a ground station
// can communicate with a satellite.
type ProviderContact struct {
	VisibilityID      string     `json:"visibility_id"`
	GsID              string     `json:"gs_id"`
	GroundStationName string     `json:"ground_station_name,omitempty"`
	SatelliteID       string     `json:"satellite_id"`
	PassStart         *time.Time `json:"pass_start,omitempty"`
	PassEnd           *time.Time `json:"pass_end,omitempty"`
	MaxElevation      float64    `json:"max_elevation"`
	Status            string     `json:"status,omitempty"`
	DurationSeconds   int        `json:"duration_seconds"`
}

// ProviderReservation is the provider's view of a reserved contact.
// It carries every timing field the provider supplies; downstream
// telecommand triggering depends on them.
type ProviderReservation struct {
	BookingID         string `json:"booking_id"`
	GsID              string `json:"gs_id"`
	SatelliteID       string `json:"satellite_id"`
	VisibilityID      string `json:"visibility_id"`
	GroundStationName string `json:"ground_station_name,omitempty"`
	GsapName          string `json:"gsap_name,omitempty"`
	NoradID           int    `json:"norad_id"`

	StartDateTime       *time.Time `json:"start_date_time,omitempty"`
	EndDateTime         *time.Time `json:"end_date_time,omitempty"`
	BookingStartEpochMs int64      `json:"booking_start_epoch_ms,omitempty"`
	BookingEndEpochMs   int64      `json:"booking_end_epoch_ms,omitempty"`
	RecordingStartTime  *time.Time `json:"recording_start_time,omitempty"`
	RecordingEndTime    *time.Time `json:"recording_end_time,omitempty"`

	MaxElevation  float64 `json:"max_elevation"`
	ActivityScope string  `json:"activity_scope,omitempty"`

	SpbasID string `json:"spbas_id,omitempty"`
	GsaID   string `json:"gsa_id,omitempty"`
	GsapID  string `json:"gsap_id,omitempty"`
	OrgID   string `json:"org_id,omitempty"`
	Status  string `json:"status,omitempty"`

	CreatedDateTime *time.Time `json:"created_date_time,omitempty"`
	UpdatedDateTime *time.Time `json:"updated_date_time,omitempty"`
}
