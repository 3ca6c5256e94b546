package domain

import "time"

// ProviderMetadata preserves the provider-specific attributes a stored
// booking needs for telecommand triggering. It is tagged by provider so
// consumers get typed fields per provider instead of a free-form blob.
type ProviderMetadata struct {
	Provider string          `json:"provider"`
	Dhruva   *DhruvaMetadata `json:"dhruva,omitempty"`
}

type DhruvaMetadata struct {
	NoradID           int    `json:"noradId"`
	SatelliteName     string `json:"satelliteName,omitempty"`
	GroundStationName string `json:"groundStationName,omitempty"`
	GsapName          string `json:"gsapName,omitempty"`
	ActivityScope     string `json:"activityScope,omitempty"`
	GsabracID         string `json:"gsabracId,omitempty"`
	SpbasID           string `json:"spbasId,omitempty"`
	GsaID             string `json:"gsaId,omitempty"`
	GsapID            string `json:"gsapId,omitempty"`

	// Recording-window timing in the redundant encodings the provider
	// supplies; kept verbatim for the telecommand trigger.
	BookingStartEpochMs int64      `json:"bookingStartEpochMs,omitempty"`
	BookingEndEpochMs   int64      `json:"bookingEndEpochMs,omitempty"`
	RecordingStartTime  *time.Time `json:"recordingStartTime,omitempty"`
	RecordingEndTime    *time.Time `json:"recordingEndTime,omitempty"`
}
