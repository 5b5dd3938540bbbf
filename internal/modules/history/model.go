package history

import (
	"time"

	"github.com/google/uuid"
)

// Run is one persisted packing-list generation.
type Run struct {
	ID                uuid.UUID `json:"id"`
	CreatedAt         time.Time `json:"created_at"`
	Locations         string    `json:"locations"`
	DurationDays      int       `json:"duration_days"`
	LuggageVolumeL    float64   `json:"luggage_volume_l"`
	Provider          string    `json:"provider"`
	Parsed            bool      `json:"parsed"`
	ValidationMessage string    `json:"validation_message,omitempty"`
	RawResponse       string    `json:"raw_response"`
}
