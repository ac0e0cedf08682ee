package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is one wizard run. State is discarded when the session expires or is deleted.
type Session struct {
	ID        uuid.UUID    `json:"id"`
	State     BookingState `json:"state"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
