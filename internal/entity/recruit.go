package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recruit represents one recruiting-class commit or target.
type Recruit struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position,omitempty"`
	Stars     int       `json:"stars"`
	State     string    `json:"state,omitempty"`
	Committed bool      `json:"committed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
