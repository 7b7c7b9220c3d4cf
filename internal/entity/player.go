package entity

import (
	"time"

	"github.com/google/uuid"
)

// Player represents one roster entry.
type Player struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Position      string    `json:"position,omitempty"`
	Class         string    `json:"class,omitempty"` // FR, SO, JR, SR (with RS prefix)
	JerseyNumber  *int      `json:"jersey_number,omitempty"`
	OverallRating *int      `json:"overall_rating,omitempty"`
	DepthOrder    *int      `json:"depth_order,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
