package entity

import (
	"time"

	"github.com/google/uuid"
)

// Team represents a program known to the dynasty (the user's team or an
// opponent referenced by routed data).
type Team struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Conference string    `json:"conference,omitempty"`
	Mascot     string    `json:"mascot,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
