package entity

import (
	"time"

	"github.com/google/uuid"
)

// Coach represents a coaching-staff member.
type Coach struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Role          string    `json:"role,omitempty"` // HC, OC, DC, ...
	ContractYears *int      `json:"contract_years,omitempty"`
	Approval      *int      `json:"approval,omitempty"` // 0..100
	HotSeat       bool      `json:"hot_seat"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
