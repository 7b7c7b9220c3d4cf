package entity

import (
	"time"

	"github.com/google/uuid"
)

// Season represents one dynasty season's running record.
type Season struct {
	ID           uuid.UUID `json:"id"`
	Year         int       `json:"year"`
	TeamName     string    `json:"team_name"`
	Conference   string    `json:"conference,omitempty"`
	Wins         int       `json:"wins"`
	Losses       int       `json:"losses"`
	ConfWins     int       `json:"conf_wins"`
	ConfLosses   int       `json:"conf_losses"`
	Ranking      *int      `json:"ranking,omitempty"`
	ClassRanking *int      `json:"class_ranking,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
