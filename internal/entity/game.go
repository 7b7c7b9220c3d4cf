package entity

import (
	"time"

	"github.com/google/uuid"
)

// Game represents one played or scheduled game.
type Game struct {
	ID            uuid.UUID `json:"id"`
	Week          *int      `json:"week,omitempty"`
	Opponent      string    `json:"opponent"`
	TeamScore     int       `json:"team_score"`
	OpponentScore int       `json:"opponent_score"`
	Location      string    `json:"location,omitempty"` // home, away, neutral
	Played        bool      `json:"played"`
	UpsetVictory  bool      `json:"upset_victory,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Margin is positive for a win and negative for a loss.
func (g *Game) Margin() int {
	return g.TeamScore - g.OpponentScore
}
