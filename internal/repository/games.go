package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Hustada/dynastylab/internal/common"
	"github.com/Hustada/dynastylab/internal/entity"
)

type GameRepository interface {
	Add(ctx context.Context, g *entity.Game) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Game, error)
	List(ctx context.Context) ([]*entity.Game, error)
}

type gameRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewGameRepository(db *sql.DB, logger *slog.Logger) GameRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &gameRepository{db: db, logger: logger}
}

func (r *gameRepository) Add(ctx context.Context, g *entity.Game) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	now := time.Now().UTC()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	g.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO games (
            id, week, opponent, team_score, opponent_score, location, played,
            upset_victory, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID.String(), nullInt(g.Week), g.Opponent, g.TeamScore, g.OpponentScore,
		g.Location, boolToInt(g.Played), boolToInt(g.UpsetVictory),
		fmtTime(g.CreatedAt), fmtTime(g.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert game: %w", err)
	}
	return nil
}

func (r *gameRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Game, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, week, opponent, team_score, opponent_score, location, played,
                upset_victory, created_at, updated_at
           FROM games WHERE id = ?`, id.String())
	g, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("game %s: %w", id, common.ErrNotFound)
	}
	return g, err
}

func (r *gameRepository) List(ctx context.Context) ([]*entity.Game, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, week, opponent, team_score, opponent_score, location, played,
                upset_victory, created_at, updated_at
           FROM games ORDER BY week IS NULL, week, created_at`)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	var out []*entity.Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func scanGame(row rowScanner) (*entity.Game, error) {
	var (
		g                    entity.Game
		id, created, updated string
		week                 sql.NullInt64
		played, upset        int
	)
	err := row.Scan(&id, &week, &g.Opponent, &g.TeamScore, &g.OpponentScore,
		&g.Location, &played, &upset, &created, &updated)
	if err != nil {
		return nil, err
	}
	g.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse game id: %w", err)
	}
	g.Week = intPtr(week)
	g.Played = played != 0
	g.UpsetVictory = upset != 0
	g.CreatedAt = parseTime(created)
	g.UpdatedAt = parseTime(updated)
	return &g, nil
}
