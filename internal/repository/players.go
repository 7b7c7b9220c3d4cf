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

type PlayerRepository interface {
	Add(ctx context.Context, p *entity.Player) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Player, error)
	List(ctx context.Context) ([]*entity.Player, error)
}

type playerRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewPlayerRepository(db *sql.DB, logger *slog.Logger) PlayerRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &playerRepository{db: db, logger: logger}
}

func (r *playerRepository) Add(ctx context.Context, p *entity.Player) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO players (
            id, name, position, class, jersey_number, overall_rating, depth_order,
            created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID.String(), p.Name, p.Position, p.Class, nullInt(p.JerseyNumber),
		nullInt(p.OverallRating), nullInt(p.DepthOrder),
		fmtTime(p.CreatedAt), fmtTime(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert player: %w", err)
	}
	return nil
}

func (r *playerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Player, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, position, class, jersey_number, overall_rating, depth_order,
                created_at, updated_at
           FROM players WHERE id = ?`, id.String())
	p, err := scanPlayer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("player %s: %w", id, common.ErrNotFound)
	}
	return p, err
}

func (r *playerRepository) List(ctx context.Context) ([]*entity.Player, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, position, class, jersey_number, overall_rating, depth_order,
                created_at, updated_at
           FROM players ORDER BY position, depth_order IS NULL, depth_order, name`)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	var out []*entity.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPlayer(row rowScanner) (*entity.Player, error) {
	var (
		p                      entity.Player
		id, created, updated   string
		jersey, overall, depth sql.NullInt64
	)
	err := row.Scan(&id, &p.Name, &p.Position, &p.Class, &jersey, &overall, &depth,
		&created, &updated)
	if err != nil {
		return nil, err
	}
	p.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse player id: %w", err)
	}
	p.JerseyNumber = intPtr(jersey)
	p.OverallRating = intPtr(overall)
	p.DepthOrder = intPtr(depth)
	p.CreatedAt = parseTime(created)
	p.UpdatedAt = parseTime(updated)
	return &p, nil
}
