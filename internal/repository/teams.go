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

type TeamRepository interface {
	Add(ctx context.Context, t *entity.Team) error
	GetByName(ctx context.Context, name string) (*entity.Team, error)
	// EnsureByName returns the existing team or creates a bare record for it.
	EnsureByName(ctx context.Context, name string) (*entity.Team, error)
	List(ctx context.Context) ([]*entity.Team, error)
}

type teamRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewTeamRepository(db *sql.DB, logger *slog.Logger) TeamRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &teamRepository{db: db, logger: logger}
}

func (r *teamRepository) Add(ctx context.Context, t *entity.Team) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	now := time.Now().UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO teams (id, name, conference, mascot, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID.String(), t.Name, t.Conference, t.Mascot,
		fmtTime(t.CreatedAt), fmtTime(t.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert team: %w", err)
	}
	return nil
}

func (r *teamRepository) GetByName(ctx context.Context, name string) (*entity.Team, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, conference, mascot, created_at, updated_at
           FROM teams WHERE name = ?`, name)
	t, err := scanTeam(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("team %q: %w", name, common.ErrNotFound)
	}
	return t, err
}

func (r *teamRepository) EnsureByName(ctx context.Context, name string) (*entity.Team, error) {
	if name == "" {
		return nil, fmt.Errorf("team name: %w", common.ErrInvalidInput)
	}
	t, err := r.GetByName(ctx, name)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}
	t = &entity.Team{Name: name}
	if err := r.Add(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *teamRepository) List(ctx context.Context) ([]*entity.Team, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, conference, mascot, created_at, updated_at
           FROM teams ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	var out []*entity.Team
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func scanTeam(row rowScanner) (*entity.Team, error) {
	var (
		t                    entity.Team
		id, created, updated string
	)
	err := row.Scan(&id, &t.Name, &t.Conference, &t.Mascot, &created, &updated)
	if err != nil {
		return nil, err
	}
	t.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse team id: %w", err)
	}
	t.CreatedAt = parseTime(created)
	t.UpdatedAt = parseTime(updated)
	return &t, nil
}
