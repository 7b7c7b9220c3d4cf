package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Hustada/dynastylab/internal/entity"
)

type RecruitRepository interface {
	Add(ctx context.Context, rec *entity.Recruit) error
	List(ctx context.Context) ([]*entity.Recruit, error)
}

type recruitRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewRecruitRepository(db *sql.DB, logger *slog.Logger) RecruitRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &recruitRepository{db: db, logger: logger}
}

func (r *recruitRepository) Add(ctx context.Context, rec *entity.Recruit) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO recruits (
            id, name, position, stars, state, committed, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID.String(), rec.Name, rec.Position, rec.Stars, rec.State,
		boolToInt(rec.Committed), fmtTime(rec.CreatedAt), fmtTime(rec.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert recruit: %w", err)
	}
	return nil
}

func (r *recruitRepository) List(ctx context.Context) ([]*entity.Recruit, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, position, stars, state, committed, created_at, updated_at
           FROM recruits ORDER BY stars DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("list recruits: %w", err)
	}
	defer rows.Close()

	var out []*entity.Recruit
	for rows.Next() {
		var (
			rec                  entity.Recruit
			id, created, updated string
			committed            int
		)
		if err := rows.Scan(&id, &rec.Name, &rec.Position, &rec.Stars, &rec.State,
			&committed, &created, &updated); err != nil {
			return nil, err
		}
		rec.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parse recruit id: %w", err)
		}
		rec.Committed = committed != 0
		rec.CreatedAt = parseTime(created)
		rec.UpdatedAt = parseTime(updated)
		out = append(out, &rec)
	}
	return out, rows.Err()
}
