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

type CoachRepository interface {
	// Upsert updates the coach matched by ID (or by name when the payload
	// carries no usable ID) and inserts a new record otherwise.
	Upsert(ctx context.Context, c *entity.Coach) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Coach, error)
	List(ctx context.Context) ([]*entity.Coach, error)
}

type coachRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewCoachRepository(db *sql.DB, logger *slog.Logger) CoachRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &coachRepository{db: db, logger: logger}
}

func (r *coachRepository) Upsert(ctx context.Context, c *entity.Coach) error {
	existing, err := r.match(ctx, c)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return err
	}
	now := time.Now().UTC()

	if existing == nil {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		c.CreatedAt = now
		c.UpdatedAt = now
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO coaches (
                id, name, role, contract_years, approval, hot_seat, created_at, updated_at
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID.String(), c.Name, c.Role, nullInt(c.ContractYears),
			nullInt(c.Approval), boolToInt(c.HotSeat), fmtTime(c.CreatedAt), fmtTime(c.UpdatedAt),
		)
		if err != nil {
			return fmt.Errorf("insert coach: %w", err)
		}
		return nil
	}

	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = now
	_, err = r.db.ExecContext(ctx,
		`UPDATE coaches SET name = ?, role = ?, contract_years = ?, approval = ?,
                hot_seat = ?, updated_at = ?
          WHERE id = ?`,
		c.Name, c.Role, nullInt(c.ContractYears), nullInt(c.Approval),
		boolToInt(c.HotSeat), fmtTime(c.UpdatedAt), c.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("update coach: %w", err)
	}
	return nil
}

func (r *coachRepository) match(ctx context.Context, c *entity.Coach) (*entity.Coach, error) {
	if c.ID != uuid.Nil {
		found, err := r.GetByID(ctx, c.ID)
		if err == nil {
			return found, nil
		}
		if !errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
	}
	if c.Name == "" {
		return nil, common.ErrNotFound
	}
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, role, contract_years, approval, hot_seat, created_at, updated_at
           FROM coaches WHERE name = ? LIMIT 1`, c.Name)
	found, err := scanCoach(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	return found, err
}

func (r *coachRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Coach, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, role, contract_years, approval, hot_seat, created_at, updated_at
           FROM coaches WHERE id = ?`, id.String())
	c, err := scanCoach(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("coach %s: %w", id, common.ErrNotFound)
	}
	return c, err
}

func (r *coachRepository) List(ctx context.Context) ([]*entity.Coach, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, role, contract_years, approval, hot_seat, created_at, updated_at
           FROM coaches ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list coaches: %w", err)
	}
	defer rows.Close()

	var out []*entity.Coach
	for rows.Next() {
		c, err := scanCoach(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanCoach(row rowScanner) (*entity.Coach, error) {
	var (
		c                    entity.Coach
		id, created, updated string
		years, approval      sql.NullInt64
		hotSeat              int
	)
	err := row.Scan(&id, &c.Name, &c.Role, &years, &approval, &hotSeat, &created, &updated)
	if err != nil {
		return nil, err
	}
	c.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse coach id: %w", err)
	}
	c.ContractYears = intPtr(years)
	c.Approval = intPtr(approval)
	c.HotSeat = hotSeat != 0
	c.CreatedAt = parseTime(created)
	c.UpdatedAt = parseTime(updated)
	return &c, nil
}
