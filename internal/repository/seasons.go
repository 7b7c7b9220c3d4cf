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

// SeasonPatch carries the partial update merged into the current season when
// a standings screenshot is committed. Nil fields are left untouched.
type SeasonPatch struct {
	TeamName     *string
	Conference   *string
	Wins         *int
	Losses       *int
	ConfWins     *int
	ConfLosses   *int
	Ranking      *int
	ClassRanking *int
}

type SeasonRepository interface {
	Add(ctx context.Context, s *entity.Season) error
	GetCurrent(ctx context.Context) (*entity.Season, error)
	// MergeCurrent applies patch to the latest season, creating one for the
	// current year if the store is empty.
	MergeCurrent(ctx context.Context, patch SeasonPatch) (*entity.Season, error)
	List(ctx context.Context) ([]*entity.Season, error)
}

type seasonRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewSeasonRepository(db *sql.DB, logger *slog.Logger) SeasonRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &seasonRepository{db: db, logger: logger}
}

func (r *seasonRepository) Add(ctx context.Context, s *entity.Season) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO seasons (
            id, year, team_name, conference, wins, losses, conf_wins, conf_losses,
            ranking, class_ranking, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID.String(), s.Year, s.TeamName, s.Conference, s.Wins, s.Losses,
		s.ConfWins, s.ConfLosses, nullInt(s.Ranking), nullInt(s.ClassRanking),
		fmtTime(s.CreatedAt), fmtTime(s.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert season: %w", err)
	}
	return nil
}

func (r *seasonRepository) GetCurrent(ctx context.Context) (*entity.Season, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, year, team_name, conference, wins, losses, conf_wins, conf_losses,
                ranking, class_ranking, created_at, updated_at
           FROM seasons ORDER BY year DESC, created_at DESC LIMIT 1`)
	s, err := scanSeason(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("current season: %w", common.ErrNotFound)
	}
	return s, err
}

func (r *seasonRepository) MergeCurrent(ctx context.Context, patch SeasonPatch) (*entity.Season, error) {
	s, err := r.GetCurrent(ctx)
	if errors.Is(err, common.ErrNotFound) {
		s = &entity.Season{Year: time.Now().UTC().Year()}
		if err := r.Add(ctx, s); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if patch.TeamName != nil {
		s.TeamName = *patch.TeamName
	}
	if patch.Conference != nil {
		s.Conference = *patch.Conference
	}
	if patch.Wins != nil {
		s.Wins = *patch.Wins
	}
	if patch.Losses != nil {
		s.Losses = *patch.Losses
	}
	if patch.ConfWins != nil {
		s.ConfWins = *patch.ConfWins
	}
	if patch.ConfLosses != nil {
		s.ConfLosses = *patch.ConfLosses
	}
	if patch.Ranking != nil {
		s.Ranking = patch.Ranking
	}
	if patch.ClassRanking != nil {
		s.ClassRanking = patch.ClassRanking
	}
	s.UpdatedAt = time.Now().UTC()

	_, err = r.db.ExecContext(ctx,
		`UPDATE seasons SET team_name = ?, conference = ?, wins = ?, losses = ?,
                conf_wins = ?, conf_losses = ?, ranking = ?, class_ranking = ?, updated_at = ?
          WHERE id = ?`,
		s.TeamName, s.Conference, s.Wins, s.Losses, s.ConfWins, s.ConfLosses,
		nullInt(s.Ranking), nullInt(s.ClassRanking), fmtTime(s.UpdatedAt), s.ID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("merge season: %w", err)
	}
	r.logger.Debug("season.merged", "season_id", s.ID, "wins", s.Wins, "losses", s.Losses)
	return s, nil
}

func (r *seasonRepository) List(ctx context.Context) ([]*entity.Season, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, year, team_name, conference, wins, losses, conf_wins, conf_losses,
                ranking, class_ranking, created_at, updated_at
           FROM seasons ORDER BY year DESC`)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	defer rows.Close()

	var out []*entity.Season
	for rows.Next() {
		s, err := scanSeason(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSeason(row rowScanner) (*entity.Season, error) {
	var (
		s                     entity.Season
		id, created, updated  string
		ranking, classRanking sql.NullInt64
	)
	err := row.Scan(&id, &s.Year, &s.TeamName, &s.Conference, &s.Wins, &s.Losses,
		&s.ConfWins, &s.ConfLosses, &ranking, &classRanking, &created, &updated)
	if err != nil {
		return nil, err
	}
	s.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse season id: %w", err)
	}
	s.Ranking = intPtr(ranking)
	s.ClassRanking = intPtr(classRanking)
	s.CreatedAt = parseTime(created)
	s.UpdatedAt = parseTime(updated)
	return &s, nil
}
