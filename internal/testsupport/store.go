// Package testsupport provides shared helpers for package tests.
package testsupport

import (
	"context"
	"database/sql"
	"log/slog"
	"testing"

	"github.com/Hustada/dynastylab/internal/common"
	"github.com/Hustada/dynastylab/internal/pipeline"
	"github.com/Hustada/dynastylab/internal/repository"
)

// MustOpenDB opens a throwaway in-memory database with migrations applied.
func MustOpenDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := repository.Open(context.Background(), common.DatabaseConfig{InMemory: true}, slog.Default())
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// NewStores opens a throwaway database and returns all six domain stores.
func NewStores(t *testing.T) pipeline.Stores {
	t.Helper()
	db := MustOpenDB(t)
	logger := slog.Default()
	return pipeline.Stores{
		Seasons:  repository.NewSeasonRepository(db, logger),
		Games:    repository.NewGameRepository(db, logger),
		Players:  repository.NewPlayerRepository(db, logger),
		Recruits: repository.NewRecruitRepository(db, logger),
		Coaches:  repository.NewCoachRepository(db, logger),
		Teams:    repository.NewTeamRepository(db, logger),
	}
}
