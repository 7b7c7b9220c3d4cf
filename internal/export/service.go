// Package export produces XLSX workbooks from the dynasty stores.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Hustada/dynastylab/internal/common"
	"github.com/Hustada/dynastylab/internal/pipeline"
)

// Service is a tiny façade over the domain stores that produces XLSX bytes.
type Service struct {
	stores pipeline.Stores
	logger *slog.Logger
}

func NewService(stores pipeline.Stores, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{stores: stores, logger: logger}
}

// ExportDynastyXLSX returns one workbook with a sheet per store: Seasons,
// Games, Roster, Recruits, Coaches.
func (s *Service) ExportDynastyXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()
	f := excelize.NewFile()

	if err := s.writeSeasons(ctx, f); err != nil {
		return nil, err
	}
	if err := s.writeGames(ctx, f); err != nil {
		return nil, err
	}
	if err := s.writeRoster(ctx, f); err != nil {
		return nil, err
	}
	if err := s.writeRecruits(ctx, f); err != nil {
		return nil, err
	}
	if err := s.writeCoaches(ctx, f); err != nil {
		return nil, err
	}

	// drop the default sheet excelize creates
	_ = f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	s.logger.Info("export.ok", "bytes", buf.Len(), "elapsed_ms", time.Since(start).Milliseconds())
	return buf.Bytes(), nil
}

func newSheet(f *excelize.File, name string, headers []string) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("new sheet %s: %w", name, err)
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(name, cell, h); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
}

func orEmpty(p *int) any {
	if p == nil {
		return ""
	}
	return *p
}

func (s *Service) writeSeasons(ctx context.Context, f *excelize.File) error {
	const sheet = "Seasons"
	if err := newSheet(f, sheet, []string{"Year", "Team", "Conference", "Overall", "Conference Record", "Ranking"}); err != nil {
		return err
	}
	seasons, err := s.stores.Seasons.List(ctx)
	if err != nil {
		return common.WrapError(err, "list seasons")
	}
	for i, sn := range seasons {
		writeRow(f, sheet, i+2, []any{
			sn.Year, sn.TeamName, sn.Conference,
			fmt.Sprintf("%d-%d", sn.Wins, sn.Losses),
			fmt.Sprintf("%d-%d", sn.ConfWins, sn.ConfLosses),
			orEmpty(sn.Ranking),
		})
	}
	return nil
}

func (s *Service) writeGames(ctx context.Context, f *excelize.File) error {
	const sheet = "Games"
	if err := newSheet(f, sheet, []string{"Week", "Opponent", "Location", "Score", "Result"}); err != nil {
		return err
	}
	games, err := s.stores.Games.List(ctx)
	if err != nil {
		return common.WrapError(err, "list games")
	}
	for i, g := range games {
		score, result := "", "scheduled"
		if g.Played {
			score = fmt.Sprintf("%d-%d", g.TeamScore, g.OpponentScore)
			if g.Margin() > 0 {
				result = "W"
			} else if g.Margin() < 0 {
				result = "L"
			} else {
				result = "T"
			}
		}
		writeRow(f, sheet, i+2, []any{orEmpty(g.Week), g.Opponent, g.Location, score, result})
	}
	return nil
}

func (s *Service) writeRoster(ctx context.Context, f *excelize.File) error {
	const sheet = "Roster"
	if err := newSheet(f, sheet, []string{"Name", "Position", "Class", "Number", "Overall", "Depth"}); err != nil {
		return err
	}
	players, err := s.stores.Players.List(ctx)
	if err != nil {
		return common.WrapError(err, "list players")
	}
	for i, p := range players {
		writeRow(f, sheet, i+2, []any{
			p.Name, p.Position, p.Class,
			orEmpty(p.JerseyNumber), orEmpty(p.OverallRating), orEmpty(p.DepthOrder),
		})
	}
	return nil
}

func (s *Service) writeRecruits(ctx context.Context, f *excelize.File) error {
	const sheet = "Recruits"
	if err := newSheet(f, sheet, []string{"Name", "Position", "Stars", "State", "Committed"}); err != nil {
		return err
	}
	recruits, err := s.stores.Recruits.List(ctx)
	if err != nil {
		return common.WrapError(err, "list recruits")
	}
	for i, rec := range recruits {
		writeRow(f, sheet, i+2, []any{rec.Name, rec.Position, rec.Stars, rec.State, rec.Committed})
	}
	return nil
}

func (s *Service) writeCoaches(ctx context.Context, f *excelize.File) error {
	const sheet = "Coaches"
	if err := newSheet(f, sheet, []string{"Name", "Role", "Contract Years", "Approval", "Hot Seat"}); err != nil {
		return err
	}
	coaches, err := s.stores.Coaches.List(ctx)
	if err != nil {
		return common.WrapError(err, "list coaches")
	}
	for i, c := range coaches {
		writeRow(f, sheet, i+2, []any{c.Name, c.Role, orEmpty(c.ContractYears), orEmpty(c.Approval), c.HotSeat})
	}
	return nil
}
