package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Hustada/dynastylab/constants"
	"github.com/Hustada/dynastylab/internal/entity"
	"github.com/Hustada/dynastylab/internal/metrics"
	"github.com/Hustada/dynastylab/internal/repository"
	"github.com/Hustada/dynastylab/internal/vision"
)

// Stores bundles the six domain stores the router writes into.
type Stores struct {
	Seasons  repository.SeasonRepository
	Games    repository.GameRepository
	Players  repository.PlayerRepository
	Recruits repository.RecruitRepository
	Coaches  repository.CoachRepository
	Teams    repository.TeamRepository
}

// Router fans validated extraction data out to the matching store. It runs
// only at commit time and trusts its typed input; a commit failure here is
// significant and propagates to the caller unwrapped.
//
// Routing is at-least-once: committing the same screenshot twice inserts
// duplicate records. That matches current product behavior; see DESIGN.md.
type Router struct {
	stores Stores
	logger *slog.Logger
}

func NewRouter(stores Stores, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{stores: stores, logger: logger}
}

// Route dispatches data to its store and returns how many records were
// written. Screen types without a mapped store are accepted as no-ops:
// nothing currently persists team stats, trophies, polls, or stat lines.
func (r *Router) Route(ctx context.Context, data vision.ExtractedData) (int, error) {
	var (
		written int
		err     error
	)

	switch data.ScreenType {
	case constants.ScreenSeasonStandings:
		written, err = r.routeStandings(ctx, data.Standings)
	case constants.ScreenGameResult:
		written, err = r.routeGameResult(ctx, data.GameResult)
	case constants.ScreenSchedule:
		written, err = r.routeSchedule(ctx, data.Schedule)
	case constants.ScreenRosterOverview:
		written, err = r.routePlayers(ctx, data.Roster)
	case constants.ScreenDepthChart:
		written, err = r.routePlayers(ctx, data.DepthChart)
	case constants.ScreenRecruitingBoard:
		written, err = r.routeRecruiting(ctx, data.Recruiting)
	case constants.ScreenCoachInfo:
		written, err = r.routeCoach(ctx, data.CoachInfo)
	case constants.ScreenTeamStats,
		constants.ScreenTrophyCase,
		constants.ScreenTop25Rankings,
		constants.ScreenPlayerStats,
		constants.ScreenUnknown:
		// intentional no-op: no store maps to these screens
	default:
		return 0, fmt.Errorf("route: unhandled screen type %q", data.ScreenType)
	}

	if err != nil {
		return written, err
	}
	if written > 0 {
		metrics.RecordsRouted.WithLabelValues(string(data.ScreenType)).Add(float64(written))
	}
	r.logger.Info("route.ok", "screen_type", data.ScreenType, "records", written)
	return written, nil
}

func (r *Router) routeStandings(ctx context.Context, s *vision.StandingsData) (int, error) {
	if s == nil {
		return 0, nil
	}
	patch := repository.SeasonPatch{
		Wins:       &s.OverallRecord.Wins,
		Losses:     &s.OverallRecord.Losses,
		ConfWins:   &s.ConferenceRecord.Wins,
		ConfLosses: &s.ConferenceRecord.Losses,
		Ranking:    s.Ranking,
	}
	if s.TeamName != "" {
		patch.TeamName = &s.TeamName
		if _, err := r.stores.Teams.EnsureByName(ctx, s.TeamName); err != nil {
			return 0, err
		}
	}
	if s.Conference != "" {
		patch.Conference = &s.Conference
	}
	if _, err := r.stores.Seasons.MergeCurrent(ctx, patch); err != nil {
		return 0, err
	}
	return 1, nil
}

func (r *Router) routeGameResult(ctx context.Context, g *vision.GameResultData) (int, error) {
	if g == nil {
		return 0, nil
	}
	game := &entity.Game{
		Week:          g.Week,
		Opponent:      g.Opponent,
		TeamScore:     g.TeamScore,
		OpponentScore: g.OpponentScore,
		Location:      g.Location,
		Played:        true,
		UpsetVictory:  g.UpsetVictory,
	}
	if err := r.stores.Games.Add(ctx, game); err != nil {
		return 0, err
	}
	return 1, nil
}

func (r *Router) routeSchedule(ctx context.Context, games []vision.ScheduledGameData) (int, error) {
	written := 0
	for _, g := range games {
		game := &entity.Game{
			Week:          g.Week,
			Opponent:      g.Opponent,
			TeamScore:     g.TeamScore,
			OpponentScore: g.OpponentScore,
			Location:      g.Location,
			Played:        g.Played,
		}
		if err := r.stores.Games.Add(ctx, game); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

func (r *Router) routePlayers(ctx context.Context, players []vision.PlayerData) (int, error) {
	written := 0
	for _, p := range players {
		player := &entity.Player{
			Name:          p.Name,
			Position:      p.Position,
			Class:         p.Class,
			JerseyNumber:  p.JerseyNumber,
			OverallRating: p.OverallRating,
			DepthOrder:    p.DepthOrder,
		}
		if err := r.stores.Players.Add(ctx, player); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

func (r *Router) routeRecruiting(ctx context.Context, rec *vision.RecruitingData) (int, error) {
	if rec == nil {
		return 0, nil
	}
	written := 0
	for _, c := range rec.Commits {
		recruit := &entity.Recruit{
			Name:      c.Name,
			Position:  c.Position,
			Stars:     c.Stars,
			State:     c.State,
			Committed: c.Committed,
		}
		if err := r.stores.Recruits.Add(ctx, recruit); err != nil {
			return written, err
		}
		written++
	}
	if rec.ClassRanking != nil {
		if _, err := r.stores.Seasons.MergeCurrent(ctx, repository.SeasonPatch{ClassRanking: rec.ClassRanking}); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

func (r *Router) routeCoach(ctx context.Context, c *vision.CoachInfoData) (int, error) {
	if c == nil {
		return 0, nil
	}
	coach := &entity.Coach{
		Name:          c.Name,
		Role:          c.Role,
		HotSeat:       c.HotSeat,
		ContractYears: c.ContractYears,
		Approval:      c.Approval,
	}
	if c.CoachID != "" {
		if id, err := uuid.Parse(c.CoachID); err == nil {
			coach.ID = id
		}
	}
	if err := r.stores.Coaches.Upsert(ctx, coach); err != nil {
		return 0, err
	}
	return 1, nil
}
