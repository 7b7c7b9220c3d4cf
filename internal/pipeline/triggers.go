package pipeline

import (
	"fmt"

	"github.com/Hustada/dynastylab/constants"
	"github.com/Hustada/dynastylab/internal/vision"
)

// Trigger describes one newsworthy condition found in routed data. The
// narrative-generation subsystem consumes these via content-triggered events;
// nothing here mutates a store.
type Trigger struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// EvaluateTriggers inspects data for conditions worth a story. Screen types
// with no defined trigger return nothing.
func EvaluateTriggers(data vision.ExtractedData) []Trigger {
	switch data.ScreenType {
	case constants.ScreenGameResult:
		return gameTriggers(data.GameResult)
	case constants.ScreenSeasonStandings:
		return standingsTriggers(data.Standings)
	case constants.ScreenRecruitingBoard:
		return recruitingTriggers(data.Recruiting)
	case constants.ScreenCoachInfo:
		return coachTriggers(data.CoachInfo)
	default:
		return nil
	}
}

func gameTriggers(g *vision.GameResultData) []Trigger {
	if g == nil {
		return nil
	}
	var out []Trigger
	if g.Margin() > constants.BlowoutMargin {
		out = append(out, Trigger{
			Kind:    "blowout-win",
			Message: fmt.Sprintf("Blowout win over %s, %d-%d", g.Opponent, g.TeamScore, g.OpponentScore),
		})
	}
	if g.UpsetVictory && g.Margin() > 0 {
		out = append(out, Trigger{
			Kind:    "upset-victory",
			Message: fmt.Sprintf("Upset victory over %s", g.Opponent),
		})
	}
	return out
}

func standingsTriggers(s *vision.StandingsData) []Trigger {
	if s == nil || s.Ranking == nil || *s.Ranking > constants.TopRankingMax {
		return nil
	}
	return []Trigger{{
		Kind:    "top-10-ranking",
		Message: fmt.Sprintf("%s ranked #%d", s.TeamName, *s.Ranking),
	}}
}

func recruitingTriggers(r *vision.RecruitingData) []Trigger {
	if r == nil || !r.FiveStarCommit {
		return nil
	}
	return []Trigger{{
		Kind:    "five-star-commit",
		Message: "Five-star recruit committed",
	}}
}

func coachTriggers(c *vision.CoachInfoData) []Trigger {
	if c == nil || !c.HotSeat {
		return nil
	}
	return []Trigger{{
		Kind:    "hot-seat",
		Message: fmt.Sprintf("%s is on the hot seat", c.Name),
	}}
}
