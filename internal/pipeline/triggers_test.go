package pipeline_test

import (
	"testing"

	"github.com/Hustada/dynastylab/constants"
	"github.com/Hustada/dynastylab/internal/pipeline"
	"github.com/Hustada/dynastylab/internal/vision"
)

func intp(n int) *int { return &n }

func TestEvaluateTriggersGameResult(t *testing.T) {
	tests := []struct {
		name string
		game vision.GameResultData
		want []string
	}{
		{
			name: "margin just over the blowout line",
			game: vision.GameResultData{Opponent: "Rutgers", TeamScore: 42, OpponentScore: 21},
			want: []string{"blowout-win"},
		},
		{
			name: "margin exactly on the line does not fire",
			game: vision.GameResultData{Opponent: "Rutgers", TeamScore: 41, OpponentScore: 21},
			want: nil,
		},
		{
			name: "upset win",
			game: vision.GameResultData{Opponent: "Ohio State", TeamScore: 24, OpponentScore: 21, UpsetVictory: true},
			want: []string{"upset-victory"},
		},
		{
			name: "upset flag on a loss does not fire",
			game: vision.GameResultData{Opponent: "Ohio State", TeamScore: 17, OpponentScore: 24, UpsetVictory: true},
			want: nil,
		},
		{
			name: "blowout upset fires both",
			game: vision.GameResultData{Opponent: "Georgia", TeamScore: 45, OpponentScore: 10, UpsetVictory: true},
			want: []string{"blowout-win", "upset-victory"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := vision.ExtractedData{ScreenType: constants.ScreenGameResult, GameResult: &tt.game}
			assertTriggerKinds(t, pipeline.EvaluateTriggers(data), tt.want)
		})
	}
}

func TestEvaluateTriggersStandings(t *testing.T) {
	tests := []struct {
		name    string
		ranking *int
		want    []string
	}{
		{"ranking 10 fires", intp(10), []string{"top-10-ranking"}},
		{"ranking 11 does not fire", intp(11), nil},
		{"unranked does not fire", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := vision.ExtractedData{
				ScreenType: constants.ScreenSeasonStandings,
				Standings: &vision.StandingsData{
					TeamName: "Washington Huskies",
					Ranking:  tt.ranking,
				},
			}
			assertTriggerKinds(t, pipeline.EvaluateTriggers(data), tt.want)
		})
	}
}

func TestEvaluateTriggersRecruitingAndCoach(t *testing.T) {
	fiveStar := vision.ExtractedData{
		ScreenType: constants.ScreenRecruitingBoard,
		Recruiting: &vision.RecruitingData{FiveStarCommit: true},
	}
	assertTriggerKinds(t, pipeline.EvaluateTriggers(fiveStar), []string{"five-star-commit"})

	noStars := vision.ExtractedData{
		ScreenType: constants.ScreenRecruitingBoard,
		Recruiting: &vision.RecruitingData{},
	}
	assertTriggerKinds(t, pipeline.EvaluateTriggers(noStars), nil)

	hotSeat := vision.ExtractedData{
		ScreenType: constants.ScreenCoachInfo,
		CoachInfo:  &vision.CoachInfoData{Name: "Jedd Fisch", HotSeat: true},
	}
	assertTriggerKinds(t, pipeline.EvaluateTriggers(hotSeat), []string{"hot-seat"})
}

func TestEvaluateTriggersUntriggeredScreens(t *testing.T) {
	for _, st := range []constants.ScreenType{
		constants.ScreenTeamStats,
		constants.ScreenSchedule,
		constants.ScreenRosterOverview,
		constants.ScreenDepthChart,
		constants.ScreenTrophyCase,
		constants.ScreenTop25Rankings,
		constants.ScreenPlayerStats,
		constants.ScreenUnknown,
	} {
		data := vision.MockExtraction(st)
		if got := pipeline.EvaluateTriggers(data); len(got) != 0 {
			t.Errorf("EvaluateTriggers(%s) = %v, want none", st, got)
		}
	}
}

func assertTriggerKinds(t *testing.T, got []pipeline.Trigger, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d trigger(s) %v, want %v", len(got), got, want)
	}
	for i, kind := range want {
		if got[i].Kind != kind {
			t.Errorf("trigger[%d].Kind = %q, want %q", i, got[i].Kind, kind)
		}
		if got[i].Message == "" {
			t.Errorf("trigger[%d] has empty message", i)
		}
	}
}
