package vision

import (
	"encoding/json"
	"fmt"

	"github.com/Hustada/dynastylab/constants"
)

// ExtractedData is the tagged union flowing from extraction into routing.
// Exactly the variant matching ScreenType is populated; everything else is
// nil. ScreenUnknown carries no variant at all.
type ExtractedData struct {
	ScreenType  constants.ScreenType `json:"screenType"`
	Standings   *StandingsData       `json:"standings,omitempty"`
	TeamStats   *TeamStatsData       `json:"teamStats,omitempty"`
	GameResult  *GameResultData      `json:"gameResult,omitempty"`
	Schedule    []ScheduledGameData  `json:"schedule,omitempty"`
	Roster      []PlayerData         `json:"roster,omitempty"`
	DepthChart  []PlayerData         `json:"depthChart,omitempty"`
	Recruiting  *RecruitingData      `json:"recruiting,omitempty"`
	CoachInfo   *CoachInfoData       `json:"coachInfo,omitempty"`
	TrophyCase  *TrophyCaseData      `json:"trophyCase,omitempty"`
	Top25       *RankingsData        `json:"top25,omitempty"`
	PlayerStats *PlayerStatsData     `json:"playerStats,omitempty"`
}

// RecordData is a win/loss pair.
type RecordData struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

// StandingsData is the season-standings variant.
type StandingsData struct {
	TeamName         string     `json:"teamName"`
	Conference       string     `json:"conference,omitempty"`
	OverallRecord    RecordData `json:"overallRecord"`
	ConferenceRecord RecordData `json:"conferenceRecord"`
	Ranking          *int       `json:"ranking,omitempty"`
}

// TeamStatsData is the team-stats variant. No store maps to it yet; it is
// carried for review display only.
type TeamStatsData struct {
	TeamName            string   `json:"teamName"`
	PointsPerGame       *float64 `json:"pointsPerGame,omitempty"`
	PointsAllowed       *float64 `json:"pointsAllowed,omitempty"`
	TotalYardsPerGame   *float64 `json:"totalYardsPerGame,omitempty"`
	PassingYardsPerGame *float64 `json:"passingYardsPerGame,omitempty"`
	RushingYardsPerGame *float64 `json:"rushingYardsPerGame,omitempty"`
}

// GameResultData is the game-result variant, always a played game.
type GameResultData struct {
	Opponent      string `json:"opponent"`
	Week          *int   `json:"week,omitempty"`
	TeamScore     int    `json:"teamScore"`
	OpponentScore int    `json:"opponentScore"`
	Location      string `json:"location,omitempty"`
	UpsetVictory  bool   `json:"upsetVictory,omitempty"`
}

// Margin is positive for a win.
func (g GameResultData) Margin() int {
	return g.TeamScore - g.OpponentScore
}

// ScheduledGameData is one row of the schedule variant. Scores are only
// meaningful when Played is true.
type ScheduledGameData struct {
	Opponent      string `json:"opponent"`
	Week          *int   `json:"week,omitempty"`
	Location      string `json:"location,omitempty"`
	Played        bool   `json:"played,omitempty"`
	TeamScore     int    `json:"teamScore,omitempty"`
	OpponentScore int    `json:"opponentScore,omitempty"`
}

// PlayerData is one roster or depth-chart row.
type PlayerData struct {
	Name          string `json:"name"`
	Position      string `json:"position,omitempty"`
	Class         string `json:"class,omitempty"`
	JerseyNumber  *int   `json:"jerseyNumber,omitempty"`
	OverallRating *int   `json:"overall,omitempty"`
	DepthOrder    *int   `json:"depthOrder,omitempty"`
}

// RecruitData is one commit or target on the recruiting board.
type RecruitData struct {
	Name      string `json:"name"`
	Position  string `json:"position,omitempty"`
	Stars     int    `json:"stars"`
	State     string `json:"state,omitempty"`
	Committed bool   `json:"committed,omitempty"`
}

// RecruitingData is the recruiting-board variant.
type RecruitingData struct {
	Commits        []RecruitData `json:"commits"`
	ClassRanking   *int          `json:"classRanking,omitempty"`
	FiveStarCommit bool          `json:"fiveStarCommit,omitempty"`
}

// CoachInfoData is the coach-info variant.
type CoachInfoData struct {
	CoachID       string `json:"coachId,omitempty"`
	Name          string `json:"name"`
	Role          string `json:"role,omitempty"`
	HotSeat       bool   `json:"hotSeat"`
	ContractYears *int   `json:"contractYears,omitempty"`
	Approval      *int   `json:"approval,omitempty"`
}

// TrophyData is one trophy-case entry.
type TrophyData struct {
	Name string `json:"name"`
	Year *int   `json:"year,omitempty"`
}

// TrophyCaseData is the trophy-case variant.
type TrophyCaseData struct {
	Trophies []TrophyData `json:"trophies"`
}

// RankedTeamData is one poll row.
type RankedTeamData struct {
	Rank     int    `json:"rank"`
	TeamName string `json:"teamName"`
	Record   string `json:"record,omitempty"`
}

// RankingsData is the top25-rankings variant.
type RankingsData struct {
	Poll  string           `json:"poll,omitempty"`
	Teams []RankedTeamData `json:"teams"`
}

// PlayerStatLine is one player's stat row.
type PlayerStatLine struct {
	Name           string `json:"name"`
	Position       string `json:"position,omitempty"`
	PassingYards   *int   `json:"passingYards,omitempty"`
	RushingYards   *int   `json:"rushingYards,omitempty"`
	ReceivingYards *int   `json:"receivingYards,omitempty"`
	Touchdowns     *int   `json:"touchdowns,omitempty"`
	Tackles        *int   `json:"tackles,omitempty"`
}

// PlayerStatsData is the player-stats variant.
type PlayerStatsData struct {
	Players []PlayerStatLine `json:"players"`
}

// decodeVariant unmarshals validated JSON into the variant struct for st.
// Cross-type leakage is impossible: only the matching field is populated.
func decodeVariant(st constants.ScreenType, raw []byte) (ExtractedData, error) {
	data := ExtractedData{ScreenType: st}
	var err error
	switch st {
	case constants.ScreenSeasonStandings:
		err = json.Unmarshal(raw, &data.Standings)
	case constants.ScreenTeamStats:
		err = json.Unmarshal(raw, &data.TeamStats)
	case constants.ScreenGameResult:
		err = json.Unmarshal(raw, &data.GameResult)
	case constants.ScreenSchedule:
		err = json.Unmarshal(raw, &data.Schedule)
	case constants.ScreenRosterOverview:
		err = json.Unmarshal(raw, &data.Roster)
	case constants.ScreenDepthChart:
		err = json.Unmarshal(raw, &data.DepthChart)
	case constants.ScreenRecruitingBoard:
		err = json.Unmarshal(raw, &data.Recruiting)
	case constants.ScreenCoachInfo:
		err = json.Unmarshal(raw, &data.CoachInfo)
	case constants.ScreenTrophyCase:
		err = json.Unmarshal(raw, &data.TrophyCase)
	case constants.ScreenTop25Rankings:
		err = json.Unmarshal(raw, &data.Top25)
	case constants.ScreenPlayerStats:
		err = json.Unmarshal(raw, &data.PlayerStats)
	case constants.ScreenUnknown:
		// no variant
	default:
		err = fmt.Errorf("unhandled screen type %q", st)
	}
	if err != nil {
		return ExtractedData{ScreenType: st}, fmt.Errorf("decode %s variant: %w", st, err)
	}
	return data, nil
}
