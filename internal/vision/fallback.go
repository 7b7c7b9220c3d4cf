package vision

import "github.com/Hustada/dynastylab/constants"

// Deterministic substitutes keep the pipeline exercisable offline and keep a
// single bad screenshot from aborting a batch. Two distinct cases:
//
//   - OfflineClassification: no credential configured; a recognizable demo
//     screen so the rest of the pipeline still has something to do.
//   - FallbackClassification: the model answered but nothing parseable came
//     back; degrade to unknown with moderate confidence.

func OfflineClassification() ClassificationResult {
	return ClassificationResult{
		ScreenType:   constants.ScreenSeasonStandings,
		Confidence:   0.8,
		DetectedTeam: "Washington Huskies",
	}
}

func FallbackClassification() ClassificationResult {
	return ClassificationResult{
		ScreenType: constants.ScreenUnknown,
		Confidence: constants.FallbackConfidence,
	}
}

func intp(n int) *int { return &n }

func floatp(f float64) *float64 { return &f }

// MockExtraction returns the deterministic payload for st. Every payload
// conforms to the schema registered for its screen type.
func MockExtraction(st constants.ScreenType) ExtractedData {
	data := ExtractedData{ScreenType: st}
	switch st {
	case constants.ScreenSeasonStandings:
		data.Standings = &StandingsData{
			TeamName:         "Washington Huskies",
			Conference:       "Big Ten",
			OverallRecord:    RecordData{Wins: 8, Losses: 2},
			ConferenceRecord: RecordData{Wins: 5, Losses: 1},
			Ranking:          intp(12),
		}
	case constants.ScreenTeamStats:
		data.TeamStats = &TeamStatsData{
			TeamName:            "Washington Huskies",
			PointsPerGame:       floatp(31.4),
			PointsAllowed:       floatp(20.8),
			TotalYardsPerGame:   floatp(428.5),
			PassingYardsPerGame: floatp(265.1),
			RushingYardsPerGame: floatp(163.4),
		}
	case constants.ScreenGameResult:
		data.GameResult = &GameResultData{
			Opponent:      "Oregon Ducks",
			Week:          intp(9),
			TeamScore:     27,
			OpponentScore: 24,
			Location:      "home",
		}
	case constants.ScreenSchedule:
		data.Schedule = []ScheduledGameData{
			{Opponent: "Eastern Michigan", Week: intp(1), Location: "home", Played: true, TeamScore: 41, OpponentScore: 7},
			{Opponent: "Michigan Wolverines", Week: intp(2), Location: "away", Played: true, TeamScore: 17, OpponentScore: 21},
			{Opponent: "Oregon Ducks", Week: intp(9), Location: "home"},
			{Opponent: "Washington State", Week: intp(13), Location: "away"},
		}
	case constants.ScreenRosterOverview:
		data.Roster = []PlayerData{
			{Name: "Demond Williams Jr.", Position: "QB", Class: "SO", JerseyNumber: intp(2), OverallRating: intp(88)},
			{Name: "Jonah Coleman", Position: "HB", Class: "SR", JerseyNumber: intp(1), OverallRating: intp(90)},
			{Name: "Denzel Boston", Position: "WR", Class: "JR", JerseyNumber: intp(12), OverallRating: intp(86)},
			{Name: "Carver Willis", Position: "LT", Class: "SR", JerseyNumber: intp(72), OverallRating: intp(82)},
		}
	case constants.ScreenDepthChart:
		data.DepthChart = []PlayerData{
			{Name: "Demond Williams Jr.", Position: "QB", DepthOrder: intp(1), OverallRating: intp(88)},
			{Name: "Shea Kuykendall", Position: "QB", DepthOrder: intp(2), OverallRating: intp(74)},
			{Name: "Jonah Coleman", Position: "HB", DepthOrder: intp(1), OverallRating: intp(90)},
		}
	case constants.ScreenRecruitingBoard:
		data.Recruiting = &RecruitingData{
			Commits: []RecruitData{
				{Name: "Jake Tremain", Position: "QB", Stars: 4, State: "CA", Committed: true},
				{Name: "Marcus Veal", Position: "CB", Stars: 3, State: "TX", Committed: true},
			},
			ClassRanking: intp(18),
		}
	case constants.ScreenCoachInfo:
		data.CoachInfo = &CoachInfoData{
			Name:          "Jedd Fisch",
			Role:          "HC",
			ContractYears: intp(4),
			Approval:      intp(71),
		}
	case constants.ScreenTrophyCase:
		data.TrophyCase = &TrophyCaseData{
			Trophies: []TrophyData{
				{Name: "Apple Cup", Year: intp(2025)},
				{Name: "Big Ten Championship", Year: intp(2024)},
			},
		}
	case constants.ScreenTop25Rankings:
		data.Top25 = &RankingsData{
			Poll: "AP Top 25",
			Teams: []RankedTeamData{
				{Rank: 1, TeamName: "Georgia Bulldogs", Record: "10-0"},
				{Rank: 2, TeamName: "Ohio State Buckeyes", Record: "9-1"},
				{Rank: 3, TeamName: "Texas Longhorns", Record: "9-1"},
			},
		}
	case constants.ScreenPlayerStats:
		data.PlayerStats = &PlayerStatsData{
			Players: []PlayerStatLine{
				{Name: "Demond Williams Jr.", Position: "QB", PassingYards: intp(2488), Touchdowns: intp(21)},
				{Name: "Jonah Coleman", Position: "HB", RushingYards: intp(1104), Touchdowns: intp(12)},
			},
		}
	case constants.ScreenUnknown:
		// empty by contract
	}
	return data
}
