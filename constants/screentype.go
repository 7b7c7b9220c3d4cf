package constants

// ScreenType identifies which kind of in-game screen a screenshot depicts.
type ScreenType string

// Stable values (stored in event payloads and review tokens; do not rename).
const (
	ScreenSeasonStandings ScreenType = "season-standings"
	ScreenTeamStats       ScreenType = "team-stats"
	ScreenGameResult      ScreenType = "game-result"
	ScreenSchedule        ScreenType = "schedule"
	ScreenRosterOverview  ScreenType = "roster-overview"
	ScreenDepthChart      ScreenType = "depth-chart"
	ScreenRecruitingBoard ScreenType = "recruiting-board"
	ScreenCoachInfo       ScreenType = "coach-info"
	ScreenTrophyCase      ScreenType = "trophy-case"
	ScreenTop25Rankings   ScreenType = "top25-rankings"
	ScreenPlayerStats     ScreenType = "player-stats"
	ScreenUnknown         ScreenType = "unknown"
)

var allScreenTypes = []ScreenType{
	ScreenSeasonStandings,
	ScreenTeamStats,
	ScreenGameResult,
	ScreenSchedule,
	ScreenRosterOverview,
	ScreenDepthChart,
	ScreenRecruitingBoard,
	ScreenCoachInfo,
	ScreenTrophyCase,
	ScreenTop25Rankings,
	ScreenPlayerStats,
	ScreenUnknown,
}

// AllScreenTypes returns every screen type including ScreenUnknown.
func AllScreenTypes() []ScreenType {
	out := make([]ScreenType, len(allScreenTypes))
	copy(out, allScreenTypes)
	return out
}

// Valid reports whether t is one of the known screen types.
func (t ScreenType) Valid() bool {
	for _, st := range allScreenTypes {
		if t == st {
			return true
		}
	}
	return false
}

// ParseScreenType maps an arbitrary string onto the closed enumeration.
// Anything unrecognized collapses to ScreenUnknown.
func ParseScreenType(s string) ScreenType {
	t := ScreenType(s)
	if t.Valid() {
		return t
	}
	return ScreenUnknown
}
