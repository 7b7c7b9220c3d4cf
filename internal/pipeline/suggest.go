package pipeline

import "github.com/Hustada/dynastylab/constants"

// Static configuration surface for UI hinting. Pure lookups, no state;
// unlisted types fall back to an empty slice.

var suggestedActions = map[constants.ScreenType][]string{
	constants.ScreenSeasonStandings: {
		"Update the current season record",
		"Check if a top-10 ranking story should run",
	},
	constants.ScreenTeamStats: {
		"Compare against conference averages",
	},
	constants.ScreenGameResult: {
		"Add the game to the season log",
		"Capture the schedule screen to fill in remaining games",
	},
	constants.ScreenSchedule: {
		"Import remaining games for the season",
	},
	constants.ScreenRosterOverview: {
		"Import players into the roster",
		"Capture the depth chart for starter ordering",
	},
	constants.ScreenDepthChart: {
		"Update starter ordering",
	},
	constants.ScreenRecruitingBoard: {
		"Import new commits",
		"Check class ranking movement",
	},
	constants.ScreenCoachInfo: {
		"Update the coaching staff record",
	},
	constants.ScreenTrophyCase: {
		"Record new trophies in the dynasty history",
	},
	constants.ScreenTop25Rankings: {
		"Check where your team and upcoming opponents rank",
	},
	constants.ScreenPlayerStats: {
		"Review stat leaders for award watch lists",
	},
}

var relatedScreens = map[constants.ScreenType][]constants.ScreenType{
	constants.ScreenSeasonStandings: {constants.ScreenSchedule, constants.ScreenTop25Rankings},
	constants.ScreenTeamStats:       {constants.ScreenPlayerStats, constants.ScreenSeasonStandings},
	constants.ScreenGameResult:      {constants.ScreenSchedule, constants.ScreenSeasonStandings},
	constants.ScreenSchedule:        {constants.ScreenGameResult, constants.ScreenSeasonStandings},
	constants.ScreenRosterOverview:  {constants.ScreenDepthChart, constants.ScreenPlayerStats},
	constants.ScreenDepthChart:      {constants.ScreenRosterOverview},
	constants.ScreenRecruitingBoard: {constants.ScreenRosterOverview},
	constants.ScreenCoachInfo:       {constants.ScreenSeasonStandings},
	constants.ScreenTrophyCase:      {constants.ScreenSeasonStandings},
	constants.ScreenTop25Rankings:   {constants.ScreenSeasonStandings},
	constants.ScreenPlayerStats:     {constants.ScreenRosterOverview, constants.ScreenTeamStats},
}

// SuggestedActions returns UI hints for a screen type; never nil.
func SuggestedActions(st constants.ScreenType) []string {
	actions, ok := suggestedActions[st]
	if !ok {
		return []string{}
	}
	out := make([]string, len(actions))
	copy(out, actions)
	return out
}

// RelatedScreens returns screens worth capturing next; never nil.
func RelatedScreens(st constants.ScreenType) []constants.ScreenType {
	related, ok := relatedScreens[st]
	if !ok {
		return []constants.ScreenType{}
	}
	out := make([]constants.ScreenType, len(related))
	copy(out, related)
	return out
}
