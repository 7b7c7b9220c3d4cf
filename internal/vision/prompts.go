package vision

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Hustada/dynastylab/constants"
)

const classificationInstruction = `You are looking at a screenshot from a college football dynasty video game.
Classify which screen it shows. The possible screen types are:
season-standings, team-stats, game-result, schedule, roster-overview,
depth-chart, recruiting-board, coach-info, trophy-case, top25-rankings,
player-stats. If none fit, use "unknown".

Also identify the team the screen focuses on, when the screen is
team-specific. League-wide screens like top25-rankings have no team.

Return ONLY a JSON object shaped exactly like:
{"screenType": "<one of the types above>", "confidence": <0..1>, "detectedTeam": "<team name or null>"}`

// One extraction instruction per screen type. ScreenUnknown is deliberately
// absent: extraction never calls the model for it.
var extractionInstructions = map[constants.ScreenType]string{
	constants.ScreenSeasonStandings: `Extract the standings row for the focused team:
team name, conference, overall record, conference record, and national ranking if shown.`,
	constants.ScreenTeamStats: `Extract the focused team's season statistics:
points per game, points allowed, total/passing/rushing yards per game where visible.`,
	constants.ScreenGameResult: `Extract the final score of the game shown: opponent name,
both scores from the focused team's perspective, week if visible, home/away/neutral,
and whether the result was an upset victory.`,
	constants.ScreenSchedule: `Extract every row of the schedule as an array: opponent, week,
location, whether the game was already played, and the scores for played games.`,
	constants.ScreenRosterOverview: `Extract every visible roster row as an array of players:
name, position, class year, jersey number, and overall rating where shown.`,
	constants.ScreenDepthChart: `Extract every visible depth chart entry as an array of players:
name, position, depth order (1 = starter), class year, and overall rating where shown.`,
	constants.ScreenRecruitingBoard: `Extract the recruiting board: every commit with name,
position, star rating, home state; the class ranking if visible; and set fiveStarCommit
to true if any five-star recruit has committed.`,
	constants.ScreenCoachInfo: `Extract the coach profile shown: name, role (HC/OC/DC),
contract years remaining, approval rating, and whether the coach is on the hot seat.`,
	constants.ScreenTrophyCase: `Extract every trophy or award shown with its year if visible.`,
	constants.ScreenTop25Rankings: `Extract the poll name and every ranked team as an array:
rank, team name, and record string where shown.`,
	constants.ScreenPlayerStats: `Extract every visible player stat line as an array: name,
position, and whichever of passing/rushing/receiving yards, touchdowns, tackles are shown.`,
}

// InstructionFor builds the full extraction prompt for one screen type,
// scoping it to detectedTeam when known. Screens like game-result show two
// teams; without the scope the model guesses which side to extract.
func InstructionFor(st constants.ScreenType, detectedTeam string) string {
	base, ok := extractionInstructions[st]
	if !ok {
		return ""
	}
	var b strings.Builder
	b.WriteString("You are looking at a college football dynasty game screenshot showing the ")
	b.WriteString(string(st))
	b.WriteString(" screen.\n")
	b.WriteString(base)
	if detectedTeam != "" {
		fmt.Fprintf(&b, "\nThe screenshot may include several teams. Extract data only for %q.", detectedTeam)
	}
	b.WriteString("\n\nReturn ONLY JSON matching this schema:\n")
	b.WriteString(mustJSON(SchemaFor(st)))
	return b.String()
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
