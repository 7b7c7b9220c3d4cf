package vision

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/Hustada/dynastylab/constants"
	"github.com/Hustada/dynastylab/internal/common"
)

// One JSON Schema per screen type, used both as the extraction contract sent
// to the model and as the local gate before unmarshalling into the typed
// variant. ScreenUnknown has no schema (extraction short-circuits).

func recordSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"wins", "losses"},
		"properties": map[string]any{
			"wins":   map[string]any{"type": "integer", "minimum": 0},
			"losses": map[string]any{"type": "integer", "minimum": 0},
		},
	}
}

func playerSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"name"},
		"properties": map[string]any{
			"name":         map[string]any{"type": "string", "minLength": 1},
			"position":     map[string]any{"type": "string"},
			"class":        map[string]any{"type": "string"},
			"jerseyNumber": map[string]any{"type": "integer"},
			"overall":      map[string]any{"type": "integer", "minimum": 0, "maximum": 99},
			"depthOrder":   map[string]any{"type": "integer", "minimum": 1},
		},
	}
}

var extractionSchemas = map[constants.ScreenType]map[string]any{
	constants.ScreenSeasonStandings: {
		"type":     "object",
		"required": []string{"teamName", "overallRecord", "conferenceRecord"},
		"properties": map[string]any{
			"teamName":         map[string]any{"type": "string", "minLength": 1},
			"conference":       map[string]any{"type": "string"},
			"overallRecord":    recordSchema(),
			"conferenceRecord": recordSchema(),
			"ranking":          map[string]any{"type": "integer", "minimum": 1},
		},
	},
	constants.ScreenTeamStats: {
		"type":     "object",
		"required": []string{"teamName"},
		"properties": map[string]any{
			"teamName":            map[string]any{"type": "string", "minLength": 1},
			"pointsPerGame":       map[string]any{"type": "number"},
			"pointsAllowed":       map[string]any{"type": "number"},
			"totalYardsPerGame":   map[string]any{"type": "number"},
			"passingYardsPerGame": map[string]any{"type": "number"},
			"rushingYardsPerGame": map[string]any{"type": "number"},
		},
	},
	constants.ScreenGameResult: {
		"type":     "object",
		"required": []string{"opponent", "teamScore", "opponentScore"},
		"properties": map[string]any{
			"opponent":      map[string]any{"type": "string", "minLength": 1},
			"week":          map[string]any{"type": "integer", "minimum": 0},
			"teamScore":     map[string]any{"type": "integer", "minimum": 0},
			"opponentScore": map[string]any{"type": "integer", "minimum": 0},
			"location":      map[string]any{"type": "string"},
			"upsetVictory":  map[string]any{"type": "boolean"},
		},
	},
	constants.ScreenSchedule: {
		"type": "array",
		"items": map[string]any{
			"type":     "object",
			"required": []string{"opponent"},
			"properties": map[string]any{
				"opponent":      map[string]any{"type": "string", "minLength": 1},
				"week":          map[string]any{"type": "integer", "minimum": 0},
				"location":      map[string]any{"type": "string"},
				"played":        map[string]any{"type": "boolean"},
				"teamScore":     map[string]any{"type": "integer", "minimum": 0},
				"opponentScore": map[string]any{"type": "integer", "minimum": 0},
			},
		},
	},
	constants.ScreenRosterOverview: {
		"type":  "array",
		"items": playerSchema(),
	},
	constants.ScreenDepthChart: {
		"type":  "array",
		"items": playerSchema(),
	},
	constants.ScreenRecruitingBoard: {
		"type":     "object",
		"required": []string{"commits"},
		"properties": map[string]any{
			"commits": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"name", "stars"},
					"properties": map[string]any{
						"name":      map[string]any{"type": "string", "minLength": 1},
						"position":  map[string]any{"type": "string"},
						"stars":     map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
						"state":     map[string]any{"type": "string"},
						"committed": map[string]any{"type": "boolean"},
					},
				},
			},
			"classRanking":   map[string]any{"type": "integer", "minimum": 1},
			"fiveStarCommit": map[string]any{"type": "boolean"},
		},
	},
	constants.ScreenCoachInfo: {
		"type":     "object",
		"required": []string{"name"},
		"properties": map[string]any{
			"coachId":       map[string]any{"type": "string"},
			"name":          map[string]any{"type": "string", "minLength": 1},
			"role":          map[string]any{"type": "string"},
			"hotSeat":       map[string]any{"type": "boolean"},
			"contractYears": map[string]any{"type": "integer", "minimum": 0},
			"approval":      map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
		},
	},
	constants.ScreenTrophyCase: {
		"type":     "object",
		"required": []string{"trophies"},
		"properties": map[string]any{
			"trophies": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"name"},
					"properties": map[string]any{
						"name": map[string]any{"type": "string", "minLength": 1},
						"year": map[string]any{"type": "integer"},
					},
				},
			},
		},
	},
	constants.ScreenTop25Rankings: {
		"type":     "object",
		"required": []string{"teams"},
		"properties": map[string]any{
			"poll": map[string]any{"type": "string"},
			"teams": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"rank", "teamName"},
					"properties": map[string]any{
						"rank":     map[string]any{"type": "integer", "minimum": 1, "maximum": 25},
						"teamName": map[string]any{"type": "string", "minLength": 1},
						"record":   map[string]any{"type": "string"},
					},
				},
			},
		},
	},
	constants.ScreenPlayerStats: {
		"type":     "object",
		"required": []string{"players"},
		"properties": map[string]any{
			"players": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"name"},
					"properties": map[string]any{
						"name":           map[string]any{"type": "string", "minLength": 1},
						"position":       map[string]any{"type": "string"},
						"passingYards":   map[string]any{"type": "integer"},
						"rushingYards":   map[string]any{"type": "integer"},
						"receivingYards": map[string]any{"type": "integer"},
						"touchdowns":     map[string]any{"type": "integer"},
						"tackles":        map[string]any{"type": "integer"},
					},
				},
			},
		},
	},
}

// SchemaFor returns the extraction schema for st, or nil for ScreenUnknown.
func SchemaFor(st constants.ScreenType) map[string]any {
	return extractionSchemas[st]
}

// ValidateJSONAgainstSchema validates data against schemaMap.
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return common.NewAppError("SCHEMA_VALIDATION", fmt.Sprintf("json does not match schema: %v", err), common.ErrValidation)
	}
	return nil
}
