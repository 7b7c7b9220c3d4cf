package llm

import "testing"

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     string
		strategy string
	}{
		{
			name:     "clean object",
			raw:      `{"screenType":"game-result","confidence":0.95}`,
			want:     `{"screenType":"game-result","confidence":0.95}`,
			strategy: "strict",
		},
		{
			name:     "clean array",
			raw:      `[{"name":"Jonah Coleman"}]`,
			want:     `[{"name":"Jonah Coleman"}]`,
			strategy: "strict",
		},
		{
			name:     "fenced with language tag",
			raw:      "```json\n{\"week\": 9}\n```",
			want:     `{"week": 9}`,
			strategy: "strip_fences",
		},
		{
			name:     "fenced without language tag",
			raw:      "```\n{\"week\": 9}\n```",
			want:     `{"week": 9}`,
			strategy: "strip_fences",
		},
		{
			name:     "object wrapped in prose",
			raw:      `Sure! Here is the data you asked for: {"week": 9} Hope that helps.`,
			want:     `{"week": 9}`,
			strategy: "extract_object",
		},
		{
			name:     "array wrapped in prose",
			raw:      `The roster is: [{"name":"Denzel Boston"}] as requested.`,
			want:     `[{"name":"Denzel Boston"}]`,
			strategy: "extract_object",
		},
		{
			name:     "multi-element array wrapped in prose",
			raw:      `Here is the roster: [{"name":"Jonah Coleman"},{"name":"Denzel Boston"}] as requested.`,
			want:     `[{"name":"Jonah Coleman"},{"name":"Denzel Boston"}]`,
			strategy: "extract_object",
		},
		{
			name:     "object containing an array wrapped in prose",
			raw:      `Data: {"teams":[{"rank":1},{"rank":2}]} done.`,
			want:     `{"teams":[{"rank":1},{"rank":2}]}`,
			strategy: "extract_object",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, strategy, err := DecodeJSON(tt.raw)
			if err != nil {
				t.Fatalf("DecodeJSON() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("DecodeJSON() = %q, want %q", got, tt.want)
			}
			if strategy != tt.strategy {
				t.Errorf("strategy = %q, want %q", strategy, tt.strategy)
			}
		})
	}
}

func TestDecodeJSONFailure(t *testing.T) {
	for _, raw := range []string{"", "   ", "no json here at all", "{broken"} {
		if _, _, err := DecodeJSON(raw); err == nil {
			t.Errorf("DecodeJSON(%q) expected error, got nil", raw)
		}
	}
}
