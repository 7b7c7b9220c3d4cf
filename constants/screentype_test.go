package constants

import "testing"

func TestParseScreenType(t *testing.T) {
	for _, st := range AllScreenTypes() {
		if got := ParseScreenType(string(st)); got != st {
			t.Errorf("ParseScreenType(%q) = %q", st, got)
		}
	}
	for _, s := range []string{"", "loading-screen", "ROSTER-OVERVIEW", "standings"} {
		if got := ParseScreenType(s); got != ScreenUnknown {
			t.Errorf("ParseScreenType(%q) = %q, want unknown", s, got)
		}
	}
}

func TestConfidenceLabel(t *testing.T) {
	tests := []struct {
		confidence float64
		want       string
	}{
		{0.95, "High"},
		{0.9, "High"},
		{0.89, "Medium"},
		{0.7, "Medium"},
		{0.69, "Low"},
		{0.0, "Low"},
	}
	for _, tt := range tests {
		if got := ConfidenceLabel(tt.confidence); got != tt.want {
			t.Errorf("ConfidenceLabel(%v) = %q, want %q", tt.confidence, got, tt.want)
		}
	}
}
