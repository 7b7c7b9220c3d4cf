package vision_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Hustada/dynastylab/constants"
	"github.com/Hustada/dynastylab/internal/llm"
	"github.com/Hustada/dynastylab/internal/testsupport"
	"github.com/Hustada/dynastylab/internal/vision"
)

var testImage = vision.ImageFromDataURL("data:image/png;base64,aGVsbG8=")

// asVisionClient keeps a nil *ScriptedVisionClient a nil interface value.
func asVisionClient(c *testsupport.ScriptedVisionClient) llm.VisionClient {
	if c == nil {
		return nil
	}
	return c
}

func TestClassifyOffline(t *testing.T) {
	// No client at all and a client without a credential must behave
	// identically: the same deterministic result, no model call.
	clients := map[string]*testsupport.ScriptedVisionClient{
		"nil client":   nil,
		"unconfigured": {Offline: true},
	}
	for name, client := range clients {
		t.Run(name, func(t *testing.T) {
			c := vision.NewClassifier(asVisionClient(client), nil)

			first, err := c.Classify(context.Background(), testImage)
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			second, err := c.Classify(context.Background(), testImage)
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if first != second {
				t.Errorf("offline classification not deterministic: %+v vs %+v", first, second)
			}
			if first != vision.OfflineClassification() {
				t.Errorf("Classify() = %+v, want offline result", first)
			}
			if client != nil && client.Calls != 0 {
				t.Errorf("model called %d times in offline mode", client.Calls)
			}
		})
	}
}

func TestClassifyCallFailureFallsBack(t *testing.T) {
	client := &testsupport.ScriptedVisionClient{Err: errors.New("boom")}
	c := vision.NewClassifier(client, nil)

	got, err := c.Classify(context.Background(), testImage)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if got != vision.FallbackClassification() {
		t.Errorf("Classify() = %+v, want fallback", got)
	}
}

func TestClassifyUnparseableFallsBack(t *testing.T) {
	client := &testsupport.ScriptedVisionClient{Responses: []string{"I could not tell what screen this is."}}
	c := vision.NewClassifier(client, nil)

	got, err := c.Classify(context.Background(), testImage)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if got.ScreenType != constants.ScreenUnknown {
		t.Errorf("ScreenType = %q, want %q", got.ScreenType, constants.ScreenUnknown)
	}
	if got.Confidence != constants.FallbackConfidence {
		t.Errorf("Confidence = %v, want %v", got.Confidence, constants.FallbackConfidence)
	}
}

func TestClassifyParsesModelOutput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want vision.ClassificationResult
	}{
		{
			name: "clean response",
			raw:  `{"screenType":"roster-overview","confidence":0.92,"detectedTeam":"Washington"}`,
			want: vision.ClassificationResult{ScreenType: constants.ScreenRosterOverview, Confidence: 0.92, DetectedTeam: "Washington"},
		},
		{
			name: "fenced response",
			raw:  "```json\n{\"screenType\":\"game-result\",\"confidence\":0.88}\n```",
			want: vision.ClassificationResult{ScreenType: constants.ScreenGameResult, Confidence: 0.88},
		},
		{
			name: "unrecognized type collapses to unknown",
			raw:  `{"screenType":"loading-screen","confidence":0.75}`,
			want: vision.ClassificationResult{ScreenType: constants.ScreenUnknown, Confidence: 0.75},
		},
		{
			name: "confidence clamped into range",
			raw:  `{"screenType":"schedule","confidence":1.7}`,
			want: vision.ClassificationResult{ScreenType: constants.ScreenSchedule, Confidence: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &testsupport.ScriptedVisionClient{Responses: []string{tt.raw}}
			c := vision.NewClassifier(client, nil)

			got, err := c.Classify(context.Background(), testImage)
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Classify() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
