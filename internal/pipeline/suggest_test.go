package pipeline_test

import (
	"testing"

	"github.com/Hustada/dynastylab/constants"
	"github.com/Hustada/dynastylab/internal/pipeline"
)

func TestSuggestedActionsNeverNil(t *testing.T) {
	for _, st := range constants.AllScreenTypes() {
		if pipeline.SuggestedActions(st) == nil {
			t.Errorf("SuggestedActions(%s) = nil", st)
		}
		if pipeline.RelatedScreens(st) == nil {
			t.Errorf("RelatedScreens(%s) = nil", st)
		}
	}
	if got := pipeline.SuggestedActions(constants.ScreenUnknown); len(got) != 0 {
		t.Errorf("SuggestedActions(unknown) = %v, want empty", got)
	}
}

func TestSuggestedActionsReturnsCopies(t *testing.T) {
	first := pipeline.SuggestedActions(constants.ScreenGameResult)
	if len(first) == 0 {
		t.Fatal("expected actions for game-result")
	}
	first[0] = "mutated"
	second := pipeline.SuggestedActions(constants.ScreenGameResult)
	if second[0] == "mutated" {
		t.Error("SuggestedActions exposes internal slice")
	}
}
