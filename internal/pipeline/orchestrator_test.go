package pipeline_test

import (
	"context"
	"testing"

	"github.com/Hustada/dynastylab/constants"
	"github.com/Hustada/dynastylab/internal/llm"
	"github.com/Hustada/dynastylab/internal/pipeline"
	"github.com/Hustada/dynastylab/internal/testsupport"
	"github.com/Hustada/dynastylab/internal/vision"
)

var testImage = vision.ImageFromDataURL("data:image/png;base64,aGVsbG8=")

func newOrchestrator(t *testing.T, client llm.VisionClient) (*pipeline.Orchestrator, pipeline.Stores) {
	t.Helper()
	stores := testsupport.NewStores(t)
	orch := pipeline.NewOrchestrator(
		vision.NewClassifier(client, nil),
		vision.NewExtractor(client, nil),
		pipeline.NewRouter(stores, nil),
		nil,
	)
	return orch, stores
}

func TestProcessScreenshotSkipRoutingTouchesNoStore(t *testing.T) {
	orch, stores := newOrchestrator(t, nil)
	ctx := context.Background()

	result, err := orch.ProcessScreenshot(ctx, testImage, true)
	if err != nil {
		t.Fatalf("ProcessScreenshot() error = %v", err)
	}
	if result == nil || result.ScreenType != constants.ScreenSeasonStandings {
		t.Fatalf("result = %+v", result)
	}

	seasons, err := stores.Seasons.List(ctx)
	if err != nil {
		t.Fatalf("Seasons.List() error = %v", err)
	}
	teams, err := stores.Teams.List(ctx)
	if err != nil {
		t.Fatalf("Teams.List() error = %v", err)
	}
	if len(seasons) != 0 || len(teams) != 0 {
		t.Errorf("analysis phase wrote to stores: %d seasons, %d teams", len(seasons), len(teams))
	}

	// Committing the held result afterwards is what routes it.
	if err := orch.RouteExtractedData(ctx, result.Data); err != nil {
		t.Fatalf("RouteExtractedData() error = %v", err)
	}
	seasons, err = stores.Seasons.List(ctx)
	if err != nil {
		t.Fatalf("Seasons.List() error = %v", err)
	}
	if len(seasons) != 1 {
		t.Errorf("got %d seasons after commit, want 1", len(seasons))
	}
}

func TestProcessScreenshotEventOrder(t *testing.T) {
	client := &testsupport.ScriptedVisionClient{Responses: []string{
		`{"screenType":"game-result","confidence":0.95}`,
		`{"opponent":"Rutgers","teamScore":45,"opponentScore":10}`,
	}}
	orch, _ := newOrchestrator(t, client)

	var types []pipeline.EventType
	unsubscribe := orch.Subscribe(func(ev pipeline.Event) {
		types = append(types, ev.Type)
	})
	defer unsubscribe()

	if _, err := orch.ProcessScreenshot(context.Background(), testImage, false); err != nil {
		t.Fatalf("ProcessScreenshot() error = %v", err)
	}

	want := []pipeline.EventType{
		pipeline.EventScreenIdentified,
		pipeline.EventDataExtracted,
		pipeline.EventDataRouted,
		pipeline.EventContentTriggered, // 35-point margin is a blowout
	}
	if len(types) != len(want) {
		t.Fatalf("got events %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event[%d] = %q, want %q", i, types[i], want[i])
		}
	}
}

func TestSubscribeUnsubscribe(t *testing.T) {
	orch, _ := newOrchestrator(t, nil)

	var got int
	unsubscribe := orch.Subscribe(func(pipeline.Event) { got++ })
	unsubscribe()

	if _, err := orch.ProcessScreenshot(context.Background(), testImage, true); err != nil {
		t.Fatalf("ProcessScreenshot() error = %v", err)
	}
	if got != 0 {
		t.Errorf("unsubscribed callback received %d event(s)", got)
	}
}

func TestProcessScreenshotRosterEndToEnd(t *testing.T) {
	client := &testsupport.ScriptedVisionClient{Responses: []string{
		`{"screenType":"roster-overview","confidence":0.92,"detectedTeam":"Washington"}`,
		`[
			{"name":"Demond Williams Jr.","position":"QB","class":"SO","jerseyNumber":2,"overall":88},
			{"name":"Jonah Coleman","position":"HB","class":"SR","jerseyNumber":1,"overall":90},
			{"name":"Denzel Boston","position":"WR","class":"JR","jerseyNumber":12,"overall":86},
			{"name":"Carver Willis","position":"LT","class":"SR","jerseyNumber":72,"overall":82}
		]`,
	}}
	orch, stores := newOrchestrator(t, client)

	var triggered []pipeline.Event
	unsubscribe := orch.Subscribe(func(ev pipeline.Event) {
		if ev.Type == pipeline.EventContentTriggered {
			triggered = append(triggered, ev)
		}
	})
	defer unsubscribe()

	result, err := orch.ProcessScreenshot(context.Background(), testImage, false)
	if err != nil {
		t.Fatalf("ProcessScreenshot() error = %v", err)
	}
	if result.ScreenType != constants.ScreenRosterOverview {
		t.Errorf("ScreenType = %q, want roster-overview", result.ScreenType)
	}
	if result.Confidence != 0.92 {
		t.Errorf("Confidence = %v, want 0.92", result.Confidence)
	}
	if result.DetectedTeam != "Washington" {
		t.Errorf("DetectedTeam = %q, want Washington", result.DetectedTeam)
	}

	players, err := stores.Players.List(context.Background())
	if err != nil {
		t.Fatalf("Players.List() error = %v", err)
	}
	if len(players) != 4 {
		t.Fatalf("got %d players, want 4", len(players))
	}
	byName := map[string]bool{}
	for _, p := range players {
		byName[p.Name] = true
	}
	for _, name := range []string{"Demond Williams Jr.", "Jonah Coleman", "Denzel Boston", "Carver Willis"} {
		if !byName[name] {
			t.Errorf("player %q not routed", name)
		}
	}

	// A roster has no content triggers.
	if len(triggered) != 0 {
		t.Errorf("got %d content-triggered event(s), want 0: %v", len(triggered), triggered)
	}
}

func TestBatchRunnerSequential(t *testing.T) {
	orch, stores := newOrchestrator(t, nil)
	runner := pipeline.NewBatchRunner(orch, nil)

	// Offline mode never opens the files, so the paths only need to be
	// distinct.
	paths := []string{"a.png", "b.png", "c.png"}

	items, stats := runner.Run(context.Background(), paths, true)
	if stats.Total != 3 || stats.Committed != 3 || stats.Failed != 0 {
		t.Errorf("stats = %+v", stats)
	}
	for i, item := range items {
		if item.Path != paths[i] {
			t.Errorf("item[%d].Path = %q, want %q", i, item.Path, paths[i])
		}
		if item.Status != constants.ItemStatusCommitted {
			t.Errorf("item[%d].Status = %q", i, item.Status)
		}
	}

	// Offline classification is always standings; three commits merge into
	// the one current season.
	seasons, err := stores.Seasons.List(context.Background())
	if err != nil {
		t.Fatalf("Seasons.List() error = %v", err)
	}
	if len(seasons) != 1 {
		t.Errorf("got %d seasons, want 1", len(seasons))
	}
}

func TestBatchRunnerReviewMode(t *testing.T) {
	orch, stores := newOrchestrator(t, nil)
	runner := pipeline.NewBatchRunner(orch, nil)

	items, stats := runner.Run(context.Background(), []string{"a.png"}, false)
	if stats.AwaitingReview != 1 || stats.Committed != 0 {
		t.Errorf("stats = %+v", stats)
	}
	if items[0].Status != constants.ItemStatusAwaitingReview {
		t.Errorf("status = %q", items[0].Status)
	}

	seasons, err := stores.Seasons.List(context.Background())
	if err != nil {
		t.Fatalf("Seasons.List() error = %v", err)
	}
	if len(seasons) != 0 {
		t.Errorf("review mode wrote %d season(s)", len(seasons))
	}
}
