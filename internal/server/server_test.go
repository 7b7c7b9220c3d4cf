package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Hustada/dynastylab/internal/export"
	"github.com/Hustada/dynastylab/internal/pipeline"
	"github.com/Hustada/dynastylab/internal/server"
	"github.com/Hustada/dynastylab/internal/testsupport"
	"github.com/Hustada/dynastylab/internal/vision"
)

const testDataURL = "data:image/png;base64,aGVsbG8="

func newTestServer(t *testing.T) (http.Handler, pipeline.Stores) {
	t.Helper()
	stores := testsupport.NewStores(t)
	orch := pipeline.NewOrchestrator(
		vision.NewClassifier(nil, nil), // offline mode
		vision.NewExtractor(nil, nil),
		pipeline.NewRouter(stores, nil),
		nil,
	)
	srv := server.New(orch, stores, export.NewService(stores, nil), nil)
	return srv.Handler(), stores
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeThenCommit(t *testing.T) {
	h, stores := newTestServer(t)

	rec := postJSON(t, h, "/v1/analyze", map[string]any{"image": testDataURL})
	if rec.Code != http.StatusOK {
		t.Fatalf("analyze status = %d, body = %s", rec.Code, rec.Body)
	}
	var analyzed struct {
		Token  string `json:"token"`
		Result struct {
			ScreenType string `json:"screenType"`
		} `json:"result"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &analyzed); err != nil {
		t.Fatalf("decode analyze response: %v", err)
	}
	if analyzed.Token == "" {
		t.Fatal("analyze returned no review token")
	}
	if analyzed.Result.ScreenType != "season-standings" {
		t.Errorf("screenType = %q", analyzed.Result.ScreenType)
	}

	// Nothing is routed until commit.
	seasons, err := stores.Seasons.List(context.Background())
	if err != nil {
		t.Fatalf("Seasons.List() error = %v", err)
	}
	if len(seasons) != 0 {
		t.Fatalf("analyze wrote %d season(s)", len(seasons))
	}

	rec = postJSON(t, h, "/v1/commit", map[string]any{"token": analyzed.Token})
	if rec.Code != http.StatusOK {
		t.Fatalf("commit status = %d, body = %s", rec.Code, rec.Body)
	}

	seasons, err = stores.Seasons.List(context.Background())
	if err != nil {
		t.Fatalf("Seasons.List() error = %v", err)
	}
	if len(seasons) != 1 {
		t.Fatalf("got %d seasons after commit, want 1", len(seasons))
	}

	// The token is single-use.
	rec = postJSON(t, h, "/v1/commit", map[string]any{"token": analyzed.Token})
	if rec.Code != http.StatusNotFound {
		t.Errorf("replayed token status = %d, want 404", rec.Code)
	}
}

func TestAnalyzeAutoCommit(t *testing.T) {
	h, stores := newTestServer(t)

	rec := postJSON(t, h, "/v1/analyze", map[string]any{
		"image":       testDataURL,
		"skipRouting": false,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if strings.Contains(rec.Body.String(), `"token"`) {
		t.Error("auto-commit response carries a review token")
	}

	seasons, err := stores.Seasons.List(context.Background())
	if err != nil {
		t.Fatalf("Seasons.List() error = %v", err)
	}
	if len(seasons) != 1 {
		t.Errorf("got %d seasons, want 1", len(seasons))
	}
}

func TestAnalyzeRequiresImage(t *testing.T) {
	h, _ := newTestServer(t)
	rec := postJSON(t, h, "/v1/analyze", map[string]any{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestDiscard(t *testing.T) {
	h, stores := newTestServer(t)

	rec := postJSON(t, h, "/v1/analyze", map[string]any{"image": testDataURL})
	var analyzed struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &analyzed); err != nil {
		t.Fatalf("decode analyze response: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/v1/review/"+analyzed.Token, nil)
	del := httptest.NewRecorder()
	h.ServeHTTP(del, req)
	if del.Code != http.StatusNoContent {
		t.Fatalf("discard status = %d", del.Code)
	}

	// Discarded data can no longer be committed.
	rec = postJSON(t, h, "/v1/commit", map[string]any{"token": analyzed.Token})
	if rec.Code != http.StatusNotFound {
		t.Errorf("commit after discard status = %d, want 404", rec.Code)
	}

	seasons, err := stores.Seasons.List(context.Background())
	if err != nil {
		t.Fatalf("Seasons.List() error = %v", err)
	}
	if len(seasons) != 0 {
		t.Errorf("discard routed %d season(s)", len(seasons))
	}
}

func TestStoresEndpoint(t *testing.T) {
	h, _ := newTestServer(t)

	rec := postJSON(t, h, "/v1/analyze", map[string]any{
		"image":       testDataURL,
		"skipRouting": false,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("analyze status = %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/stores/seasons", nil)
	get := httptest.NewRecorder()
	h.ServeHTTP(get, req)
	if get.Code != http.StatusOK {
		t.Fatalf("stores status = %d", get.Code)
	}
	var resp struct {
		Kind  string `json:"kind"`
		Count int    `json:"count"`
	}
	if err := json.Unmarshal(get.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode stores response: %v", err)
	}
	if resp.Kind != "seasons" || resp.Count != 1 {
		t.Errorf("resp = %+v", resp)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/stores/bogus", nil)
	bad := httptest.NewRecorder()
	h.ServeHTTP(bad, req)
	if bad.Code != http.StatusNotFound {
		t.Errorf("bogus kind status = %d, want 404", bad.Code)
	}
}

func TestExportEndpoint(t *testing.T) {
	h, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/export", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("export status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheet") {
		t.Errorf("Content-Type = %q", ct)
	}
	if rec.Body.Len() == 0 {
		t.Error("empty workbook body")
	}
}

func TestHealth(t *testing.T) {
	h, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("health status = %d", rec.Code)
	}
}
