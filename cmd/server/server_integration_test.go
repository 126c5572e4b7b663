package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"shatteredmirror/internal/config"
	"shatteredmirror/internal/serverapp"
)

func TestServer_HealthAndReadinessExposeRequestID(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/healthz", "/readyz"} {
		res := app.request(http.MethodGet, path, nil, "")
		if res.Code != http.StatusOK {
			t.Fatalf("%s expected 200, got %d body=%s", path, res.Code, res.Body.String())
		}
		if rid := strings.TrimSpace(res.Header().Get("X-Request-Id")); rid == "" {
			t.Fatalf("%s missing X-Request-Id header", path)
		}
	}
}

func TestServer_CommandsRequireActiveRun(t *testing.T) {
	app := newTestApp(t)

	stateRes := app.request(http.MethodGet, "/api/state", nil, "")
	if stateRes.Code != http.StatusOK {
		t.Fatalf("state expected 200 without a run, got %d", stateRes.Code)
	}
	body := decodeBodyMap(t, stateRes)
	if body["state"] != nil {
		t.Fatalf("expected null state without a run, got %v", body["state"])
	}

	for _, path := range []string{"/api/map", "/api/deck"} {
		res := app.request(http.MethodGet, path, nil, "")
		if res.Code != http.StatusConflict {
			t.Fatalf("%s expected 409 without a run, got %d", path, res.Code)
		}
	}
	endRes := app.json(http.MethodPost, "/api/combat/end-turn", map[string]any{})
	if endRes.Code != http.StatusConflict {
		t.Fatalf("end-turn expected 409 without a run, got %d", endRes.Code)
	}
}

func TestServer_RunLifecycleAndTraversal(t *testing.T) {
	app := newTestApp(t)

	newRes := app.json(http.MethodPost, "/api/run/new", map[string]any{"seed": 1234, "ascension": 0})
	if newRes.Code != http.StatusOK {
		t.Fatalf("run/new expected 200, got %d body=%s", newRes.Code, newRes.Body.String())
	}
	result := decodeCommandResult(t, newRes)
	if !result.OK {
		t.Fatalf("run/new expected ok=true, body=%s", newRes.Body.String())
	}
	if result.State.State != "map" {
		t.Fatalf("fresh run expected map state, got %q", result.State.State)
	}
	if len(result.State.Moves) == 0 {
		t.Fatalf("fresh run expected available moves, body=%s", newRes.Body.String())
	}
	if len(result.State.Deck) != 10 {
		t.Fatalf("starter deck expected 10 cards, got %d", len(result.State.Deck))
	}

	mapRes := app.request(http.MethodGet, "/api/map", nil, "")
	if mapRes.Code != http.StatusOK {
		t.Fatalf("map expected 200, got %d body=%s", mapRes.Code, mapRes.Body.String())
	}

	deckRes := app.request(http.MethodGet, "/api/deck", nil, "")
	if deckRes.Code != http.StatusOK {
		t.Fatalf("deck expected 200, got %d body=%s", deckRes.Code, deckRes.Body.String())
	}

	// Moving to a node outside the frontier is an inert no-op.
	badRes := app.json(http.MethodPost, "/api/node/enter", map[string]any{"row": 14, "col": 0})
	if badRes.Code != http.StatusOK {
		t.Fatalf("node/enter expected 200, got %d", badRes.Code)
	}
	if decodeCommandResult(t, badRes).OK {
		t.Fatalf("entering an unreachable node should report ok=false")
	}

	first := result.State.Moves[0]
	enterRes := app.json(http.MethodPost, "/api/node/enter", map[string]any{"row": first.Row, "col": first.Col})
	if enterRes.Code != http.StatusOK {
		t.Fatalf("node/enter expected 200, got %d body=%s", enterRes.Code, enterRes.Body.String())
	}
	entered := decodeCommandResult(t, enterRes)
	if !entered.OK {
		t.Fatalf("entering a frontier node should report ok=true, body=%s", enterRes.Body.String())
	}
	if entered.State.Floor != 1 {
		t.Fatalf("expected floor 1 after first move, got %d", entered.State.Floor)
	}

	if entered.State.State == "combat" {
		endRes := app.json(http.MethodPost, "/api/combat/end-turn", map[string]any{})
		if endRes.Code != http.StatusOK {
			t.Fatalf("end-turn expected 200, got %d body=%s", endRes.Code, endRes.Body.String())
		}
		if !decodeCommandResult(t, endRes).OK {
			t.Fatalf("end-turn in combat should report ok=true")
		}
	}

	abandonRes := app.json(http.MethodPost, "/api/run/abandon", map[string]any{})
	if abandonRes.Code != http.StatusOK {
		t.Fatalf("run/abandon expected 200, got %d body=%s", abandonRes.Code, abandonRes.Body.String())
	}
	metaRes := app.request(http.MethodGet, "/api/meta", nil, "")
	if metaRes.Code != http.StatusOK {
		t.Fatalf("meta expected 200, got %d", metaRes.Code)
	}
	meta := decodeBodyMap(t, metaRes)
	if runs, _ := meta["runs"].(float64); runs != 1 {
		t.Fatalf("expected one recorded run after abandon, got %v", meta["runs"])
	}
}

func TestServer_SaveLoadRoundTripPerProfile(t *testing.T) {
	app := newTestApp(t)

	newRes := app.json(http.MethodPost, "/api/run/new?profile=alice", map[string]any{"seed": 77})
	if !decodeCommandResult(t, newRes).OK {
		t.Fatalf("run/new failed: %s", newRes.Body.String())
	}

	saveRes := app.json(http.MethodPost, "/api/save?profile=alice", map[string]any{})
	if saveRes.Code != http.StatusOK || !decodeCommandResult(t, saveRes).OK {
		t.Fatalf("save on the map should succeed, got %d body=%s", saveRes.Code, saveRes.Body.String())
	}

	// Another profile has nothing to load.
	otherRes := app.json(http.MethodPost, "/api/load?profile=bob", map[string]any{})
	if otherRes.Code != http.StatusOK {
		t.Fatalf("load expected 200, got %d", otherRes.Code)
	}
	if decodeCommandResult(t, otherRes).OK {
		t.Fatalf("loading an empty profile should report ok=false")
	}

	loadRes := app.json(http.MethodPost, "/api/load?profile=alice", map[string]any{})
	loaded := decodeCommandResult(t, loadRes)
	if !loaded.OK {
		t.Fatalf("load should restore the saved run, body=%s", loadRes.Body.String())
	}
	if loaded.State.State != "map" {
		t.Fatalf("restored run expected map state, got %q", loaded.State.State)
	}

	clearRes := app.json(http.MethodPost, "/api/save/clear?profile=alice", map[string]any{})
	if clearRes.Code != http.StatusOK {
		t.Fatalf("save/clear expected 200, got %d", clearRes.Code)
	}
	reloadRes := app.json(http.MethodPost, "/api/load?profile=alice", map[string]any{})
	if decodeCommandResult(t, reloadRes).OK {
		t.Fatalf("load after clear should report ok=false")
	}
}

func TestServer_SaveRejectedMidCombat(t *testing.T) {
	app := newTestApp(t)

	// Puzzle runs begin inside a combat.
	puzzleRes := app.json(http.MethodPost, "/api/run/puzzle", map[string]any{})
	puzzle := decodeCommandResult(t, puzzleRes)
	if !puzzle.OK || puzzle.State.State != "combat" {
		t.Fatalf("run/puzzle should start in combat, body=%s", puzzleRes.Body.String())
	}

	saveRes := app.json(http.MethodPost, "/api/save", map[string]any{})
	if saveRes.Code != http.StatusOK {
		t.Fatalf("save expected 200, got %d", saveRes.Code)
	}
	if decodeCommandResult(t, saveRes).OK {
		t.Fatalf("saving mid-combat should report ok=false")
	}
}

func TestServer_DailyRunAndShareText(t *testing.T) {
	app := newTestApp(t)

	dailyRes := app.json(http.MethodPost, "/api/run/daily", map[string]any{})
	daily := decodeCommandResult(t, dailyRes)
	if !daily.OK {
		t.Fatalf("run/daily failed: %s", dailyRes.Body.String())
	}
	if !daily.State.Daily {
		t.Fatalf("daily run should be flagged daily, body=%s", dailyRes.Body.String())
	}
	if len(daily.State.DailyMods) == 0 {
		t.Fatalf("daily run should carry modifiers")
	}

	shareRes := app.request(http.MethodGet, "/api/share?mode=daily", nil, "")
	if shareRes.Code != http.StatusOK {
		t.Fatalf("share expected 200, got %d body=%s", shareRes.Code, shareRes.Body.String())
	}
	share := decodeBodyMap(t, shareRes)
	text, _ := share["text"].(string)
	if !strings.Contains(text, "Shattered Mirror Daily") {
		t.Fatalf("daily share text missing header: %q", text)
	}
}

func TestServer_WalletEndpoints(t *testing.T) {
	app := newTestApp(t)

	walletRes := app.request(http.MethodGet, "/api/wallet", nil, "")
	if walletRes.Code != http.StatusOK {
		t.Fatalf("wallet expected 200, got %d", walletRes.Code)
	}
	w := decodeBodyMap(t, walletRes)
	if shards, _ := w["shards"].(float64); shards != 0 {
		t.Fatalf("fresh wallet expected 0 shards, got %v", w["shards"])
	}

	catalogRes := app.request(http.MethodGet, "/api/wallet/catalog", nil, "")
	if catalogRes.Code != http.StatusOK {
		t.Fatalf("wallet/catalog expected 200, got %d", catalogRes.Code)
	}
	var catalog []map[string]any
	if err := json.Unmarshal(catalogRes.Body.Bytes(), &catalog); err != nil {
		t.Fatalf("decode catalog: %v body=%s", err, catalogRes.Body.String())
	}
	if len(catalog) == 0 {
		t.Fatalf("cosmetic catalog should not be empty")
	}

	buyRes := app.json(http.MethodPost, "/api/wallet/purchase", map[string]any{"cosmetic": "back_umbra"})
	if buyRes.Code != http.StatusBadRequest {
		t.Fatalf("purchase with no shards expected 400, got %d body=%s", buyRes.Code, buyRes.Body.String())
	}
}

func TestServer_OpsEndpoints(t *testing.T) {
	app := newTestApp(t)

	newRes := app.json(http.MethodPost, "/api/run/new", map[string]any{"seed": 9})
	if !decodeCommandResult(t, newRes).OK {
		t.Fatalf("run/new failed: %s", newRes.Body.String())
	}

	statsRes := app.request(http.MethodGet, "/api/stats", nil, "")
	if statsRes.Code != http.StatusOK {
		t.Fatalf("stats expected 200, got %d body=%s", statsRes.Code, statsRes.Body.String())
	}
	stats := decodeBodyMap(t, statsRes)
	if started, _ := stats["runs_started"].(float64); started != 1 {
		t.Fatalf("expected runs_started=1, got %v", stats["runs_started"])
	}

	cfgRes := app.request(http.MethodGet, "/api/config", nil, "")
	if cfgRes.Code != http.StatusOK {
		t.Fatalf("config expected 200, got %d", cfgRes.Code)
	}

	routesRes := app.request(http.MethodGet, "/api/routes", nil, "")
	if routesRes.Code != http.StatusOK {
		t.Fatalf("routes expected 200, got %d", routesRes.Code)
	}
	if !strings.Contains(routesRes.Body.String(), "/api/run/new") {
		t.Fatalf("route docs should list /api/run/new, body=%s", routesRes.Body.String())
	}
}

type testApp struct {
	handler http.Handler
	logs    *bytes.Buffer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	var logs bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&logs)

	h, err := serverapp.NewHandler(serverapp.Options{
		Config:   config.Default(),
		Logger:   logger,
		InMemory: true,
	})
	if err != nil {
		t.Fatalf("NewHandler: %v", err)
	}

	return &testApp{handler: h, logs: &logs}
}

func (a *testApp) json(method, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	return a.request(method, path, bytes.NewReader(b), "application/json")
}

func (a *testApp) request(method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

// commandResult mirrors the uniform {"ok":bool,"state":{...}} command
// response, decoding only the fields the tests assert on.
type commandResult struct {
	OK    bool `json:"ok"`
	State struct {
		State     string   `json:"state"`
		Floor     int      `json:"floor"`
		Daily     bool     `json:"daily"`
		DailyMods []string `json:"daily_mods"`
		Deck      []struct {
			ID string `json:"id"`
		} `json:"deck"`
		Moves []struct {
			Row int `json:"row"`
			Col int `json:"col"`
		} `json:"moves"`
	} `json:"state"`
}

func decodeCommandResult(t *testing.T, rec *httptest.ResponseRecorder) commandResult {
	t.Helper()
	var out commandResult
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode command result failed: %v body=%s", err, rec.Body.String())
	}
	return out
}

func decodeBodyMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode json body failed: %v body=%s", err, rec.Body.String())
	}
	return out
}
