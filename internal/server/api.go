package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"shatteredmirror/internal/config"
	"shatteredmirror/internal/game"
	"shatteredmirror/internal/logger"
	"shatteredmirror/internal/save"
	"shatteredmirror/internal/telemetry"
	"shatteredmirror/internal/wallet"
)

// App holds the server's shared state. The engine is single-threaded by
// design, so every handler that touches the run takes the one mutex;
// no two engine calls ever overlap.
type App struct {
	mu sync.Mutex

	Cfg    *config.Config
	Lib    *game.Library
	Saves  save.Repository
	Wallet *wallet.Service
	Events telemetry.Repository

	Run *game.Run

	BootNow time.Time
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (app *App) record(t telemetry.EventType, md telemetry.EventMetadata) {
	if app.Events == nil {
		return
	}
	if err := app.Events.RecordEvent(t, md); err != nil {
		logger.Log.WithError(err).Warn("telemetry record failed")
	}
}

// enemyView is the renderer-facing slice of an enemy: hp, position and
// the declared intent, nothing internal.
type enemyView struct {
	DefID  string      `json:"def_id"`
	Name   string      `json:"name"`
	Glyph  string      `json:"glyph"`
	HP     int         `json:"hp"`
	MaxHP  int         `json:"max_hp"`
	Block  int         `json:"block"`
	Pos    any         `json:"pos"`
	Intent game.Intent `json:"intent"`
	Alive  bool        `json:"alive"`

	Statuses map[string]int `json:"statuses,omitempty"`
}

type encounterView struct {
	Phase    game.Phase      `json:"phase"`
	Turn     int             `json:"turn"`
	Energy   int             `json:"energy"`
	Block    int             `json:"block"`
	HP       int             `json:"hp"`
	Statuses map[string]int  `json:"statuses,omitempty"`
	Hand     []game.DeckCard `json:"hand"`
	DrawLen  int             `json:"draw_len"`
	Discard  int             `json:"discard_len"`
	Exhaust  int             `json:"exhaust_len"`
	Enemies  []enemyView     `json:"enemies"`
	PlayerAt any             `json:"player_at"`
}

type stateResponse struct {
	State     game.RunState   `json:"state"`
	Act       int             `json:"act"`
	Floor     int             `json:"floor"`
	HP        int             `json:"hp"`
	MaxHP     int             `json:"max_hp"`
	Gold      int             `json:"gold"`
	Ascension int             `json:"ascension"`
	Daily     bool            `json:"daily"`
	DailyMods []string        `json:"daily_mods,omitempty"`
	Score     int             `json:"score"`
	Deck      []game.DeckCard `json:"deck"`
	Relics    []string        `json:"relics"`
	Potions   []string        `json:"potions"`
	Pos       game.Position   `json:"pos"`
	Moves     []game.Position `json:"moves"`
	Encounter *encounterView  `json:"encounter,omitempty"`
	Reward    *game.Reward    `json:"reward,omitempty"`
	Shop      *game.ShopStock `json:"shop,omitempty"`
	EventID   string          `json:"event_id,omitempty"`
}

// stateView builds the query surface for the current run. Callers hold
// app.mu.
func (app *App) stateView() *stateResponse {
	r := app.Run
	if r == nil {
		return nil
	}
	resp := &stateResponse{
		State:     r.State,
		Act:       r.Act,
		Floor:     r.Floor,
		HP:        r.HP,
		MaxHP:     r.MaxHP,
		Gold:      r.Gold,
		Ascension: r.Ascension,
		Daily:     r.Daily,
		DailyMods: r.DailyMods,
		Score:     r.Score(),
		Deck:      r.Deck,
		Relics:    r.Relics,
		Potions:   r.Potions,
		Pos:       r.Pos,
		Moves:     r.AvailableMoves(),
		Reward:    r.Reward,
		Shop:      r.Shop,
		EventID:   r.EventID,
	}
	if e := r.Encounter; e != nil && r.State == game.StateCombat {
		ev := &encounterView{
			Phase:    e.Phase,
			Turn:     e.Turn,
			Energy:   e.Player.Energy,
			Block:    e.Player.Block,
			HP:       e.Player.HP,
			Statuses: e.Player.Statuses,
			Hand:     e.Hand,
			DrawLen:  len(e.Draw),
			Discard:  len(e.Discard),
			Exhaust:  len(e.Exhaust),
			PlayerAt: e.Player.Pos,
		}
		for _, en := range e.Enemies {
			ev.Enemies = append(ev.Enemies, enemyView{
				DefID:    en.DefID,
				Name:     en.Name,
				Glyph:    en.Def().Glyph,
				HP:       en.HP,
				MaxHP:    en.MaxHP,
				Block:    en.Block,
				Pos:      en.Pos,
				Intent:   en.Intent,
				Alive:    en.Alive(),
				Statuses: en.Statuses,
			})
		}
		resp.Encounter = ev
	}
	return resp
}

func profileOf(r *http.Request) string {
	if p := r.URL.Query().Get("profile"); p != "" {
		return p
	}
	return "default"
}

// withRun wraps a command handler that needs an active run.
func (app *App) withRun(h func(w http.ResponseWriter, r *http.Request, run *game.Run)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		app.mu.Lock()
		defer app.mu.Unlock()
		if app.Run == nil {
			http.Error(w, "no active run", 409)
			return
		}
		h(w, r, app.Run)
	}
}

// okResult is the uniform command response: the engine rejects illegal
// actions as inert no-ops, so handlers report ok plus the fresh state.
func (app *App) okResult(w http.ResponseWriter, ok bool) {
	writeJSON(w, map[string]any{"ok": ok, "state": app.stateView()})
}

func RegisterAPIRoutes(mux *http.ServeMux, rr *RouteRegistry, app *App) {
	// --- run lifecycle ---

	Handle(mux, rr, "POST /api/run/new", "Start a new run", `{"seed":1234,"ascension":0}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Seed      uint32 `json:"seed"`
			Ascension int    `json:"ascension"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		app.mu.Lock()
		defer app.mu.Unlock()
		seed := body.Seed
		if seed == 0 {
			seed = uint32(time.Now().UnixNano())
		}
		app.Run = game.NewRun(seed, app.Lib, app.Cfg.Balance, game.Options{Ascension: body.Ascension})
		app.record(telemetry.EventRunStarted, telemetry.EventMetadata{"seed": seed, "ascension": body.Ascension})
		app.okResult(w, true)
	})

	Handle(mux, rr, "POST /api/run/daily", "Start today's daily challenge", "", func(w http.ResponseWriter, r *http.Request) {
		app.mu.Lock()
		defer app.mu.Unlock()
		meta, _ := app.Saves.LoadMeta(profileOf(r))
		app.Run = game.NewDailyRun(time.Now(), app.Lib, app.Cfg.Balance, meta.AscensionUnlocked)
		app.record(telemetry.EventRunStarted, telemetry.EventMetadata{"daily": true})
		app.okResult(w, true)
	})

	Handle(mux, rr, "POST /api/run/puzzle", "Start today's puzzle", "", func(w http.ResponseWriter, r *http.Request) {
		app.mu.Lock()
		defer app.mu.Unlock()
		app.Run = game.NewPuzzleRun(time.Now(), app.Lib, app.Cfg.Balance)
		app.record(telemetry.EventRunStarted, telemetry.EventMetadata{"puzzle": true})
		app.okResult(w, true)
	})

	Handle(mux, rr, "POST /api/run/abandon", "End the active run and record the result", "", app.withRun(func(w http.ResponseWriter, r *http.Request, run *game.Run) {
		app.finishRun(profileOf(r), run)
		app.Run = nil
		writeJSON(w, map[string]any{"ok": true})
	}))

	// --- queries ---

	Handle(mux, rr, "GET /api/state", "Current run state", "", func(w http.ResponseWriter, r *http.Request) {
		app.mu.Lock()
		defer app.mu.Unlock()
		writeJSON(w, map[string]any{"state": app.stateView()})
	})

	Handle(mux, rr, "GET /api/map", "Current act map", "", app.withRun(func(w http.ResponseWriter, r *http.Request, run *game.Run) {
		writeJSON(w, map[string]any{"act": run.Act, "map": run.Map, "pos": run.Pos, "moves": run.AvailableMoves()})
	}))

	Handle(mux, rr, "GET /api/deck", "Run deck with definitions", "", app.withRun(func(w http.ResponseWriter, r *http.Request, run *game.Run) {
		type entry struct {
			Card game.DeckCard `json:"card"`
			Def  game.CardDef  `json:"def"`
		}
		out := make([]entry, 0, len(run.Deck))
		for _, c := range run.Deck {
			def, _ := run.Library().Card(c.ID)
			out = append(out, entry{Card: c, Def: def})
		}
		writeJSON(w, out)
	}))

	Handle(mux, rr, "GET /api/event", "Active event", "", app.withRun(func(w http.ResponseWriter, r *http.Request, run *game.Run) {
		ev, ok := run.CurrentEvent()
		if !ok {
			http.Error(w, "no active event", 404)
			return
		}
		writeJSON(w, ev)
	}))

	Handle(mux, rr, "GET /api/share", "Share text for the current run", "", app.withRun(func(w http.ResponseWriter, r *http.Request, run *game.Run) {
		mode := r.URL.Query().Get("mode")
		if mode == "" {
			mode = "run"
		}
		app.record(telemetry.EventShareCopied, telemetry.EventMetadata{"mode": mode})
		writeJSON(w, map[string]any{"text": game.GenerateShareGrid(run, mode)})
	}))

	// --- map traversal ---

	Handle(mux, rr, "POST /api/node/enter", "Move to a connected node", `{"row":1,"col":0}`, app.withRun(func(w http.ResponseWriter, r *http.Request, run *game.Run) {
		var body struct {
			Row int `json:"row"`
			Col int `json:"col"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		ok := run.EnterNode(body.Row, body.Col)
		if ok {
			app.record(telemetry.EventNodeEntered, telemetry.EventMetadata{"node": string(run.NodeType), "floor": run.Floor})
			if run.State == game.StateCombat {
				app.record(telemetry.EventCombatStarted, telemetry.EventMetadata{"node": string(run.NodeType)})
			}
		}
		app.okResult(w, ok)
	}))

	// --- combat commands ---

	Handle(mux, rr, "POST /api/combat/play", "Play a hand card", `{"hand_index":0,"enemy_index":0}`, app.withRun(func(w http.ResponseWriter, r *http.Request, run *game.Run) {
		var body struct {
			HandIndex  int `json:"hand_index"`
			EnemyIndex int `json:"enemy_index"`
		}
		body.EnemyIndex = -1
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		var cardID string
		if e := run.Encounter; e != nil && body.HandIndex >= 0 && body.HandIndex < len(e.Hand) {
			cardID = e.Hand[body.HandIndex].ID
		}
		ok := run.PlayCardAt(body.HandIndex, body.EnemyIndex)
		if ok {
			app.record(telemetry.EventCardPlayed, telemetry.EventMetadata{"card": cardID})
			app.noteCombatEnd(profileOf(r), run)
		}
		app.okResult(w, ok)
	}))

	Handle(mux, rr, "POST /api/combat/end-turn", "End the player turn", "", app.withRun(func(w http.ResponseWriter, r *http.Request, run *game.Run) {
		ok := run.EndPlayerTurn()
		if ok {
			app.noteCombatEnd(profileOf(r), run)
		}
		app.okResult(w, ok)
	}))

	Handle(mux, rr, "POST /api/combat/potion", "Drink a potion", `{"slot":0,"enemy_index":-1}`, app.withRun(func(w http.ResponseWriter, r *http.Request, run *game.Run) {
		var body struct {
			Slot       int `json:"slot"`
			EnemyIndex int `json:"enemy_index"`
		}
		body.EnemyIndex = -1
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		ok := run.UsePotion(body.Slot, body.EnemyIndex)
		if ok {
			app.record(telemetry.EventPotionUsed, nil)
			app.noteCombatEnd(profileOf(r), run)
		}
		app.okResult(w, ok)
	}))

	// --- reward / rest / shop / event ---

	Handle(mux, rr, "POST /api/reward/take", "Take a reward card", `{"index":0}`, app.withRun(func(w http.ResponseWriter, r *http.Request, run *game.Run) {
		var body struct {
			Index int `json:"index"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		app.okResult(w, run.TakeRewardCard(body.Index))
	}))

	Handle(mux, rr, "POST /api/reward/skip", "Skip the reward card", "", app.withRun(func(w http.ResponseWriter, r *http.Request, run *game.Run) {
		app.okResult(w, run.SkipRewardCard())
	}))

	Handle(mux, rr, "POST /api/rest/heal", "Rest and heal", "", app.withRun(func(w http.ResponseWriter, r *http.Request, run *game.Run) {
		app.okResult(w, run.RestHeal())
	}))

	Handle(mux, rr, "POST /api/rest/upgrade", "Rest and upgrade a card", `{"deck_index":0}`, app.withRun(func(w http.ResponseWriter, r *http.Request, run *game.Run) {
		var body struct {
			DeckIndex int `json:"deck_index"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		app.okResult(w, run.RestUpgrade(body.DeckIndex))
	}))

	Handle(mux, rr, "POST /api/shop/buy-card", "Buy a shop card", `{"index":0}`, app.withRun(func(w http.ResponseWriter, r *http.Request, run *game.Run) {
		idx, err := indexBody(r)
		if err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		ok := run.ShopBuyCard(idx)
		if ok {
			app.record(telemetry.EventGoldSpent, telemetry.EventMetadata{"what": "card"})
		}
		app.okResult(w, ok)
	}))

	Handle(mux, rr, "POST /api/shop/buy-relic", "Buy a shop relic", `{"index":0}`, app.withRun(func(w http.ResponseWriter, r *http.Request, run *game.Run) {
		idx, err := indexBody(r)
		if err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		ok := run.ShopBuyRelic(idx)
		if ok {
			app.record(telemetry.EventRelicGained, telemetry.EventMetadata{"relic": run.Relics[len(run.Relics)-1]})
		}
		app.okResult(w, ok)
	}))

	Handle(mux, rr, "POST /api/shop/buy-potion", "Buy a shop potion", `{"index":0}`, app.withRun(func(w http.ResponseWriter, r *http.Request, run *game.Run) {
		idx, err := indexBody(r)
		if err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		app.okResult(w, run.ShopBuyPotion(idx))
	}))

	Handle(mux, rr, "POST /api/shop/remove-card", "Pay to remove a deck card", `{"index":0}`, app.withRun(func(w http.ResponseWriter, r *http.Request, run *game.Run) {
		idx, err := indexBody(r)
		if err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		app.okResult(w, run.ShopRemoveCard(idx))
	}))

	Handle(mux, rr, "POST /api/shop/leave", "Leave the shop", "", app.withRun(func(w http.ResponseWriter, r *http.Request, run *game.Run) {
		app.okResult(w, run.LeaveShop())
	}))

	Handle(mux, rr, "POST /api/event/choose", "Pick an event option", `{"index":0}`, app.withRun(func(w http.ResponseWriter, r *http.Request, run *game.Run) {
		idx, err := indexBody(r)
		if err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		app.okResult(w, run.ChooseEventOption(idx))
	}))

	Handle(mux, rr, "POST /api/deck/fuse", "Fuse two deck cards", `{"first":0,"second":1}`, app.withRun(func(w http.ResponseWriter, r *http.Request, run *game.Run) {
		var body struct {
			First  int `json:"first"`
			Second int `json:"second"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		ok := run.FuseCards(body.First, body.Second)
		if ok {
			app.record(telemetry.EventCardsFused, telemetry.EventMetadata{"result": run.Deck[len(run.Deck)-1].ID})
		}
		app.okResult(w, ok)
	}))

	// --- persistence ---

	Handle(mux, rr, "POST /api/save", "Save the active run", "", app.withRun(func(w http.ResponseWriter, r *http.Request, run *game.Run) {
		if run.State != game.StateMap {
			// Saves happen between nodes only.
			app.okResult(w, false)
			return
		}
		if err := app.Saves.SaveRun(profileOf(r), run.Snapshot()); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		app.okResult(w, true)
	}))

	Handle(mux, rr, "POST /api/load", "Load the saved run", "", func(w http.ResponseWriter, r *http.Request) {
		app.mu.Lock()
		defer app.mu.Unlock()
		snap, ok, err := app.Saves.LoadRun(profileOf(r))
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		if !ok {
			app.okResult(w, false)
			return
		}
		run, err := game.FromSnapshot(snap, app.Lib, app.Cfg.Balance)
		if err != nil {
			// A stale save must not brick the profile.
			logger.Log.WithError(err).Warn("saved run rejected")
			app.okResult(w, false)
			return
		}
		app.Run = run
		app.okResult(w, true)
	})

	Handle(mux, rr, "POST /api/save/clear", "Discard the saved run", "", func(w http.ResponseWriter, r *http.Request) {
		app.mu.Lock()
		defer app.mu.Unlock()
		if err := app.Saves.ClearRun(profileOf(r)); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, map[string]any{"ok": true})
	})

	Handle(mux, rr, "GET /api/meta", "Cross-run progression", "", func(w http.ResponseWriter, r *http.Request) {
		app.mu.Lock()
		defer app.mu.Unlock()
		meta, err := app.Saves.LoadMeta(profileOf(r))
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, meta)
	})

	// --- wallet ---

	Handle(mux, rr, "GET /api/wallet", "Shard balance and owned cosmetics", "", func(w http.ResponseWriter, r *http.Request) {
		profile := profileOf(r)
		bal, err := app.Wallet.Balance(profile)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		owned, err := app.Wallet.Owned(profile)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, map[string]any{"shards": bal, "owned": owned})
	})

	Handle(mux, rr, "GET /api/wallet/catalog", "Cosmetic catalog", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, app.Wallet.Catalog())
	})

	Handle(mux, rr, "POST /api/wallet/purchase", "Buy a cosmetic with shards", `{"cosmetic":"back_umbra"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Cosmetic string `json:"cosmetic"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json body", 400)
			return
		}
		if err := app.Wallet.PurchaseCosmetic(profileOf(r), body.Cosmetic); err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		writeJSON(w, map[string]any{"ok": true})
	})

	// --- ops ---

	Handle(mux, rr, "GET /api/stats", "Aggregated telemetry", "", func(w http.ResponseWriter, r *http.Request) {
		since := app.BootNow
		events, err := app.Events.GetEvents(since, nil)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		stats, err := telemetry.CalculateStats(events, since)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, stats)
	})

	Handle(mux, rr, "GET /api/config", "Active balance configuration", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, app.Cfg)
	})

	Handle(mux, rr, "GET /api/routes", "Route documentation", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, rr.List())
	})
}

func indexBody(r *http.Request) (int, error) {
	var body struct {
		Index int `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return 0, err
	}
	return body.Index, nil
}

// noteCombatEnd records win/loss telemetry and folds a finished run into
// the profile's meta record. Callers hold app.mu.
func (app *App) noteCombatEnd(profile string, run *game.Run) {
	switch run.State {
	case game.StateReward:
		app.record(telemetry.EventCombatWon, telemetry.EventMetadata{"floor": run.Floor})
	case game.StateGameOver:
		app.record(telemetry.EventCombatLost, telemetry.EventMetadata{"floor": run.Floor})
		app.finishRun(profile, run)
	case game.StateVictory:
		app.record(telemetry.EventCombatWon, telemetry.EventMetadata{"floor": run.Floor})
		app.finishRun(profile, run)
	}
}

// finishRun settles a terminal (or abandoned) run: meta progression,
// shard payout, saved-run cleanup, telemetry.
func (app *App) finishRun(profile string, run *game.Run) {
	won := run.State == game.StateVictory
	score := run.Score()

	meta, err := app.Saves.LoadMeta(profile)
	if err == nil {
		meta.RecordResult(score, run.Ascension, won)
		if err := app.Saves.SaveMeta(profile, meta); err != nil {
			logger.Log.WithError(err).Warn("meta save failed")
		}
	}
	if err := app.Saves.ClearRun(profile); err != nil {
		logger.Log.WithError(err).Warn("save cleanup failed")
	}

	// Cosmetic shards: a tenth of score, doubled on a win.
	shards := score / 10
	if won {
		shards *= 2
	}
	if shards > 0 {
		if _, err := app.Wallet.EarnShards(profile, shards); err != nil {
			logger.Log.WithError(err).Warn("shard payout failed")
		}
	}

	app.record(telemetry.EventRunEnded, telemetry.EventMetadata{"won": won, "score": score, "floor": run.Floor})
}
