package game

import (
	"fmt"
	"strings"

	"shatteredmirror/internal/worldmap"
)

// ShareURL is the public address embedded in share text.
const ShareURL = "https://shatteredmirror.app"

// GenerateShareGrid renders a plain-text result summary for external
// sharing: a title line, a URL line, and a grid of per-floor glyphs.
func GenerateShareGrid(r *Run, mode string) string {
	label := "Run"
	switch mode {
	case "daily":
		label = "Daily"
	case "puzzle":
		label = "Puzzle"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Shattered Mirror %s — Act %d, Floor %d, Score %d\n", label, r.Act, r.Floor, r.Score())
	fmt.Fprintf(&b, "%s/%s\n", ShareURL, mode)

	for i, fr := range r.FloorLog {
		b.WriteString(floorGlyph(fr))
		if (i+1)%5 == 0 {
			b.WriteString("\n")
		}
	}
	if len(r.FloorLog)%5 != 0 {
		b.WriteString("\n")
	}

	switch r.State {
	case StateVictory:
		b.WriteString("🏆\n")
	case StateGameOver:
		b.WriteString("💀\n")
	}
	return b.String()
}

func floorGlyph(fr FloorResult) string {
	if !fr.Won && (fr.Node == worldmap.NodeCombat || fr.Node == worldmap.NodeElite || fr.Node == worldmap.NodeBoss) {
		return "💀"
	}
	switch fr.Node {
	case worldmap.NodeCombat:
		return "🗡"
	case worldmap.NodeElite:
		return "👿"
	case worldmap.NodeBoss:
		return "🐲"
	case worldmap.NodeRest:
		return "🔥"
	case worldmap.NodeShop:
		return "🪙"
	case worldmap.NodeEvent:
		return "❔"
	default:
		return "·"
	}
}
