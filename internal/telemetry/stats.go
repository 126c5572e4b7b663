package telemetry

import (
	"encoding/json"
	"time"
)

type Stats struct {
	Period       string            `json:"period"`
	EventCounts  map[EventType]int `json:"event_counts"`
	RunsStarted  int               `json:"runs_started"`
	RunsEnded    int               `json:"runs_ended"`
	WinRate      float64           `json:"win_rate"`
	CombatsWon   int               `json:"combats_won"`
	CombatsLost  int               `json:"combats_lost"`
	CardsPlayed  int               `json:"cards_played"`
	PlaysByCard  map[string]int    `json:"plays_by_card"`
	NodesByType  map[string]int    `json:"nodes_by_type"`
	RelicsGained map[string]int    `json:"relics_gained"`
}

// CalculateStats computes balance stats from events
func CalculateStats(events []Event, since time.Time) (Stats, error) {
	stats := Stats{
		Period:       since.Format("2006-01-02"),
		EventCounts:  make(map[EventType]int),
		PlaysByCard:  make(map[string]int),
		NodesByType:  make(map[string]int),
		RelicsGained: make(map[string]int),
	}

	var wins int
	for _, event := range events {
		stats.EventCounts[event.Type]++

		// Parse metadata for specific stats
		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventRunStarted:
			stats.RunsStarted++
		case EventRunEnded:
			stats.RunsEnded++
			if won, ok := metadata["won"].(bool); ok && won {
				wins++
			}
		case EventCombatWon:
			stats.CombatsWon++
		case EventCombatLost:
			stats.CombatsLost++
		case EventCardPlayed:
			stats.CardsPlayed++
			if cardID, ok := metadata["card"].(string); ok {
				stats.PlaysByCard[cardID]++
			}
		case EventNodeEntered:
			if nodeType, ok := metadata["node"].(string); ok {
				stats.NodesByType[nodeType]++
			}
		case EventRelicGained:
			if relicID, ok := metadata["relic"].(string); ok {
				stats.RelicsGained[relicID]++
			}
		}
	}

	if stats.RunsEnded > 0 {
		stats.WinRate = float64(wins) / float64(stats.RunsEnded)
	}

	return stats, nil
}
