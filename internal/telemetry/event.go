package telemetry

import "time"

type EventType string

const (
	EventRunStarted    EventType = "run_started"
	EventRunEnded      EventType = "run_ended"
	EventNodeEntered   EventType = "node_entered"
	EventCombatStarted EventType = "combat_started"
	EventCombatWon     EventType = "combat_won"
	EventCombatLost    EventType = "combat_lost"
	EventCardPlayed    EventType = "card_played"
	EventCardsFused    EventType = "cards_fused"
	EventRelicGained   EventType = "relic_gained"
	EventPotionUsed    EventType = "potion_used"
	EventGoldSpent     EventType = "gold_spent"
	EventShareCopied   EventType = "share_copied"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
