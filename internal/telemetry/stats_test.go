package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAndFilterEvents(t *testing.T) {
	repo := NewMemoryRepository()

	require.NoError(t, repo.RecordEvent(EventRunStarted, EventMetadata{"seed": 42}))
	require.NoError(t, repo.RecordEvent(EventCardPlayed, EventMetadata{"card": "shard_strike"}))
	require.NoError(t, repo.RecordEvent(EventCardPlayed, EventMetadata{"card": "glass_guard"}))

	all, err := repo.GetEvents(time.Time{}, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	plays, err := repo.GetEvents(time.Time{}, []EventType{EventCardPlayed})
	require.NoError(t, err)
	assert.Len(t, plays, 2)

	require.NoError(t, repo.Clear())
	all, err = repo.GetEvents(time.Time{}, nil)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCalculateStats(t *testing.T) {
	repo := NewMemoryRepository()

	require.NoError(t, repo.RecordEvent(EventRunStarted, nil))
	require.NoError(t, repo.RecordEvent(EventNodeEntered, EventMetadata{"node": "combat"}))
	require.NoError(t, repo.RecordEvent(EventCombatWon, nil))
	require.NoError(t, repo.RecordEvent(EventCardPlayed, EventMetadata{"card": "shard_strike"}))
	require.NoError(t, repo.RecordEvent(EventCardPlayed, EventMetadata{"card": "shard_strike"}))
	require.NoError(t, repo.RecordEvent(EventRelicGained, EventMetadata{"relic": "prism_core"}))
	require.NoError(t, repo.RecordEvent(EventRunEnded, EventMetadata{"won": true}))

	events, err := repo.GetEvents(time.Time{}, nil)
	require.NoError(t, err)

	stats, err := CalculateStats(events, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	assert.Equal(t, 1, stats.RunsStarted)
	assert.Equal(t, 1, stats.RunsEnded)
	assert.Equal(t, 1.0, stats.WinRate)
	assert.Equal(t, 1, stats.CombatsWon)
	assert.Equal(t, 2, stats.CardsPlayed)
	assert.Equal(t, 2, stats.PlaysByCard["shard_strike"])
	assert.Equal(t, 1, stats.NodesByType["combat"])
	assert.Equal(t, 1, stats.RelicsGained["prism_core"])
}
