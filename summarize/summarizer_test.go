package summarize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-spillwatch/scenario"
	"go-spillwatch/types"
)

func TestHistorySummaryZ1(t *testing.T) {
	store := scenario.Default()

	want := "This zone has 3 historical spills, total affected area ~5.1 km². " +
		"Largest historical spill ~2.2 km². " +
		"Most recent spill on 2024-01-03 with area ~1.1 km²."
	assert.Equal(t, want, HistorySummary(store, "Z1"))
}

func TestHistorySummarySingleEvent(t *testing.T) {
	store := scenario.Default()

	want := "This zone has 1 historical spills, total affected area ~3.0 km². " +
		"Largest historical spill ~3.0 km². " +
		"Most recent spill on 2022-11-02 with area ~3.0 km²."
	assert.Equal(t, want, HistorySummary(store, "Z2"))
}

func TestHistorySummaryDateTieKeepsFirst(t *testing.T) {
	// Two events on the same date: the first in table order is the one
	// reported as most recent.
	store := scenario.NewStore(
		types.Scenario{SceneID: "SCENE_T"},
		[]types.Zone{{ZoneID: "ZT", Name: "ZT", Lat: 40.0, Lon: 50.0, SceneID: "SCENE_T"}},
		nil,
		map[string][]types.HistoricalEvent{
			"ZT": {
				{SpillID: "HA", Date: "2023-06-01", AreaKM2: 2.0},
				{SpillID: "HB", Date: "2023-06-01", AreaKM2: 0.5},
			},
		},
		nil,
	)

	want := "This zone has 2 historical spills, total affected area ~2.5 km². " +
		"Largest historical spill ~2.0 km². " +
		"Most recent spill on 2023-06-01 with area ~2.0 km²."
	assert.Equal(t, want, HistorySummary(store, "ZT"))
}

func TestHistorySummaryIsPure(t *testing.T) {
	store := scenario.Default()

	first := HistorySummary(store, "Z3")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, HistorySummary(store, "Z3"))
	}
}

func TestHistorySummaryNoEvents(t *testing.T) {
	store := scenario.Default()

	// Unknown zones have no events either; the summary is the fixed
	// no-history sentence.
	assert.Equal(t, "No historical spills recorded for this zone.", HistorySummary(store, "Z99"))
}

func TestResolveContext(t *testing.T) {
	store := scenario.Default()

	rc, err := ResolveContext(store, "Z1", "S1")
	require.NoError(t, err)

	assert.Equal(t, "Z1", rc.Zone.ZoneID)
	assert.Equal(t, 40.20, rc.Zone.Lat)
	assert.Equal(t, "S1", rc.Spill.SpillID)
	assert.Equal(t, 2.5, rc.Spill.AreaKM2)
	assert.Equal(t, 0.92, rc.Spill.Confidence)
	assert.Contains(t, rc.HistoryText, "3 historical spills")
}

func TestResolveContextNotFound(t *testing.T) {
	store := scenario.Default()

	_, err := ResolveContext(store, "Z99", "S1")
	require.ErrorIs(t, err, scenario.ErrNotFound)

	_, err = ResolveContext(store, "Z1", "S99")
	require.ErrorIs(t, err, scenario.ErrNotFound)

	// S2 exists but belongs to Z2.
	_, err = ResolveContext(store, "Z1", "S2")
	require.ErrorIs(t, err, scenario.ErrNotFound)
}
