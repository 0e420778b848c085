// Package summarize derives human-readable context from the reference
// data: the per-zone history digest and the resolved zone+spill context
// handed to the assistant.
package summarize

import (
	"fmt"

	"go-spillwatch/scenario"
	"go-spillwatch/types"
)

const noHistorySentence = "No historical spills recorded for this zone."

// HistorySummary builds the deterministic one-sentence digest of a
// zone's historical spills. Pure: same zone id, same text, every time.
func HistorySummary(store *scenario.Store, zoneID string) string {
	events := store.HistoryByZone(zoneID)
	if len(events) == 0 {
		return noHistorySentence
	}

	totalArea := 0.0
	maxArea := 0.0
	latest := events[0]
	for _, e := range events {
		totalArea += e.AreaKM2
		if e.AreaKM2 > maxArea {
			maxArea = e.AreaKM2
		}
		// Dates are ISO strings, so lexical max is the most recent.
		// On a tie the first event in table order is kept.
		if e.Date > latest.Date {
			latest = e
		}
	}

	return fmt.Sprintf(
		"This zone has %d historical spills, total affected area ~%.1f km². "+
			"Largest historical spill ~%.1f km². "+
			"Most recent spill on %s with area ~%.1f km².",
		len(events), totalArea, maxArea, latest.Date, latest.AreaKM2,
	)
}

// Context is the fully-resolved input for one assistant call.
type Context struct {
	Zone        types.Zone
	Spill       types.Spill
	HistoryText string
}

// ResolveContext looks up the zone and spill and attaches the history
// digest. Fails with scenario.ErrNotFound when either id is unknown or
// the spill does not belong to the zone.
func ResolveContext(store *scenario.Store, zoneID, spillID string) (Context, error) {
	zone, ok := store.GetZone(zoneID)
	if !ok {
		return Context{}, fmt.Errorf("zone %q: %w", zoneID, scenario.ErrNotFound)
	}
	spill, ok := store.GetSpill(spillID)
	if !ok {
		return Context{}, fmt.Errorf("spill %q: %w", spillID, scenario.ErrNotFound)
	}
	if spill.ZoneID != zoneID {
		return Context{}, fmt.Errorf("spill %q does not belong to zone %q: %w", spillID, zoneID, scenario.ErrNotFound)
	}

	return Context{
		Zone:        zone,
		Spill:       spill,
		HistoryText: HistorySummary(store, zoneID),
	}, nil
}
