// Package scenario holds the static reference data: zones, spills,
// historical events and overlay placements. Everything here is immutable
// after load; mutable session state lives in the session package.
package scenario

import (
	"errors"
	"fmt"
	"sync"

	"go-spillwatch/types"
)

// ErrNotFound is returned when a zone or spill id is unknown, or a spill
// does not belong to the stated zone.
var ErrNotFound = errors.New("not found")

// Store is an in-memory, read-only view of one scenario's reference data.
type Store struct {
	scenario types.Scenario
	zones    []types.Zone
	spills   []types.Spill
	history  map[string][]types.HistoricalEvent
	overlays map[string]types.ZoneOverlay

	zoneByID  map[string]types.Zone
	spillByID map[string]types.Spill
}

// NewStore builds a Store from the given tables. The caller should run
// Validate before serving traffic.
func NewStore(
	sc types.Scenario,
	zones []types.Zone,
	spills []types.Spill,
	history map[string][]types.HistoricalEvent,
	overlays map[string]types.ZoneOverlay,
) *Store {
	s := &Store{
		scenario:  sc,
		zones:     zones,
		spills:    spills,
		history:   history,
		overlays:  overlays,
		zoneByID:  make(map[string]types.Zone, len(zones)),
		spillByID: make(map[string]types.Spill, len(spills)),
	}
	for _, z := range zones {
		s.zoneByID[z.ZoneID] = z
	}
	for _, sp := range spills {
		s.spillByID[sp.SpillID] = sp
	}
	return s
}

// defaultStore is a singleton over the seed tables.
var (
	defaultStore *Store
	storeOnce    sync.Once
)

// Default returns the Store built from the seeded demo scenario.
func Default() *Store {
	storeOnce.Do(func() {
		defaultStore = NewStore(seedScenario, seedZones, seedSpills, seedHistory, seedOverlays)
	})
	return defaultStore
}

// Scenario returns the scene metadata.
func (s *Store) Scenario() types.Scenario {
	return s.scenario
}

// Zones returns all zones in their fixed, stable enumeration order.
// Callers rely on this order for first-minimum-wins tie breaking.
func (s *Store) Zones() []types.Zone {
	out := make([]types.Zone, len(s.zones))
	copy(out, s.zones)
	return out
}

// GetZone looks up a zone by id.
func (s *Store) GetZone(zoneID string) (types.Zone, bool) {
	z, ok := s.zoneByID[zoneID]
	return z, ok
}

// GetSpill looks up a spill by id.
func (s *Store) GetSpill(spillID string) (types.Spill, bool) {
	sp, ok := s.spillByID[spillID]
	return sp, ok
}

// SpillsByZone returns the zone's spills in seed order.
func (s *Store) SpillsByZone(zoneID string) []types.Spill {
	var out []types.Spill
	for _, sp := range s.spills {
		if sp.ZoneID == zoneID {
			out = append(out, sp)
		}
	}
	return out
}

// Spills returns every spill in seed order (zone order, then spill order).
func (s *Store) Spills() []types.Spill {
	out := make([]types.Spill, len(s.spills))
	copy(out, s.spills)
	return out
}

// HistoryByZone returns the zone's historical events, oldest first as seeded.
func (s *Store) HistoryByZone(zoneID string) []types.HistoricalEvent {
	return s.history[zoneID]
}

// OverlayByZone returns the raster overlay placement for a zone, if any.
func (s *Store) OverlayByZone(zoneID string) (types.ZoneOverlay, bool) {
	ov, ok := s.overlays[zoneID]
	return ov, ok
}

// Validate checks reference data integrity. A violation here is a
// programming error and should be fatal at startup; it can never be
// caused by user interaction.
func (s *Store) Validate() error {
	seenZones := make(map[string]bool, len(s.zones))
	for _, z := range s.zones {
		if z.ZoneID == "" {
			return fmt.Errorf("zone with empty id")
		}
		if seenZones[z.ZoneID] {
			return fmt.Errorf("duplicate zone id %q", z.ZoneID)
		}
		seenZones[z.ZoneID] = true
	}

	seenSpills := make(map[string]bool, len(s.spills))
	for _, sp := range s.spills {
		if sp.SpillID == "" {
			return fmt.Errorf("spill with empty id")
		}
		if seenSpills[sp.SpillID] {
			return fmt.Errorf("duplicate spill id %q", sp.SpillID)
		}
		seenSpills[sp.SpillID] = true

		if !seenZones[sp.ZoneID] {
			return fmt.Errorf("spill %q references unknown zone %q", sp.SpillID, sp.ZoneID)
		}
		if sp.AreaKM2 < 0 {
			return fmt.Errorf("spill %q has negative area %v", sp.SpillID, sp.AreaKM2)
		}
		if sp.Confidence < 0 || sp.Confidence > 1 {
			return fmt.Errorf("spill %q has confidence %v outside [0,1]", sp.SpillID, sp.Confidence)
		}
		switch sp.Thickness {
		case types.ThicknessThin, types.ThicknessMedium, types.ThicknessThick:
		default:
			return fmt.Errorf("spill %q has unknown thickness class %q", sp.SpillID, sp.Thickness)
		}
	}

	for zoneID, events := range s.history {
		if !seenZones[zoneID] {
			return fmt.Errorf("history references unknown zone %q", zoneID)
		}
		for _, e := range events {
			if e.Date == "" {
				return fmt.Errorf("history event %q in zone %q has empty date", e.SpillID, zoneID)
			}
			if e.AreaKM2 < 0 {
				return fmt.Errorf("history event %q in zone %q has negative area", e.SpillID, zoneID)
			}
		}
	}

	for zoneID := range s.overlays {
		if !seenZones[zoneID] {
			return fmt.Errorf("overlay references unknown zone %q", zoneID)
		}
	}

	return nil
}
