package types

import (
	"fmt"
	"strings"
)

// View models handed to the presentation layer. These are plain records;
// the frontend decides how to template them.

// ZoneMarker is a map pin for a danger zone.
type ZoneMarker struct {
	ZoneID   string  `json:"zoneId"`
	SceneID  string  `json:"sceneId"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Color    string  `json:"color"`
	Selected bool    `json:"selected"`
}

// MapView tells the frontend where to center the map.
type MapView struct {
	CenterLat float64 `json:"centerLat"`
	CenterLon float64 `json:"centerLon"`
	Zoom      int     `json:"zoom"`
}

// SpillInfo is the per-spill line of the zone info box plus the picker label.
type SpillInfo struct {
	SpillID    string        `json:"spillId"`
	OilType    string        `json:"oilType"`
	AreaKM2    float64       `json:"areaKm2"`
	Thickness  Thickness     `json:"thicknessClass"`
	Confidence float64       `json:"confidence"`
	Status     CleanupStatus `json:"status"`
	Color      string        `json:"color"`
	Summary    string        `json:"summary"`
	Label      string        `json:"label"`
}

// NewSpillInfo derives the display record for a spill at its current
// cleanup status.
func NewSpillInfo(s Spill, status CleanupStatus) SpillInfo {
	return SpillInfo{
		SpillID:    s.SpillID,
		OilType:    s.OilType,
		AreaKM2:    s.AreaKM2,
		Thickness:  s.Thickness,
		Confidence: s.Confidence,
		Status:     status,
		Color:      SpillColor(s.Thickness, status),
		Summary: fmt.Sprintf("%s: %s, %g km², %s, %.0f%% conf., status: %s",
			s.SpillID, s.OilType, s.AreaKM2, s.Thickness, s.Confidence*100, status),
		Label: fmt.Sprintf("%s | %s | %g km²", s.SpillID, s.Thickness, s.AreaKM2),
	}
}

// StatusRow is one line of the cleanup device status table.
type StatusRow struct {
	Zone    string `json:"zone"`
	SpillID string `json:"spillId"`
	Status  string `json:"status"`
}

// Capitalize uppercases the first byte, matching how statuses are shown
// in the table ("Idle", "Cleaning", "Done").
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// SessionSnapshot is the full render state for one session. Emitted on
// every state change.
type SessionSnapshot struct {
	SessionID       string        `json:"sessionId"`
	SelectedZoneID  string        `json:"selectedZoneId,omitempty"`
	SelectedSpillID string        `json:"selectedSpillId,omitempty"`
	Map             MapView       `json:"map"`
	Markers         []ZoneMarker  `json:"markers"`
	Spills          []SpillInfo   `json:"spills,omitempty"`
	Overlay         *ZoneOverlay  `json:"overlay,omitempty"`
	HistoryText     string        `json:"historyText,omitempty"`
	Transcript      []ChatMessage `json:"transcript"`
	StatusTable     []StatusRow   `json:"statusTable"`
}
