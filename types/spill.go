package types

// Thickness classifies a detected slick.
type Thickness string

const (
	ThicknessThin   Thickness = "thin"
	ThicknessMedium Thickness = "medium"
	ThicknessThick  Thickness = "thick"
)

// CleanupStatus is the one-way lifecycle marker for a spill:
// idle -> cleaning -> done, no reverse transitions, no skipping.
type CleanupStatus string

const (
	CleanupIdle     CleanupStatus = "idle"
	CleanupCleaning CleanupStatus = "cleaning"
	CleanupDone     CleanupStatus = "done"
)

// Spill is a detected oil-spill record belonging to exactly one zone.
// Immutable reference data.
type Spill struct {
	SpillID    string    `json:"spillId"`
	ZoneID     string    `json:"zoneId"`
	OilType    string    `json:"oilType"`
	AreaKM2    float64   `json:"areaKm2"`
	Thickness  Thickness `json:"thicknessClass"`
	Confidence float64   `json:"confidence"` // detection confidence in [0,1]
	Lat        float64   `json:"lat"`
	Lon        float64   `json:"lon"`
}

// SpillColor picks the marker color for a spill: cleanup status wins
// over thickness.
func SpillColor(thickness Thickness, status CleanupStatus) string {
	if status == CleanupDone {
		return "green"
	}
	if status == CleanupCleaning {
		return "blue"
	}
	switch thickness {
	case ThicknessThick:
		return "red"
	case ThicknessMedium:
		return "orange"
	case ThicknessThin:
		return "yellow"
	}
	return "gray"
}
