package types

// Scenario describes the satellite scene the dashboard is built around.
type Scenario struct {
	SceneID     string `json:"sceneId"`
	SceneName   string `json:"sceneName"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// Zone is a fixed offshore region of interest. Seeded at startup,
// read-only afterwards.
type Zone struct {
	ZoneID  string  `json:"zoneId"`
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	SceneID string  `json:"sceneId"`
}

// HistoricalEvent is a past spill recorded for a zone. Used only for
// summarization, never for live spill identity.
type HistoricalEvent struct {
	Date    string  `json:"date"` // ISO yyyy-mm-dd, lexical order == chronological
	AreaKM2 float64 `json:"areaKm2"`
	SpillID string  `json:"spillId"`
}

// BoundingBox is a two-corner lat/lon rectangle.
type BoundingBox struct {
	MinLat float64 `json:"minLat"`
	MaxLat float64 `json:"maxLat"`
	MinLon float64 `json:"minLon"`
	MaxLon float64 `json:"maxLon"`
}

// ZoneOverlay associates a raster image with a zone. The core only
// stores the placement; rendering is the presentation layer's job.
type ZoneOverlay struct {
	ZoneID  string      `json:"zoneId"`
	Image   string      `json:"image"`
	Bounds  BoundingBox `json:"bounds"`
	Opacity float64     `json:"opacity"`
}
