package scenario

import "go-spillwatch/types"

// Seed tables for the demo scenario. Loaded once at process start and
// treated as read-only for the process lifetime.

var seedScenario = types.Scenario{
	SceneID:     "SCENE_001",
	SceneName:   "Caspian",
	Date:        "2020-07-04",
	Description: "Satellite observation of Caspian Sea region",
}

// Three zones placed offshore in the sea.
var seedZones = []types.Zone{
	{ZoneID: "Z1", Name: "Z1", Lat: 40.20, Lon: 49.80, SceneID: "SCENE_001"},
	{ZoneID: "Z2", Name: "Z2", Lat: 40.05, Lon: 49.90, SceneID: "SCENE_001"},
	{ZoneID: "Z3", Name: "Z3", Lat: 39.90, Lon: 50.00, SceneID: "SCENE_001"},
}

var seedSpills = []types.Spill{
	{
		SpillID: "S1", ZoneID: "Z1",
		OilType: "crude", AreaKM2: 2.5,
		Thickness: types.ThicknessThick, Confidence: 0.92,
		Lat: 40.45, Lon: 49.70,
	},
	{
		SpillID: "S2", ZoneID: "Z2",
		OilType: "crude", AreaKM2: 3.8,
		Thickness: types.ThicknessMedium, Confidence: 0.88,
		Lat: 40.40, Lon: 50.10,
	},
	{
		SpillID: "S3", ZoneID: "Z3",
		OilType: "crude", AreaKM2: 1.5,
		Thickness: types.ThicknessThin, Confidence: 0.79,
		Lat: 40.32, Lon: 50.60,
	},
}

// Past spills per zone, used only for the history summary.
var seedHistory = map[string][]types.HistoricalEvent{
	"Z1": {
		{Date: "2023-05-10", AreaKM2: 1.8, SpillID: "H1"},
		{Date: "2023-08-21", AreaKM2: 2.2, SpillID: "H2"},
		{Date: "2024-01-03", AreaKM2: 1.1, SpillID: "H3"},
	},
	"Z2": {
		{Date: "2022-11-02", AreaKM2: 3.0, SpillID: "H4"},
	},
	"Z3": {
		{Date: "2023-02-15", AreaKM2: 0.9, SpillID: "H5"},
		{Date: "2023-09-10", AreaKM2: 1.2, SpillID: "H6"},
	},
}

var seedOverlays = map[string]types.ZoneOverlay{
	"Z1": {
		ZoneID: "Z1", Image: "./overlays/overlay.jpg",
		Bounds:  types.BoundingBox{MinLat: 40.15, MaxLat: 40.25, MinLon: 49.70, MaxLon: 49.90},
		Opacity: 0.8,
	},
	"Z2": {
		ZoneID: "Z2", Image: "./overlays/overlay_2.jpg",
		Bounds:  types.BoundingBox{MinLat: 40.00, MaxLat: 40.10, MinLon: 49.80, MaxLon: 50.00},
		Opacity: 0.8,
	},
	"Z3": {
		ZoneID: "Z3", Image: "./overlays/overlay_3.jpg",
		Bounds:  types.BoundingBox{MinLat: 39.85, MaxLat: 39.95, MinLon: 49.90, MaxLon: 50.10},
		Opacity: 0.8,
	},
}
