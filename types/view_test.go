package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpillColor(t *testing.T) {
	// Cleanup status wins over thickness.
	assert.Equal(t, "green", SpillColor(ThicknessThick, CleanupDone))
	assert.Equal(t, "blue", SpillColor(ThicknessThin, CleanupCleaning))

	assert.Equal(t, "red", SpillColor(ThicknessThick, CleanupIdle))
	assert.Equal(t, "orange", SpillColor(ThicknessMedium, CleanupIdle))
	assert.Equal(t, "yellow", SpillColor(ThicknessThin, CleanupIdle))
	assert.Equal(t, "gray", SpillColor("sludge", CleanupIdle))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Idle", Capitalize("idle"))
	assert.Equal(t, "Done", Capitalize("done"))
	assert.Equal(t, "", Capitalize(""))
}

func TestNewSpillInfo(t *testing.T) {
	info := NewSpillInfo(Spill{
		SpillID: "S2", ZoneID: "Z2", OilType: "crude",
		AreaKM2: 3.8, Thickness: ThicknessMedium, Confidence: 0.88,
	}, CleanupIdle)

	assert.Equal(t, "S2: crude, 3.8 km², medium, 88% conf., status: idle", info.Summary)
	assert.Equal(t, "S2 | medium | 3.8 km²", info.Label)
	assert.Equal(t, "orange", info.Color)
}
