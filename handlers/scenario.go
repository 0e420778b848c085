package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-spillwatch/scenario"
	"go-spillwatch/summarize"
)

// GetScenario returns the scene metadata and the zone table.
func GetScenario(c *gin.Context, store *scenario.Store) {
	c.JSON(http.StatusOK, gin.H{
		"scenario": store.Scenario(),
		"zones":    store.Zones(),
	})
}

// GetZoneContext returns everything the dashboard shows for one zone:
// the zone record, its spills, the overlay placement and the history
// digest used for assistant reasoning.
func GetZoneContext(c *gin.Context, store *scenario.Store) {
	zoneID := c.Param("zoneID")

	zone, ok := store.GetZone(zoneID)
	if !ok {
		abortWithError(c, fmt.Errorf("zone %q: %w", zoneID, scenario.ErrNotFound))
		return
	}

	resp := gin.H{
		"zone":        zone,
		"spills":      store.SpillsByZone(zoneID),
		"historyText": summarize.HistorySummary(store, zoneID),
	}
	if ov, found := store.OverlayByZone(zoneID); found {
		resp["overlay"] = ov
	}

	c.JSON(http.StatusOK, resp)
}
