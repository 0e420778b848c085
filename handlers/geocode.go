package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-spillwatch/geocode"
	"go-spillwatch/scenario"
)

// GeocodeZone reverse-geocodes a zone's center so operators get a place
// name next to the raw coordinates. Needs MAPS_CREDENTIALS; without it
// the endpoint degrades to 503 instead of failing the process.
func GeocodeZone(c *gin.Context, store *scenario.Store) {
	zoneID := c.Param("zoneID")

	zone, ok := store.GetZone(zoneID)
	if !ok {
		abortWithError(c, fmt.Errorf("zone %q: %w", zoneID, scenario.ErrNotFound))
		return
	}

	results, err := geocode.ReverseGeocode(c.Request.Context(), zone.Lat, zone.Lon)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	var addresses []string
	for _, r := range results {
		addresses = append(addresses, r.FormattedAddress)
	}

	c.JSON(http.StatusOK, gin.H{
		"zoneId":    zone.ZoneID,
		"addresses": addresses,
	})
}
