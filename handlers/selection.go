package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-spillwatch/session"
)

// SelectZone sets (or clears) the selected zone for a session. A zone
// change always resets the spill focus and the chat transcript.
func SelectZone(c *gin.Context, m *session.Manager) {
	var request struct {
		ZoneID *string `json:"zoneId"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := m.Get(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	zoneID := ""
	if request.ZoneID != nil {
		zoneID = *request.ZoneID
	}
	if err := s.SelectZone(zoneID); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": s.Snapshot()})
}

// SelectSpill sets the spill focus within the selected zone.
func SelectSpill(c *gin.Context, m *session.Manager) {
	var request struct {
		SpillID string `json:"spillId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := m.Get(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	if err := s.SelectSpill(request.SpillID); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": s.Snapshot()})
}

// ResolveClick maps a map click to the nearest zone center. A miss is a
// normal outcome, not an error; the selection just stays as it was.
func ResolveClick(c *gin.Context, m *session.Manager) {
	var request struct {
		Lat *float64 `json:"lat" binding:"required"`
		Lon *float64 `json:"lon" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := m.Get(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	zoneID, hit := s.ResolveClickToZone(*request.Lat, *request.Lon)
	c.JSON(http.StatusOK, gin.H{
		"hit":    hit,
		"zoneId": zoneID,
		"state":  s.Snapshot(),
	})
}
