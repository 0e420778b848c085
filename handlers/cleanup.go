package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-spillwatch/session"
)

type cleanupRequest struct {
	SpillID string `json:"spillId" binding:"required"`
}

// DispatchCleanup sends the simulated cleanup device to an idle spill.
func DispatchCleanup(c *gin.Context, m *session.Manager) {
	var request cleanupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := m.Get(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	msg, err := s.DispatchCleanup(request.SpillID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": msg,
		"status":  s.CleanupStatusOf(request.SpillID),
	})
}

// CompleteCleanup marks a cleaning spill as done. Done is terminal.
func CompleteCleanup(c *gin.Context, m *session.Manager) {
	var request cleanupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := m.Get(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	msg, err := s.CompleteCleanup(request.SpillID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": msg,
		"status":  s.CleanupStatusOf(request.SpillID),
	})
}
