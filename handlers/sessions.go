package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-spillwatch/session"
)

// CreateSession starts a fresh session and returns its initial state.
func CreateSession(c *gin.Context, m *session.Manager) {
	s := m.Create()
	c.JSON(http.StatusCreated, gin.H{
		"sessionId": s.ID(),
		"state":     s.Snapshot(),
	})
}

// GetSession returns the current view model for a session.
func GetSession(c *gin.Context, m *session.Manager) {
	s, err := m.Get(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": s.Snapshot()})
}

// DeleteSession discards a session.
func DeleteSession(c *gin.Context, m *session.Manager) {
	if err := m.Delete(c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session deleted"})
}

// GetStatusTable returns the cleanup device status rows for a session.
func GetStatusTable(c *gin.Context, m *session.Manager) {
	s, err := m.Get(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"statusTable": s.Snapshot().StatusTable})
}
