package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-spillwatch/session"
)

// SubmitChat runs one chat turn against the assistant. The response
// always carries the user/assistant pair; a gateway failure shows up as
// fallback text inside the assistant entry, not as an HTTP error.
func SubmitChat(c *gin.Context, m *session.Manager) {
	var request struct {
		Question string `json:"question" binding:"required"`
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

	pair, err := s.SubmitChatTurn(c.Request.Context(), request.Question)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages":   pair,
		"transcript": s.Transcript(),
	})
}
