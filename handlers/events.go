package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"go-spillwatch/session"
)

// StreamSessionEvents pushes a state-changed event (with the fresh
// snapshot) to the client over SSE whenever the session mutates. The
// stream ends when the client disconnects or the session is discarded.
func StreamSessionEvents(c *gin.Context, m *session.Manager) {
	s, err := m.Get(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	ch, cancel := s.Subscribe()
	defer cancel()

	// Send the current state first so subscribers start in sync.
	c.SSEvent("state", s.Snapshot())
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case snap, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("state", snap)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
