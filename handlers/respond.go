package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-spillwatch/scenario"
	"go-spillwatch/session"
)

// statusFor maps the domain error taxonomy onto HTTP statuses: unknown
// ids are 404, rejected transitions and missing selections are 409.
func statusFor(err error) int {
	switch {
	case errors.Is(err, scenario.ErrNotFound), errors.Is(err, session.ErrUnknownSession):
		return http.StatusNotFound
	case errors.Is(err, session.ErrInvalidTransition), errors.Is(err, session.ErrNoSelection):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}
