package routes

import (
	"github.com/gin-gonic/gin"

	"go-spillwatch/handlers"
	"go-spillwatch/scenario"
	"go-spillwatch/session"
)

func SetupRouter(store *scenario.Store, manager *session.Manager) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to Spillwatch!",
		})
	})

	// api routes
	api := r.Group("/api/spillwatch")
	{
		api.GET("/scenario", func(c *gin.Context) {
			handlers.GetScenario(c, store)
		})
		api.GET("/zones/:zoneID/context", func(c *gin.Context) {
			handlers.GetZoneContext(c, store)
		})
		api.GET("/geocode/:zoneID", func(c *gin.Context) {
			handlers.GeocodeZone(c, store)
		})

		sessions := api.Group("/sessions")
		{
			sessions.POST("", func(c *gin.Context) {
				handlers.CreateSession(c, manager)
			})
			sessions.GET("/:id", func(c *gin.Context) {
				handlers.GetSession(c, manager)
			})
			sessions.DELETE("/:id", func(c *gin.Context) {
				handlers.DeleteSession(c, manager)
			})
			sessions.POST("/:id/zone", func(c *gin.Context) {
				handlers.SelectZone(c, manager)
			})
			sessions.POST("/:id/spill", func(c *gin.Context) {
				handlers.SelectSpill(c, manager)
			})
			sessions.POST("/:id/click", func(c *gin.Context) {
				handlers.ResolveClick(c, manager)
			})
			sessions.POST("/:id/cleanup", func(c *gin.Context) {
				handlers.DispatchCleanup(c, manager)
			})
			sessions.POST("/:id/cleanup/complete", func(c *gin.Context) {
				handlers.CompleteCleanup(c, manager)
			})
			sessions.POST("/:id/chat", func(c *gin.Context) {
				handlers.SubmitChat(c, manager)
			})
			sessions.GET("/:id/status", func(c *gin.Context) {
				handlers.GetStatusTable(c, manager)
			})
			sessions.GET("/:id/events", func(c *gin.Context) {
				handlers.StreamSessionEvents(c, manager)
			})
		}
	}

	return r
}
