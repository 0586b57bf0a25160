package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateUser(c *ginext.Context)
	GetUser(c *ginext.Context)
	ListUsers(c *ginext.Context)

	CreateEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	ListMyEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	PublishEvent(c *ginext.Context)
	RejectEvent(c *ginext.Context)

	CreateRequest(c *ginext.Context)
	ListMyRequests(c *ginext.Context)
	CancelRequest(c *ginext.Context)
	ListEventRequests(c *ginext.Context)
	ReviewRequests(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)

		// Initiator's events
		api.POST("/users/:id/events", h.CreateEvent)
		api.GET("/users/:id/events", h.ListMyEvents)
		api.PATCH("/users/:id/events/:eventId", h.UpdateEvent)

		// Request review by the initiator
		api.GET("/users/:id/events/:eventId/requests", h.ListEventRequests)
		api.PATCH("/users/:id/events/:eventId/requests", h.ReviewRequests)

		// Requester's own requests
		api.POST("/users/:id/requests", h.CreateRequest)
		api.GET("/users/:id/requests", h.ListMyRequests)
		api.PATCH("/users/:id/requests/:reqId/cancel", h.CancelRequest)

		// Public events
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)

		// Admin moderation
		api.PATCH("/admin/events/:id/publish", h.PublishEvent)
		api.PATCH("/admin/events/:id/reject", h.RejectEvent)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
