package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	EventSummary(c *ginext.Context)
	CreateTicketKind(c *ginext.Context)
	ListTicketKinds(c *ginext.Context)
	ListAvailableTicketKinds(c *ginext.Context)
	GetTicketKind(c *ginext.Context)
	TicketKindSummary(c *ginext.Context)
	Reserve(c *ginext.Context)
	GetReservation(c *ginext.Context)
	Pay(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	// Events
	router.POST("/events", h.CreateEvent)
	router.GET("/events", h.ListEvents)
	router.GET("/events/:id", h.GetEvent)
	router.GET("/events/:id/summary", h.EventSummary)

	// Ticket kinds
	router.POST("/ticket-kinds", h.CreateTicketKind)
	router.GET("/ticket-kinds", h.ListTicketKinds)
	router.GET("/ticket-kinds/available", h.ListAvailableTicketKinds)
	router.GET("/ticket-kinds/:id", h.GetTicketKind)
	router.GET("/ticket-kinds/:id/summary", h.TicketKindSummary)
	router.POST("/ticket-kinds/:id/reserve", h.Reserve)

	// Reservations
	router.GET("/reservations/:id", h.GetReservation)
	router.POST("/reservations/:id/pay", h.Pay)

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
