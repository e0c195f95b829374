package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Slots(c *ginext.Context)
	DeviceAvailability(c *ginext.Context)
	CalculatePrice(c *ginext.Context)
	CreateReservation(c *ginext.Context)
	ListReservations(c *ginext.Context)
	UpdateReservation(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	CreateClosure(c *ginext.Context)
	ListClosures(c *ginext.Context)
	DeleteClosure(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Availability
		api.GET("/slots", h.Slots)
		api.GET("/availability", h.DeviceAvailability)

		// Pricing
		api.POST("/price", h.CalculatePrice)

		// Reservations
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations", h.ListReservations)
		api.PATCH("/reservations/:id", h.UpdateReservation)
		api.DELETE("/reservations/:id", h.CancelReservation)

		// Closures
		api.POST("/closures", h.CreateClosure)
		api.GET("/closures", h.ListClosures)
		api.DELETE("/closures/:id", h.DeleteClosure)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
