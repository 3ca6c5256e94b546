package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	ListPendingBookings(c *ginext.Context)
	ApproveBooking(c *ginext.Context)
	RejectBooking(c *ginext.Context)
	ListProviders(c *ginext.Context)
	GetEnums(c *ginext.Context)
	ListSatellites(c *ginext.Context)
	ListGroundStations(c *ginext.Context)
	ListActivityScopes(c *ginext.Context)
	ListContacts(c *ginext.Context)
	ListProviderBookings(c *ginext.Context)
	ReserveContact(c *ginext.Context)
	CancelReservation(c *ginext.Context)
}

type HealthChecker func() bool

func InitRouter(mode string, h Handler, storeReady HealthChecker, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Catalog
		api.GET("/enums", h.GetEnums)
		api.GET("/providers", h.ListProviders)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/pending", h.ListPendingBookings)
		api.POST("/bookings/:id/approve", h.ApproveBooking)
		api.POST("/bookings/:id/reject", h.RejectBooking)

		// Provider surface
		provider := api.Group("/providers/:provider")
		{
			provider.GET("/satellites", h.ListSatellites)
			provider.GET("/groundstations", h.ListGroundStations)
			provider.GET("/satellites/:satelliteId/activityscopes", h.ListActivityScopes)
			provider.GET("/contacts", h.ListContacts)
			provider.GET("/bookings", h.ListProviderBookings)
			provider.POST("/reserve", h.ReserveContact)
			provider.POST("/bookings/cancel", h.CancelReservation)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		if storeReady != nil && !storeReady() {
			c.JSON(http.StatusOK, ginext.H{"status": "degraded", "store": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
