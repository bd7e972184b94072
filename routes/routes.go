package routes

import (
	"net/http"

	"homebook/handlers"
	"homebook/utils"

	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the service-catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine) {
	api := r.Group("/api/services")
	{
		api.GET("", handlers.ListServices)
		api.GET("/:id", handlers.GetService)
		api.GET("/:id/variants", handlers.ListVariants)
	}
	r.GET("/api/variants/:id", handlers.GetVariant)
}

// RegisterBookingRoutes registers all endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine) {
	booking := r.Group("/api/booking")
	{
		booking.POST("/validate", handlers.ValidateBookingFields) // advisory form validation
		booking.POST("/quote", handlers.QuoteBooking)             // price without persisting
		booking.POST("", handlers.CreateBooking)                  // build, price and store
		booking.GET("/customer/:id", handlers.GetCustomerBookings)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}
