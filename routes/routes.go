package routes

import (
	"net/http"
	"time"

	"karoo/handlers"
	"karoo/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects the handlers the router wires up.
type HandlerBundle struct {
	Booking *handlers.BookingHandler
	Tour    *handlers.TourHandler
	Review  *handlers.ReviewHandler
}

// RegisterBookingRoutes registers the booking intake pipeline and the
// payment gateway callback endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.CreateBooking)
		api.POST("/notify", hb.Booking.Notify)
		api.GET("/success", hb.Booking.PaymentSuccess)
		api.GET("/cancel", hb.Booking.PaymentCancel)
	}
}

// RegisterTourRoutes registers the tour catalog endpoints.
func RegisterTourRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/tours")
	{
		api.POST("", hb.Tour.CreateTourHandler)
		api.GET("", hb.Tour.GetToursHandler)
		api.GET("/counts-by-location", hb.Tour.CountsByLocationHandler)
		api.GET("/:id", hb.Tour.GetTourByIDHandler)
		api.PUT("/:id", hb.Tour.UpdateTourHandler)
		api.DELETE("/:id", hb.Tour.DeleteTourHandler)
	}
}

// RegisterReviewRoutes registers the review forwarding endpoint.
func RegisterReviewRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.POST("/api/reviews", hb.Review.SubmitReview)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterTourRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterHealthRoute(r)
}
