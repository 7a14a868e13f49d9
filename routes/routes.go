package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-management-backend/config"
	"hotel-management-backend/controllers"
	"hotel-management-backend/middleware"
)

// SetupRouter wires every endpoint onto a gin engine. Static segments like
// /rooms/free are registered before the :number param route.
func SetupRouter(
	settings *config.Settings,
	roomController *controllers.RoomController,
	bookingController *controllers.BookingController,
	rentalController *controllers.RentalController,
	statisticsController *controllers.StatisticsController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	origins := settings.CORSOrigins
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to " + config.AppName,
			"version": config.AppVersion,
			"docs":    "/docs",
			"redoc":   "/redoc",
		})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	rooms := r.Group("/rooms")
	{
		rooms.POST("", roomController.CreateRoom)
		rooms.GET("", roomController.GetRooms)
		rooms.GET("/free", roomController.GetFreeRooms)
		rooms.GET("/:number", roomController.GetRoomByNumber)
	}

	bookings := r.Group("/bookings")
	{
		bookings.POST("", bookingController.CreateBooking)
		bookings.GET("", bookingController.GetBookings)
		bookings.DELETE("/:id", bookingController.DeleteBooking)
	}

	rentals := r.Group("/rentals")
	{
		rentals.POST("", rentalController.CreateRental)
		rentals.GET("", rentalController.GetRentals)
		rentals.PUT("/:id/complete", rentalController.CompleteRental)
	}

	statistics := r.Group("/statistics")
	{
		statistics.GET("", statisticsController.GetStatistics)
	}

	return r
}
