package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"roombook-backend/config"
	"roombook-backend/controllers"
	"roombook-backend/middleware"
)

// SetupRouter wires the engine: recovery, request logging, CORS and the
// reservation endpoints.
func SetupRouter(rc *controllers.ReservationController, cfg config.AppConfig, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))

	origins := cfg.CORSOrigins
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

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		reservations := api.Group("/reservations")
		{
			reservations.GET("", rc.GetReservations)
			reservations.POST("", rc.CreateReservation)

			// Fixed paths before /:id so they don't get captured.
			reservations.GET("/calendar", rc.GetCalendar)
			reservations.GET("/timeslots", rc.GetTimeSlots)

			reservations.GET("/:id", rc.GetReservationByID)
			reservations.PUT("/:id", rc.UpdateReservation)
			reservations.DELETE("/:id", rc.DeleteReservation)
		}
	}

	return r
}
