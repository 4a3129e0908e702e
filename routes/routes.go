package routes

import (
	"net/http"
	"time"

	"goleironow/handlers"
	"goleironow/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers login, logout and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.AuthenticateHandler)
		api.POST("/logout", hb.LogoutHandler)
		api.GET("/options", hb.LoginOptionsHandler)

		api.GET("/session", middleware.AuthenticatedOnly(), hb.SessionHandler)
	}
}

// RegisterGoalkeeperRoutes registers browsing and profile management
// endpoints. Browsing is public; profile updates are goalkeeper-only.
func RegisterGoalkeeperRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/goalkeepers")
	{
		api.GET("", hb.ListGoalkeepersHandler)
		api.GET("/:id", hb.GetGoalkeeperByIDHandler)
		api.POST("/register", hb.RegisterGoalkeeperHandler)

		api.PATCH("/me", middleware.GoalkeeperOnly(), hb.UpdateGoalkeeperProfileHandler)
	}
}

// RegisterFavoriteRoutes registers the client-only favorites endpoints.
func RegisterFavoriteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/favorites")
	{
		// Status is readable by anyone; it just answers false outside a
		// client session.
		api.GET("/:goalkeeperId", hb.FavoriteStatusHandler)

		api.GET("", middleware.ClientOnly(), hb.ListFavoritesHandler)
		api.POST("/:goalkeeperId/toggle", middleware.ClientOnly(), hb.ToggleFavoriteHandler)
	}
}

// RegisterReservationRoutes registers reservation endpoints.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reservations")
	{
		api.POST("", middleware.ClientOnly(), hb.CreateReservationHandler)
		api.GET("/mine", middleware.ClientOnly(), hb.MyReservationsHandler)
		api.GET("/received", middleware.GoalkeeperOnly(), hb.ReceivedReservationsHandler)

		// The service decides per role which transitions are legal.
		api.PUT("/:id/status", middleware.AuthenticatedOnly(), hb.UpdateReservationStatusHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm GoleiroNow"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Unmatched paths point home instead of surfacing a raw not-found.
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"redirect": "/"})
	})

	RegisterAuthRoutes(r, hb)
	RegisterGoalkeeperRoutes(r, hb)
	RegisterFavoriteRoutes(r, hb)
	RegisterReservationRoutes(r, hb)
	RegisterHealthRoute(r)
}
