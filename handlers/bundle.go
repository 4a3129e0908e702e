package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every route handler for registration.
type HandlerBundle struct {
	// Auth endpoints.
	AuthenticateHandler gin.HandlerFunc
	LogoutHandler       gin.HandlerFunc
	SessionHandler      gin.HandlerFunc
	LoginOptionsHandler gin.HandlerFunc

	// Goalkeeper endpoints.
	ListGoalkeepersHandler         gin.HandlerFunc
	GetGoalkeeperByIDHandler       gin.HandlerFunc
	RegisterGoalkeeperHandler      gin.HandlerFunc
	UpdateGoalkeeperProfileHandler gin.HandlerFunc

	// Favorite endpoints.
	ToggleFavoriteHandler gin.HandlerFunc
	ListFavoritesHandler  gin.HandlerFunc
	FavoriteStatusHandler gin.HandlerFunc

	// Reservation endpoints.
	CreateReservationHandler       gin.HandlerFunc
	MyReservationsHandler          gin.HandlerFunc
	ReceivedReservationsHandler    gin.HandlerFunc
	UpdateReservationStatusHandler gin.HandlerFunc
}
