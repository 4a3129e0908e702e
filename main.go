// File: goleironow/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"goleironow/config"
	"goleironow/database"
	"goleironow/database/repository"
	"goleironow/handlers"
	"goleironow/middleware"
	"goleironow/routes"
	goalkeeperSvc "goleironow/services/goalkeeper"
	reservationSvc "goleironow/services/reservation"
	sessionSvc "goleironow/services/session"
	"goleironow/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories. The memory driver is the seeded stand-in for a real
	// backend; mongo is the drop-in replacement.
	var (
		userRepo        repository.UserRepository
		gkRepo          repository.GoalkeeperRepository
		reservationRepo repository.ReservationRepository
	)
	if config.AppConfig.StorageDriver == "mongo" {
		database.InitDB()
		userRepo = repository.NewMongoUserRepo()
		gkRepo = repository.NewMongoGoalkeeperRepo()
		reservationRepo = repository.NewMongoReservationRepo()
	} else {
		latency := time.Duration(config.AppConfig.MockLatencyMS) * time.Millisecond
		userRepo = repository.NewMemoryUserRepo(database.SeedUsers(), latency)
		gkRepo = repository.NewMemoryGoalkeeperRepo(database.SeedGoalkeepers(), latency)
		reservationRepo = repository.NewMemoryReservationRepo(database.SeedReservations(), latency)
	}

	// Session store.
	var store sessionSvc.SessionStore
	if config.AppConfig.SessionStore == "memory" {
		store = sessionSvc.NewMemorySessionStore()
	} else {
		store = sessionSvc.NewRedisSessionStore(utils.GetSessionCacheClient())
	}

	// Services.
	sessionService := &sessionSvc.DefaultSessionService{
		Users:       userRepo,
		Goalkeepers: gkRepo,
		Store:       store,
		TTL:         time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute,
	}
	handlers.SetSessionService(sessionService)
	handlers.SetDirectories(userRepo, gkRepo)

	goalkeeperService := &goalkeeperSvc.DefaultGoalkeeperService{Repo: gkRepo}
	goalkeeperHandler := handlers.NewGoalkeeperHandler(goalkeeperService)

	reservationService := &reservationSvc.DefaultReservationService{
		Reservations: reservationRepo,
		Goalkeepers:  gkRepo,
	}
	reservationHandler := handlers.NewReservationHandler(reservationService)

	// Session restoration runs before every route so guards always see a
	// resolved session.
	router.Use(middleware.SessionMiddleware(sessionService))

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Auth endpoints.
		AuthenticateHandler: handlers.AuthenticateHandler,
		LogoutHandler:       handlers.LogoutHandler,
		SessionHandler:      handlers.SessionHandler,
		LoginOptionsHandler: handlers.LoginOptionsHandler,

		// Goalkeeper endpoints.
		ListGoalkeepersHandler:         goalkeeperHandler.ListGoalkeepersHandler,
		GetGoalkeeperByIDHandler:       goalkeeperHandler.GetGoalkeeperByIDHandler,
		RegisterGoalkeeperHandler:      goalkeeperHandler.RegisterGoalkeeperHandler,
		UpdateGoalkeeperProfileHandler: goalkeeperHandler.UpdateGoalkeeperProfileHandler,

		// Favorite endpoints.
		ToggleFavoriteHandler: handlers.ToggleFavoriteHandler,
		ListFavoritesHandler:  handlers.ListFavoritesHandler,
		FavoriteStatusHandler: handlers.FavoriteStatusHandler,

		// Reservation endpoints.
		CreateReservationHandler:       reservationHandler.CreateReservationHandler,
		MyReservationsHandler:          reservationHandler.MyReservationsHandler,
		ReceivedReservationsHandler:    reservationHandler.ReceivedReservationsHandler,
		UpdateReservationStatusHandler: reservationHandler.UpdateReservationStatusHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
