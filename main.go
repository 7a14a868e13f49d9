package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"hotel-management-backend/config"
	"hotel-management-backend/controllers"
	"hotel-management-backend/routes"
	"hotel-management-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		logrus.Info(".env not found or couldn't load it; continuing with environment variables")
	}

	settings, err := config.Load()
	if err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	db, err := config.ConnectDatabase(settings)
	if err != nil {
		logrus.Fatalf("database connect failed: %v", err)
	}
	logrus.Info("database connection established and migrations applied")

	hotelService := services.NewHotelService(db)

	roomController := controllers.NewRoomController(hotelService)
	bookingController := controllers.NewBookingController(hotelService)
	rentalController := controllers.NewRentalController(hotelService)
	statisticsController := controllers.NewStatisticsController(hotelService)

	router := routes.SetupRouter(settings, roomController, bookingController, rentalController, statisticsController)

	addr := ":" + settings.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logrus.Infof("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt, then shut down with a deadline
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logrus.Info("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("server forced to shutdown: %v", err)
	}

	logrus.Info("server stopped gracefully")
}
