package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/greenroots/treefund-backend/api/routes"
	"github.com/greenroots/treefund-backend/internal/config"
	"github.com/greenroots/treefund-backend/internal/handlers"
	"github.com/greenroots/treefund-backend/internal/repositories"
	mongorepo "github.com/greenroots/treefund-backend/internal/repositories/mongodb"
	"github.com/greenroots/treefund-backend/internal/services"
	"github.com/greenroots/treefund-backend/pkg/mongodb"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Repositories
	var userRepo repositories.UserRepository = mongorepo.NewUserRepository(db)
	var donationRepo repositories.DonationRepository = mongorepo.NewDonationRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, cfg)
	donationService := services.NewDonationService(donationRepo, userRepo)
	statsService := services.NewStatsService(donationRepo, cfg.Donation.TreeUnitAmount, cfg.Donation.TopDonorsLimit)

	// Handlers
	handlerDeps := routes.HandlerDependencies{
		AuthHandler:     handlers.NewAuthHandler(authService),
		DonationHandler: handlers.NewDonationHandler(donationService),
		StatsHandler:    handlers.NewStatsHandler(statsService),
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
