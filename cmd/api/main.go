package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"manufacturer-api/internal/auth"
	"manufacturer-api/internal/client"
	"manufacturer-api/internal/config"
	"manufacturer-api/internal/repository"
	"manufacturer-api/internal/server"
	"manufacturer-api/internal/service"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	mongoClient := client.InitMongoClient(cfg.Mongo.URI)
	db := mongoClient.Database(cfg.Mongo.Database)

	stripeClient := client.NewStripeClient(&cfg.Stripe)
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)

	partRepo := repository.NewPartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	userRepo := repository.NewUserRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	policy := auth.NewRoleAuthorizer(userRepo)

	partService := service.NewPartService(partRepo)
	reviewService := service.NewReviewService(reviewRepo)
	orderService := service.NewOrderService(orderRepo)
	userService := service.NewUserService(userRepo, tokens)
	profileService := service.NewProfileService(profileRepo)
	paymentService := service.NewPaymentService(stripeClient, paymentRepo, orderRepo)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(
		tokens, policy,
		partService,
		reviewService,
		orderService,
		userService,
		profileService,
		paymentService,
	)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Println("mongo disconnect error:", err)
	}

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
