package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"lenscraft-server/internal/client"
	"lenscraft-server/internal/config"
	"lenscraft-server/internal/logger"
	"lenscraft-server/internal/repository"
	"lenscraft-server/internal/server"
	"lenscraft-server/internal/service"
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

	log := logger.New(cfg.Log, os.Stdout)

	db, err := client.InitDBClient(cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", "driver", cfg.Database.Driver, "err", err)
	}
	defer func() {
		if err := client.CloseDBClient(db); err != nil {
			log.Error("close database", "err", err)
		}
	}()

	gateway := client.NewBraintreeClient(&cfg.BrainTree)

	userRepo := repository.NewUserRepository(db)
	classRepo := repository.NewClassRepository(db)
	cartRepo := repository.NewCartRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	srv := server.NewServer(log, server.Services{
		Users:      service.NewUserService(userRepo),
		Tokens:     service.NewTokenService(cfg.Auth.SecretKey, cfg.Auth.TTL),
		Catalog:    service.NewCatalogService(db, log, classRepo),
		Cart:       service.NewCartService(db, log, classRepo, cartRepo, paymentRepo),
		Views:      service.NewViewService(cartRepo, paymentRepo),
		Enrollment: service.NewEnrollmentService(db, log, classRepo, cartRepo, paymentRepo),
		Payments:   service.NewPaymentService(gateway, cfg.Payment.Currency),
	})

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	log.Info("Starting HTTP server", "addr", serverAddr, "env", cfg.Environment.Name)
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(serverAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-sigChan:
		log.Info("Signal received, starting graceful shutdown...")
	case err := <-serverErr:
		log.Error("HTTP server error", "err", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "err", err)
	}
}
