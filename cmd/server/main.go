package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"feedbackhub/internal/config"
	"feedbackhub/internal/metrics"
	"feedbackhub/internal/server"
	"feedbackhub/internal/store"
)

func main() {
	cfg := config.Load()

	options, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}

	// Initialize the flat-file record store
	recordStore := store.New(cfg.DataFile)
	if err := recordStore.Ping(); err != nil {
		log.Fatalf("Failed to open feedback store: %v", err)
	}

	count, err := recordStore.Count()
	if err != nil {
		log.Fatalf("Failed to read feedback store: %v", err)
	}
	log.Printf("Feedback store ready (%s, %d records)", cfg.DataFile, count)

	// The active company profile lives in memory until replaced by setup
	profiles := store.NewProfileHolder()

	// Register the store-backed metrics collector
	metrics.Init(recordStore)

	srv := server.New(cfg)
	srv.RegisterRoutes(recordStore, profiles, options)

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
