package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jellos/pykakuro/internal/kakuro"
	httpTransport "github.com/jellos/pykakuro/internal/transport/http"
	"github.com/jellos/pykakuro/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if ok, err := kakuro.LoadComboCache(cfg.CacheFile); err != nil {
		log.Printf("Warning: could not read combo cache from %s: %v", cfg.CacheFile, err)
	} else if ok {
		log.Printf("Loaded combination table cache from %s", cfg.CacheFile)
	}
	if err := kakuro.WarmComboCache(cfg.CacheFile); err != nil {
		log.Printf("Warning: could not persist combo cache to %s: %v", cfg.CacheFile, err)
	} else {
		log.Println("Combination table warmed")
	}

	r := gin.Default()

	httpTransport.RegisterRoutes(r, cfg)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("Starting server on port %s", port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
