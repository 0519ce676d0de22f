package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"shareit/internal/config"
	"shareit/internal/gateway"
	"shareit/internal/services"

	"github.com/spf13/viper"
)

func main() {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var authService *services.AuthService
	if cfg.GatewaySecret != "" {
		authService = services.NewAuthService(cfg.GatewaySecret, cfg.GatewayTokenTTL)
	}

	app := gateway.New(gateway.Config{
		ServerURL: cfg.ServerURL,
		Timeout:   cfg.GatewayTimeout,
		Auth:      authService,
	}).App()

	log.Printf("Starting gateway on port %s, forwarding to %s", cfg.GatewayPort, cfg.ServerURL)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.GatewayPort); err != nil {
			log.Fatalf("Gateway failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down gateway...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Gateway gracefully stopped")
}
