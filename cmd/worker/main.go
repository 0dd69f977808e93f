package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"foodee-backend/pkg/container"
	"foodee-backend/pkg/logger"
)

func main() {
	envFileErr := godotenv.Load()
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)
	if envFileErr != nil {
		logger.Warn("No .env file found, using system environment variables", nil)
	}

	c, err := container.NewContainer()
	if err != nil {
		logger.Fatal("Failed to initialize container", err)
	}
	defer c.Cleanup()

	cfg := loadWorkerConfig(c.Config)

	if err := startServices(cfg); err != nil {
		logger.Fatal("Startup health check failed", err)
	}

	handlers := initializeHandlers(c, cfg)
	srv := setupAsynqServer(cfg, handlers)
	scheduler := setupScheduler(cfg)

	waitForShutdown(srv, scheduler)
}

func waitForShutdown(srv *asynqServer, scheduler *asynqScheduler) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Gracefully stopping", nil)
	scheduler.Shutdown()
	srv.Shutdown()
}
