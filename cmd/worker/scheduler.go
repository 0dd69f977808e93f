package main

import (
	"foodee-backend/internal/infrastructure/queue"
	"foodee-backend/pkg/logger"
)

type asynqScheduler struct {
	*queue.Scheduler
}

func setupScheduler(cfg *workerConfig) *asynqScheduler {
	scheduler := queue.NewScheduler(cfg.Redis)

	if err := scheduler.RegisterJobs(); err != nil {
		logger.Fatal("Failed to register scheduled jobs", err)
	}

	go func() {
		logger.Info("Scheduler starting", nil)
		if err := scheduler.Start(); err != nil {
			logger.Fatal("Scheduler failed", err)
		}
	}()

	return &asynqScheduler{Scheduler: scheduler}
}

func (s *asynqScheduler) Shutdown() {
	logger.Info("Scheduler shutting down", nil)
	s.Scheduler.Shutdown()
}
