package main

import (
	"os"

	"github.com/hibiken/asynq"

	"foodee-backend/internal/config"
	"foodee-backend/pkg/logger"
)

// workerConfig - phần config worker cần, lấy từ config chung
type workerConfig struct {
	Redis       asynq.RedisClientOpt
	Email       config.EmailConfig
	Concurrency int
	HealthAddr  string
}

func loadWorkerConfig(cfg *config.Config) *workerConfig {
	wc := &workerConfig{
		Redis: asynq.RedisClientOpt{
			Addr:     cfg.Redis.Host,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		Email:       cfg.Email,
		Concurrency: cfg.Queue.Concurrency,
		HealthAddr:  ":9999",
	}
	if wc.Concurrency <= 0 {
		wc.Concurrency = 10
	}
	if port := os.Getenv("WORKER_HEALTH_PORT"); port != "" {
		wc.HealthAddr = ":" + port
	}

	logger.Info("Worker config loaded", map[string]interface{}{
		"redis":       wc.Redis.Addr,
		"concurrency": wc.Concurrency,
		"health_addr": wc.HealthAddr,
	})
	return wc
}
