package main

import (
	"context"

	"github.com/hibiken/asynq"

	"foodee-backend/internal/shared"
	"foodee-backend/pkg/logger"
)

type asynqServer struct {
	*asynq.Server
}

func setupAsynqServer(cfg *workerConfig, handlers *HandlerRegistry) *asynqServer {
	mux := asynq.NewServeMux()
	handlers.RegisterHandlers(mux)

	srv := asynq.NewServer(
		cfg.Redis,
		asynq.Config{
			Queues: map[string]int{
				shared.QueueDefault: 10,
				shared.QueueLow:     5,
			},
			Concurrency: cfg.Concurrency,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.ErrorWithFields("Task failed", err, map[string]interface{}{
					"task_type": task.Type(),
				})
			}),
		},
	)

	go func() {
		logger.Info("Worker starting", nil)
		if err := srv.Run(mux); err != nil {
			logger.Fatal("Worker failed", err)
		}
	}()

	return &asynqServer{Server: srv}
}

// Shutdown chờ task đang chạy xong (asynq mặc định ShutdownTimeout 8s)
func (s *asynqServer) Shutdown() {
	logger.Info("Worker shutting down", nil)
	s.Server.Shutdown()
	logger.Info("Worker stopped", nil)
}
