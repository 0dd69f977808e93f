package job

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"foodee-backend/internal/domains/user"
	"foodee-backend/pkg/logger"
)

// CleanupExpiredTokenHandler xử lý shared.TypeCleanupExpiredTokens
type CleanupExpiredTokenHandler struct {
	service user.Service
}

func NewCleanupExpiredTokenHandler(service user.Service) *CleanupExpiredTokenHandler {
	return &CleanupExpiredTokenHandler{service: service}
}

func (h *CleanupExpiredTokenHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	log.Info().Str("task", task.Type()).Msg("Starting cleanup of expired reset tokens")

	deleted, err := h.service.CleanupExpiredTokens(ctx)
	if err != nil {
		logger.Error("Delete expired reset tokens failed", err)
		return err
	}

	log.Info().
		Int64("reset_tokens_deleted", deleted).
		Msg("Successfully cleaned up expired tokens")

	return nil
}
