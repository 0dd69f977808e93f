package main

import (
	"github.com/hibiken/asynq"

	userJob "foodee-backend/internal/domains/user/job"
	"foodee-backend/internal/infrastructure/email"
	emailJob "foodee-backend/internal/infrastructure/email/job"
	"foodee-backend/internal/shared"
	"foodee-backend/pkg/container"
)

// HandlerRegistry giữ toàn bộ job handler của worker
type HandlerRegistry struct {
	resetMail *emailJob.ResetMailJob
	cleanup   *userJob.CleanupExpiredTokenHandler
}

// Worker luôn gửi SMTP trực tiếp; container.Mailer có thể là bản đẩy queue
func initializeHandlers(c *container.Container, cfg *workerConfig) *HandlerRegistry {
	mailer := email.NewSMTPEmailService(cfg.Email)

	return &HandlerRegistry{
		resetMail: emailJob.NewResetMailJob(mailer),
		cleanup:   userJob.NewCleanupExpiredTokenHandler(c.UserService),
	}
}

func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	// Email
	mux.HandleFunc(shared.TypeSendResetEmail, h.resetMail.Handle)

	// Maintenance
	mux.HandleFunc(shared.TypeCleanupExpiredTokens, h.cleanup.ProcessTask)
}
