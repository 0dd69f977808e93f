package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"foodee-backend/internal/infrastructure/email"
	"foodee-backend/internal/shared"
	"foodee-backend/pkg/logger"
)

// TaskEnqueuer là phần của *asynq.Client mà API cần
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

func NewClient(redisAddr, redisPassword string, db int) *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})
}

// QueuedEmailService implement email.EmailService bằng cách đẩy task cho worker
// API không phải chờ SMTP
type QueuedEmailService struct {
	client TaskEnqueuer
}

func NewQueuedEmailService(client TaskEnqueuer) *QueuedEmailService {
	return &QueuedEmailService{client: client}
}

var _ email.EmailService = (*QueuedEmailService)(nil)

func (s *QueuedEmailService) SendResetPasswordEmail(ctx context.Context, data email.ResetPasswordData) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeSendResetEmail, payload)
	info, err := s.client.EnqueueContext(ctx, task,
		asynq.Queue(shared.QueueDefault),
		asynq.MaxRetry(3),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		return fmt.Errorf("enqueue reset password email: %w", err)
	}

	logger.Debug("Enqueued reset password email", map[string]interface{}{
		"task_id": info.ID,
		"queue":   info.Queue,
	})
	return nil
}
