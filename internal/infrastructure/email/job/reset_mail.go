package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hibiken/asynq"

	"foodee-backend/internal/infrastructure/email"
	"foodee-backend/pkg/logger"
)

var errNoRecipient = errors.New("reset mail task has no recipient")

// ResetMailJob gửi mail đặt lại mật khẩu từ task trong queue
type ResetMailJob struct {
	mailer email.EmailService
}

func NewResetMailJob(mailer email.EmailService) *ResetMailJob {
	return &ResetMailJob{mailer: mailer}
}

// Handle trả SkipRetry khi payload hỏng; lỗi SMTP để asynq retry
func (j *ResetMailJob) Handle(ctx context.Context, task *asynq.Task) error {
	data, err := decodeResetMail(task.Payload())
	if err != nil {
		logger.ErrorWithFields("Dropping reset mail task", err, taskFields(ctx, ""))
		return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
	}

	if err := j.mailer.SendResetPasswordEmail(ctx, data); err != nil {
		logger.ErrorWithFields("Reset mail not delivered", err, taskFields(ctx, data.Email))
		return fmt.Errorf("deliver reset mail to %s: %w", data.Email, err)
	}

	logger.Info("Reset mail delivered", taskFields(ctx, data.Email))
	return nil
}

func decodeResetMail(payload []byte) (email.ResetPasswordData, error) {
	var data email.ResetPasswordData
	if err := json.Unmarshal(payload, &data); err != nil {
		return data, fmt.Errorf("decode reset mail payload: %w", err)
	}
	if strings.TrimSpace(data.Email) == "" {
		return data, errNoRecipient
	}
	return data, nil
}

func taskFields(ctx context.Context, recipient string) map[string]interface{} {
	fields := map[string]interface{}{}
	if id, ok := asynq.GetTaskID(ctx); ok {
		fields["task_id"] = id
	}
	if n, ok := asynq.GetRetryCount(ctx); ok {
		fields["attempt"] = n + 1
	}
	if recipient != "" {
		fields["to"] = recipient
	}
	return fields
}
