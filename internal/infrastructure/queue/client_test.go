package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodee-backend/internal/infrastructure/email"
	"foodee-backend/internal/shared"
)

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{ID: "t1", Queue: shared.QueueDefault}, nil
}

func TestQueuedEmailServiceEnqueuesPayload(t *testing.T) {
	q := &fakeEnqueuer{}
	svc := NewQueuedEmailService(q)

	data := email.ResetPasswordData{Email: "a@b.vn", FullName: "An", ResetURL: "http://x/reset-password?token=t", ExpiresIn: "30 phút"}
	require.NoError(t, svc.SendResetPasswordEmail(context.Background(), data))

	require.Len(t, q.tasks, 1)
	assert.Equal(t, shared.TypeSendResetEmail, q.tasks[0].Type())

	var got email.ResetPasswordData
	require.NoError(t, json.Unmarshal(q.tasks[0].Payload(), &got))
	assert.Equal(t, data, got)
}

func TestQueuedEmailServiceEnqueueError(t *testing.T) {
	svc := NewQueuedEmailService(&fakeEnqueuer{err: errors.New("redis down")})
	err := svc.SendResetPasswordEmail(context.Background(), email.ResetPasswordData{Email: "a@b.vn"})
	assert.Error(t, err)
}
