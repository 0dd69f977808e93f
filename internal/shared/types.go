package shared

// Asynq task types và queues dùng chung giữa API và worker
const (
	TypeSendResetEmail       = "email:reset_password"
	TypeCleanupExpiredTokens = "auth:cleanup_expired_tokens"

	QueueDefault = "default"
	QueueLow     = "low"
)

// CleanupExpiredTokensPayload - scheduled job, không cần dữ liệu
type CleanupExpiredTokensPayload struct{}
