package models

// Security event kinds published to Kafka.
const (
	EventLoginFailed     = "login_failed"
	EventAccountLocked   = "account_locked"
	EventPasswordChanged = "password_changed"
	EventUserDeleted     = "user_deleted"
)

// SecurityEvent describes an account-security state change.
type SecurityEvent struct {
	EventID   string `json:"event_id"`
	Timestamp int64  `json:"timestamp"`
	Kind      string `json:"kind"`
	UserID    string `json:"user_id,omitempty"`
	Email     string `json:"email,omitempty"`
}
