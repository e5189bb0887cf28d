package domain

import (
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
)

// DefaultDuration is the auto-dismiss delay for a toast of the given kind.
// Errors linger longest, warnings a bit less, the rest five seconds.
func DefaultDuration(kind Kind) time.Duration {
	switch kind {
	case KindError:
		return 7 * time.Second
	case KindWarning:
		return 6 * time.Second
	default:
		return 5 * time.Second
	}
}

// Notification is one transient board toast. It lives only in memory: it
// is appended on a store-operation outcome and removed when its duration
// elapses or it is dismissed. Never persisted.
type Notification struct {
	ID          uuid.UUID     `json:"id"`
	Kind        Kind          `json:"kind"`
	Title       string        `json:"title"`
	Body        string        `json:"body"`
	Duration    time.Duration `json:"duration"`
	AutoDismiss bool          `json:"autoDismiss"`
	CreatedAt   time.Time     `json:"createdAt"`
}
