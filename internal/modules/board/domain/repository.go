package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MessageRepository is the remote store adapter for the messages table.
type MessageRepository interface {
	// List returns all messages ordered by creation time descending.
	List(ctx context.Context) ([]Message, error)
	// Insert creates a row and returns the stored entity with its
	// server-assigned id and creation timestamp.
	Insert(ctx context.Context, draft MessageDraft) (*Message, error)
	// Update rewrites the mutable content fields of the row with the
	// given id. Assignment columns are untouched.
	Update(ctx context.Context, m Message) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Assign sets assigned_to and assigned_at together.
	Assign(ctx context.Context, id uuid.UUID, memberName string, at time.Time) error
	// Unassign clears assigned_to and assigned_at together.
	Unassign(ctx context.Context, id uuid.UUID) error
	// DeleteAll removes every message row.
	DeleteAll(ctx context.Context) error
}

// TeamMemberRepository reads assignment targets. Members are managed
// externally; only active ones are offered on the board.
type TeamMemberRepository interface {
	ListActive(ctx context.Context) ([]TeamMember, error)
}

// PriorityAlertRepository manages the singleton banner row.
type PriorityAlertRepository interface {
	// Get returns the singleton alert, or ErrAlertNotFound when no row
	// exists yet. Absence is an expected condition, not a failure.
	Get(ctx context.Context) (*PriorityAlert, error)
	// Upsert creates or replaces the singleton row, never a second one.
	Upsert(ctx context.Context, alert PriorityAlert) error
}
