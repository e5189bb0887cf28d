package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Priority string

const (
	PriorityLevel1 Priority = "level1"
	PriorityLevel2 Priority = "level2"
	PriorityLevel3 Priority = "level3"
)

// IsValid reports whether p is one of the three known levels.
func (p Priority) IsValid() bool {
	return p == PriorityLevel1 || p == PriorityLevel2 || p == PriorityLevel3
}

// Message is a unit of communication on the board. Assignment fields are
// pointer-typed: absent means unassigned. AssignedTo and AssignedAt are
// always set and cleared together. ReadBy is process-local state and is
// never persisted; a reload resets it.
type Message struct {
	ID          uuid.UUID
	Title       string
	Description string
	Priority    Priority
	Sender      string
	IsFlashing  bool
	AssignedTo  *string
	AssignedAt  *time.Time
	ClientName  *string
	DealerName  *string
	ReadBy      []string
	CreatedAt   time.Time
}

// IsAssigned reports whether the message is currently assigned.
func (m *Message) IsAssigned() bool {
	return m.AssignedTo != nil
}

// IsClient reports whether this is a client-type message (carries a client
// or dealer name), which gates SMS dispatch on assignment.
func (m *Message) IsClient() bool {
	return m.ClientName != nil || m.DealerName != nil
}

// MessageDraft is the caller-provided part of a new message. The store does
// no validation on it; title normalization belongs to the composer.
type MessageDraft struct {
	Title       string
	Description string
	Priority    Priority
	Sender      string
	IsFlashing  bool
	ClientName  *string
	DealerName  *string
}

// TeamMember is an assignment target. Assignment is stored by name, not id.
// Lifecycle is managed externally; this system only reads active members.
type TeamMember struct {
	ID          uuid.UUID
	Name        string
	Active      bool
	PhoneNumber *string
	CreatedAt   time.Time
}

type AlertColor string

const (
	AlertColorRed   AlertColor = "red"
	AlertColorGreen AlertColor = "green"
)

// PriorityAlert is the single process-wide banner state, one logical row.
type PriorityAlert struct {
	Active  bool
	Message string
	Color   AlertColor
}

// DefaultPriorityAlert is the value used whenever no alert row exists.
func DefaultPriorityAlert() PriorityAlert {
	return PriorityAlert{Active: false, Message: "", Color: AlertColorRed}
}

// SMSRequest is the payload sent to the SMS dispatch function when a
// client-type message is assigned to a member with a phone number.
type SMSRequest struct {
	MemberName  string `json:"memberName"`
	PhoneNumber string `json:"phoneNumber"`
	ClientName  string `json:"clientName"`
	DealerName  string `json:"dealerName"`
}

var (
	ErrMessageNotFound = errors.New("message not found")
	ErrAlertNotFound   = errors.New("priority alert not found")
	ErrInvalidPriority = errors.New("invalid priority level")
)
