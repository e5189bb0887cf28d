package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/wxpress/salesboard/internal/modules/board/domain"
)

// MessageResponse carries both the raw timestamps and the French display
// strings the board renders, so displays never format dates themselves.
type MessageResponse struct {
	ID                uuid.UUID       `json:"id"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	Priority          domain.Priority `json:"priority"`
	Sender            string          `json:"sender"`
	IsFlashing        bool            `json:"is_flashing"`
	AssignedTo        *string         `json:"assigned_to,omitempty"`
	AssignedAt        *time.Time      `json:"assigned_at,omitempty"`
	AssignedAtDisplay string          `json:"assigned_at_display,omitempty"`
	ClientName        *string         `json:"client_name,omitempty"`
	DealerName        *string         `json:"dealer_name,omitempty"`
	ReadBy            []string        `json:"read_by"`
	CreatedAt         time.Time       `json:"created_at"`
	CreatedAtDisplay  string          `json:"created_at_display"`
}

func toMessageResponse(m domain.Message) MessageResponse {
	resp := MessageResponse{
		ID:               m.ID,
		Title:            m.Title,
		Description:      m.Description,
		Priority:         m.Priority,
		Sender:           m.Sender,
		IsFlashing:       m.IsFlashing,
		AssignedTo:       m.AssignedTo,
		AssignedAt:       m.AssignedAt,
		ClientName:       m.ClientName,
		DealerName:       m.DealerName,
		ReadBy:           m.ReadBy,
		CreatedAt:        m.CreatedAt,
		CreatedAtDisplay: domain.FormatCreatedAt(m.CreatedAt),
	}
	if m.AssignedAt != nil {
		resp.AssignedAtDisplay = domain.FormatAssignedAt(*m.AssignedAt)
	}
	return resp
}

func toMessageResponses(messages []domain.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, toMessageResponse(m))
	}
	return out
}

type TeamMemberResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	HasPhone bool      `json:"has_phone"`
}

func toTeamMemberResponses(members []domain.TeamMember) []TeamMemberResponse {
	out := make([]TeamMemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, TeamMemberResponse{
			ID:       m.ID,
			Name:     m.Name,
			HasPhone: m.PhoneNumber != nil && *m.PhoneNumber != "",
		})
	}
	return out
}

type PriorityAlertDTO struct {
	Active  bool              `json:"active"`
	Message string            `json:"message"`
	Color   domain.AlertColor `json:"color"`
}

// BoardResponse is the wall display payload: the banner, the headline
// counters, and the unassigned messages grouped by priority in fixed
// render order (urgent first, empty buckets omitted from rendering but
// always present in the payload).
type BoardResponse struct {
	Alert   PriorityAlertDTO                       `json:"alert"`
	Summary SummaryResponse                        `json:"summary"`
	Groups  map[domain.Priority][]MessageResponse `json:"groups"`
}

type SummaryResponse struct {
	Assigned      int `json:"assigned"`
	Pending       int `json:"pending"`
	ActiveMembers int `json:"active_members"`
	Total         int `json:"total"`
}

type MemberStatResponse struct {
	Name     string            `json:"name"`
	Count    int               `json:"count"`
	Messages []MessageResponse `json:"messages"`
}

// CreateMessageRequest is the composer payload. An empty title is
// normalized at this boundary, not in the store. Banner couples the
// message with a priority alert upsert.
type CreateMessageRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Priority    domain.Priority   `json:"priority"`
	Sender      string            `json:"sender"`
	IsFlashing  bool              `json:"is_flashing"`
	ClientName  *string           `json:"client_name,omitempty"`
	DealerName  *string           `json:"dealer_name,omitempty"`
	Banner      bool              `json:"banner"`
	BannerColor domain.AlertColor `json:"banner_color,omitempty"`
}

type UpdateMessageRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Priority    domain.Priority `json:"priority"`
	Sender      string          `json:"sender"`
	IsFlashing  bool            `json:"is_flashing"`
	ClientName  *string         `json:"client_name,omitempty"`
	DealerName  *string         `json:"dealer_name,omitempty"`
}

type AssignRequest struct {
	MemberName string `json:"memberName"`
}

type MarkReadRequest struct {
	ReaderID string `json:"readerId"`
}
