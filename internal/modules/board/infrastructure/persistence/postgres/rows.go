package postgres

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/wxpress/salesboard/internal/modules/board/domain"
)

// Row structs mirror the snake_case wire representation with nullable
// columns; conversion to entities turns NULL into absent pointer fields.
// The converters are pure and total: a missing optional column simply
// stays absent on the entity.

type messageRow struct {
	ID          uuid.UUID      `db:"id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Priority    string         `db:"priority"`
	Sender      string         `db:"sender"`
	IsFlashing  bool           `db:"is_flashing"`
	AssignedTo  sql.NullString `db:"assigned_to"`
	AssignedAt  sql.NullTime   `db:"assigned_at"`
	ClientName  sql.NullString `db:"client_name"`
	DealerName  sql.NullString `db:"dealer_name"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (r messageRow) toDomain() domain.Message {
	return domain.Message{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    domain.Priority(r.Priority),
		Sender:      r.Sender,
		IsFlashing:  r.IsFlashing,
		AssignedTo:  nullableString(r.AssignedTo),
		AssignedAt:  nullableTime(r.AssignedAt),
		ClientName:  nullableString(r.ClientName),
		DealerName:  nullableString(r.DealerName),
		ReadBy:      []string{},
		CreatedAt:   r.CreatedAt,
	}
}

type teamMemberRow struct {
	ID          uuid.UUID      `db:"id"`
	Name        string         `db:"name"`
	Active      bool           `db:"active"`
	PhoneNumber sql.NullString `db:"phone_number"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (r teamMemberRow) toDomain() domain.TeamMember {
	return domain.TeamMember{
		ID:          r.ID,
		Name:        r.Name,
		Active:      r.Active,
		PhoneNumber: nullableString(r.PhoneNumber),
		CreatedAt:   r.CreatedAt,
	}
}

type alertRow struct {
	ID      int    `db:"id"`
	Active  bool   `db:"active"`
	Message string `db:"message"`
	Color   string `db:"color"`
}

func (r alertRow) toDomain() domain.PriorityAlert {
	return domain.PriorityAlert{
		Active:  r.Active,
		Message: r.Message,
		Color:   domain.AlertColor(r.Color),
	}
}

func nullableString(v sql.NullString) *string {
	if !v.Valid || v.String == "" {
		return nil
	}
	s := v.String
	return &s
}

func nullableTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}

func toNullString(v *string) sql.NullString {
	if v == nil || *v == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}
