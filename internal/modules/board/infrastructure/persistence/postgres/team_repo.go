package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/wxpress/salesboard/internal/modules/board/domain"
)

// PgTeamMemberRepository reads assignment targets. The table is owned by
// an external system; the board only ever selects from it.
type PgTeamMemberRepository struct {
	db *sqlx.DB
}

func NewPgTeamMemberRepository(db *sqlx.DB) *PgTeamMemberRepository {
	return &PgTeamMemberRepository{db: db}
}

func (r *PgTeamMemberRepository) ListActive(ctx context.Context) ([]domain.TeamMember, error) {
	query := `
		SELECT id, name, active, phone_number, created_at
		FROM team_members
		WHERE active = TRUE
		ORDER BY name
	`
	var rows []teamMemberRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	members := make([]domain.TeamMember, 0, len(rows))
	for _, row := range rows {
		members = append(members, row.toDomain())
	}
	return members, nil
}
