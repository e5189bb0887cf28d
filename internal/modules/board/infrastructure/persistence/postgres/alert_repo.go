package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/wxpress/salesboard/internal/modules/board/domain"
)

// PgPriorityAlertRepository manages the singleton banner row. The table
// holds exactly one logical record, pinned to id 1 by a check constraint;
// writes are upserts, never inserts of a second row.
type PgPriorityAlertRepository struct {
	db *sqlx.DB
}

func NewPgPriorityAlertRepository(db *sqlx.DB) *PgPriorityAlertRepository {
	return &PgPriorityAlertRepository{db: db}
}

func (r *PgPriorityAlertRepository) Get(ctx context.Context) (*domain.PriorityAlert, error) {
	query := `SELECT id, active, message, color FROM priority_alerts LIMIT 1`
	var row alertRow
	if err := r.db.GetContext(ctx, &row, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAlertNotFound
		}
		return nil, err
	}
	alert := row.toDomain()
	return &alert, nil
}

func (r *PgPriorityAlertRepository) Upsert(ctx context.Context, alert domain.PriorityAlert) error {
	query := `
		INSERT INTO priority_alerts (id, active, message, color)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET active = EXCLUDED.active, message = EXCLUDED.message, color = EXCLUDED.color
	`
	_, err := r.db.ExecContext(ctx, query, alert.Active, alert.Message, string(alert.Color))
	return err
}
