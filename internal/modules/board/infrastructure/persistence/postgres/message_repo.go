package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/wxpress/salesboard/internal/modules/board/domain"
)

// PgMessageRepository is the remote store adapter for the messages table.
type PgMessageRepository struct {
	db *sqlx.DB
}

func NewPgMessageRepository(db *sqlx.DB) *PgMessageRepository {
	return &PgMessageRepository{db: db}
}

func (r *PgMessageRepository) List(ctx context.Context) ([]domain.Message, error) {
	query := `
		SELECT id, title, description, priority, sender, is_flashing,
		       assigned_to, assigned_at, client_name, dealer_name, created_at
		FROM messages
		ORDER BY created_at DESC
	`
	var rows []messageRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	messages := make([]domain.Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, row.toDomain())
	}
	return messages, nil
}

func (r *PgMessageRepository) Insert(ctx context.Context, draft domain.MessageDraft) (*domain.Message, error) {
	query := `
		INSERT INTO messages (id, title, description, priority, sender, is_flashing, client_name, dealer_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, title, description, priority, sender, is_flashing,
		          assigned_to, assigned_at, client_name, dealer_name, created_at
	`
	var row messageRow
	err := r.db.GetContext(ctx, &row, query,
		uuid.New(),
		draft.Title,
		draft.Description,
		string(draft.Priority),
		draft.Sender,
		draft.IsFlashing,
		toNullString(draft.ClientName),
		toNullString(draft.DealerName),
		time.Now(),
	)
	if err != nil {
		return nil, err
	}
	created := row.toDomain()
	return &created, nil
}

func (r *PgMessageRepository) Update(ctx context.Context, m domain.Message) error {
	query := `
		UPDATE messages
		SET title = $2, description = $3, priority = $4, sender = $5,
		    is_flashing = $6, client_name = $7, dealer_name = $8
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		m.ID, m.Title, m.Description, string(m.Priority), m.Sender,
		m.IsFlashing, toNullString(m.ClientName), toNullString(m.DealerName),
	)
	if err != nil {
		return err
	}
	return noRowsAsNotFound(res)
}

func (r *PgMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return noRowsAsNotFound(res)
}

func (r *PgMessageRepository) Assign(ctx context.Context, id uuid.UUID, memberName string, at time.Time) error {
	query := `
		UPDATE messages
		SET assigned_to = $2, assigned_at = $3
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id, memberName, at)
	if err != nil {
		return err
	}
	return noRowsAsNotFound(res)
}

func (r *PgMessageRepository) Unassign(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE messages
		SET assigned_to = NULL, assigned_at = NULL
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return noRowsAsNotFound(res)
}

// sentinelID is excluded from the wipe so the statement always carries a
// predicate, matching the generic delete-all-except-sentinel call shape of
// the remote store.
const sentinelID = "00000000-0000-0000-0000-000000000000"

func (r *PgMessageRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id <> $1`, sentinelID)
	return err
}

func noRowsAsNotFound(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		// Driver cannot report the count; treat the write as applied.
		return nil
	}
	if affected == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}
