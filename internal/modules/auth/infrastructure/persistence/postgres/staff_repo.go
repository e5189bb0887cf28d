package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/wxpress/salesboard/internal/modules/auth/domain"
)

type PgStaffRepository struct {
	db *sqlx.DB
}

func NewPgStaffRepository(db *sqlx.DB) *PgStaffRepository {
	return &PgStaffRepository{db: db}
}

func (r *PgStaffRepository) GetByEmail(ctx context.Context, email string) (*domain.StaffUser, error) {
	query := `SELECT id, email, name, password_hash, created_at FROM staff_users WHERE email = $1`
	var user domain.StaffUser
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStaffNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *PgStaffRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.StaffUser, error) {
	query := `SELECT id, email, name, password_hash, created_at FROM staff_users WHERE id = $1`
	var user domain.StaffUser
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStaffNotFound
		}
		return nil, err
	}
	return &user, nil
}
