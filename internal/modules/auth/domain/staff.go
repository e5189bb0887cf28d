package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// StaffUser is a staff member allowed to post, assign and administer the
// board. Distinct from TeamMember: team members are assignment targets
// managed externally; staff users are accounts on this service.
type StaffUser struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type StaffRepository interface {
	GetByEmail(ctx context.Context, email string) (*StaffUser, error)
	GetByID(ctx context.Context, id uuid.UUID) (*StaffUser, error)
}

var (
	ErrStaffNotFound      = errors.New("staff user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
