package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wxpress/salesboard/internal/modules/auth/domain"
	"github.com/wxpress/salesboard/internal/modules/auth/infrastructure/jwt"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthService authenticates staff users and issues session tokens.
type AuthService struct {
	repo      domain.StaffRepository
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthService(repo domain.StaffRepository, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{repo: repo, jwtSecret: jwtSecret, jwtExpiry: jwtExpiry}
}

// Login verifies credentials and returns a signed session token with the
// authenticated user. A missing account and a wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (string, *domain.StaffUser, error) {
	if req.Email == "" || req.Password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrStaffNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(s.jwtSecret, s.jwtExpiry, user.ID, user.Name)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// GetStaff loads the account behind a validated token.
func (s *AuthService) GetStaff(ctx context.Context, id uuid.UUID) (*domain.StaffUser, error) {
	return s.repo.GetByID(ctx, id)
}
