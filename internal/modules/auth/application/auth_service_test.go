package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wxpress/salesboard/internal/modules/auth/application"
	"github.com/wxpress/salesboard/internal/modules/auth/domain"
	"github.com/wxpress/salesboard/internal/modules/auth/infrastructure/jwt"
	"golang.org/x/crypto/bcrypt"
)

type staffRepoMock struct {
	getByEmailFn func(context.Context, string) (*domain.StaffUser, error)
	getByIDFn    func(context.Context, uuid.UUID) (*domain.StaffUser, error)
}

func (m staffRepoMock) GetByEmail(ctx context.Context, email string) (*domain.StaffUser, error) {
	return m.getByEmailFn(ctx, email)
}

func (m staffRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.StaffUser, error) {
	return m.getByIDFn(ctx, id)
}

func staffWithPassword(t *testing.T, password string) *domain.StaffUser {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.StaffUser{
		ID:           uuid.New(),
		Email:        "julie@concession.test",
		Name:         "Julie",
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	user := staffWithPassword(t, "motdepasse")
	svc := application.NewAuthService(staffRepoMock{
		getByEmailFn: func(_ context.Context, email string) (*domain.StaffUser, error) {
			assert.Equal(t, user.Email, email)
			return user, nil
		},
	}, "secret", time.Hour)

	token, got, err := svc.Login(context.Background(), application.LoginRequest{
		Email:    user.Email,
		Password: "motdepasse",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	claims, err := jwt.ValidateToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.StaffID)
	assert.Equal(t, "Julie", claims.Name)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	user := staffWithPassword(t, "motdepasse")
	svc := application.NewAuthService(staffRepoMock{
		getByEmailFn: func(context.Context, string) (*domain.StaffUser, error) {
			return user, nil
		},
	}, "secret", time.Hour)

	_, _, err := svc.Login(context.Background(), application.LoginRequest{
		Email:    user.Email,
		Password: "mauvais",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownAccountIndistinguishable(t *testing.T) {
	svc := application.NewAuthService(staffRepoMock{
		getByEmailFn: func(context.Context, string) (*domain.StaffUser, error) {
			return nil, domain.ErrStaffNotFound
		},
	}, "secret", time.Hour)

	_, _, err := svc.Login(context.Background(), application.LoginRequest{
		Email:    "inconnu@concession.test",
		Password: "x",
	})
	// Same error as a wrong password: no account enumeration.
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	svc := application.NewAuthService(staffRepoMock{}, "secret", time.Hour)

	_, _, err := svc.Login(context.Background(), application.LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_RepoFailurePropagates(t *testing.T) {
	boom := errors.New("db down")
	svc := application.NewAuthService(staffRepoMock{
		getByEmailFn: func(context.Context, string) (*domain.StaffUser, error) {
			return nil, boom
		},
	}, "secret", time.Hour)

	_, _, err := svc.Login(context.Background(), application.LoginRequest{Email: "a@b.c", Password: "x"})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_GetStaff(t *testing.T) {
	user := staffWithPassword(t, "x")
	svc := application.NewAuthService(staffRepoMock{
		getByIDFn: func(_ context.Context, id uuid.UUID) (*domain.StaffUser, error) {
			assert.Equal(t, user.ID, id)
			return user, nil
		},
	}, "secret", time.Hour)

	got, err := svc.GetStaff(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)
}
