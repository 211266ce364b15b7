package authservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/velmoria/scriptstore/internal/domain"
	"github.com/velmoria/scriptstore/internal/identity"
	"github.com/velmoria/scriptstore/internal/session"
	"github.com/velmoria/scriptstore/pkg/auth"
)

type stubProvider struct {
	profile *identity.Profile
	err     error
}

func (s *stubProvider) Exchange(ctx context.Context, code string) (*identity.Profile, error) {
	return s.profile, s.err
}

func NewMock(t *testing.T, provider identity.Provider) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockRepo(ctrl)
	service := New(userRepo, provider, &auth.HashService{}, auth.NewJWTService("test-secret"), session.NoopCache{}, time.Hour)
	defer ctrl.Finish()
	return service, userRepo
}

func TestExchangeCode(t *testing.T) {
	profile := &identity.Profile{
		ExternalID: "discord-123",
		Name:       "athena",
		Email:      "athena@example.com",
		Avatar:     "https://cdn.discordapp.com/avatars/discord-123/a.png",
	}

	t.Run("First login creates the user", func(t *testing.T) {
		service, userRepo := NewMock(t, &stubProvider{profile: profile})

		userRepo.EXPECT().FindByExternalID(gomock.Any(), "discord-123").Return(nil, nil)
		userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u *domain.User) (*domain.User, error) {
				assert.Equal(t, domain.RoleUser, u.Role)
				assert.Equal(t, "athena", u.Name)
				u.ID = 1
				return u, nil
			})

		user, err := service.ExchangeCode(context.Background(), "code-1")
		assert.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.Equal(t, "discord-123", user.ExternalID)
	})

	t.Run("Returning login refreshes profile fields", func(t *testing.T) {
		service, userRepo := NewMock(t, &stubProvider{profile: profile})

		userRepo.EXPECT().FindByExternalID(gomock.Any(), "discord-123").Return(&domain.User{
			ID: 1, ExternalID: "discord-123", Name: "old-name", Role: domain.RoleUser, Points: 500,
		}, nil)
		userRepo.EXPECT().UpdateProfile(gomock.Any(), 1, "athena", "athena@example.com", profile.Avatar).Return(nil)

		user, err := service.ExchangeCode(context.Background(), "code-1")
		assert.NoError(t, err)
		assert.Equal(t, "athena", user.Name)
		assert.Equal(t, 500, user.Points)
	})

	t.Run("Provider rejects the code", func(t *testing.T) {
		service, _ := NewMock(t, &stubProvider{err: identity.ErrExchangeFailed})

		user, err := service.ExchangeCode(context.Background(), "bad-code")
		assert.ErrorIs(t, err, identity.ErrExchangeFailed)
		assert.Nil(t, user)
	})
}

func TestLogin(t *testing.T) {
	hash, err := (&auth.HashService{}).HashPassword("s3cret-pass")
	assert.NoError(t, err)

	tests := []struct {
		name          string
		password      string
		prepareMock   func(userRepo *MockRepo)
		expectedError error
	}{
		{
			name:     "Valid credentials",
			password: "s3cret-pass",
			prepareMock: func(userRepo *MockRepo) {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "admin@example.com").Return(&domain.User{
					ID: 1, Email: "admin@example.com", PasswordHash: hash, Role: domain.RoleAdmin,
				}, nil)
			},
		},
		{
			name:     "Wrong password",
			password: "wrong",
			prepareMock: func(userRepo *MockRepo) {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "admin@example.com").Return(&domain.User{
					ID: 1, Email: "admin@example.com", PasswordHash: hash,
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Unknown email",
			password: "s3cret-pass",
			prepareMock: func(userRepo *MockRepo) {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "admin@example.com").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Provider-only account has no password",
			password: "s3cret-pass",
			prepareMock: func(userRepo *MockRepo) {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "admin@example.com").Return(&domain.User{
					ID: 2, Email: "admin@example.com",
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo := NewMock(t, &stubProvider{})
			tt.prepareMock(userRepo)

			user, err := service.Login(context.Background(), "admin@example.com", tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, user.ID)
			}
		})
	}
}

func TestSession(t *testing.T) {
	t.Run("Returns the stored user", func(t *testing.T) {
		service, userRepo := NewMock(t, &stubProvider{})

		userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{
			ID: 1, Role: domain.RoleUser, Points: 500,
		}, nil)

		user, err := service.Session(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, 500, user.Points)
	})

	t.Run("Unknown user", func(t *testing.T) {
		service, userRepo := NewMock(t, &stubProvider{})

		userRepo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)

		user, err := service.Session(context.Background(), 99)
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, user)
	})
}

type staleCache struct {
	session.NoopCache
	claims *session.Claims
}

func (c staleCache) Get(ctx context.Context, userID int) (*session.Claims, error) {
	return c.claims, nil
}

func TestRole(t *testing.T) {
	t.Run("Cache miss reads the store", func(t *testing.T) {
		service, userRepo := NewMock(t, &stubProvider{})

		userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{
			ID: 1, Role: domain.RoleUser, Points: 500,
		}, nil)

		role, err := service.Role(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleUser, role)
	})

	t.Run("Cached claims served without a store read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		userRepo := NewMockRepo(ctrl)
		service := New(userRepo, &stubProvider{}, &auth.HashService{}, auth.NewJWTService("test-secret"),
			staleCache{claims: &session.Claims{Role: domain.RoleAdmin}}, time.Hour)

		role, err := service.Role(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, role)
	})

	t.Run("Unknown user", func(t *testing.T) {
		service, userRepo := NewMock(t, &stubProvider{})

		userRepo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)

		role, err := service.Role(context.Background(), 99)
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Empty(t, role)
	})
}

func TestSetMembership(t *testing.T) {
	t.Run("Member flag applied", func(t *testing.T) {
		service, userRepo := NewMock(t, &stubProvider{})

		userRepo.EXPECT().FindByExternalID(gomock.Any(), "discord-123").Return(&domain.User{ID: 1}, nil)
		userRepo.EXPECT().UpdateMembership(gomock.Any(), "discord-123", true).Return(nil)

		assert.NoError(t, service.SetMembership(context.Background(), "discord-123", true))
	})

	t.Run("Unknown external id", func(t *testing.T) {
		service, userRepo := NewMock(t, &stubProvider{})

		userRepo.EXPECT().FindByExternalID(gomock.Any(), "discord-999").Return(nil, nil)

		assert.ErrorIs(t, service.SetMembership(context.Background(), "discord-999", false), ErrUserNotFound)
	})
}

func TestGenerateToken(t *testing.T) {
	service, _ := NewMock(t, &stubProvider{})

	token, err := service.GenerateToken(&domain.User{ID: 1, Role: domain.RoleAdmin})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := auth.NewJWTService("test-secret").ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}
