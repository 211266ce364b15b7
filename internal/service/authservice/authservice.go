package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/velmoria/scriptstore/internal/domain"
	"github.com/velmoria/scriptstore/internal/identity"
	"github.com/velmoria/scriptstore/internal/session"
	"github.com/velmoria/scriptstore/pkg/auth"
	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=mock.go -package=authservice

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByExternalID(ctx context.Context, externalID string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int, name, email, avatar string) error
	UpdateMembership(ctx context.Context, externalID string, isMember bool) error
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type Service struct {
	userRepo    Repo
	provider    identity.Provider
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	cache       session.Cache
	tokenTTL    time.Duration
}

func New(repo Repo, provider identity.Provider, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, cache session.Cache, tokenTTL time.Duration) *Service {
	return &Service{
		userRepo:    repo,
		provider:    provider,
		hashService: hashService,
		jwtService:  jwtService,
		cache:       cache,
		tokenTTL:    tokenTTL,
	}
}

// ExchangeCode trades a provider authorization code for a local user,
// creating the user on first login and refreshing the provider-sourced
// profile fields afterwards.
func (s *Service) ExchangeCode(ctx context.Context, code string) (*domain.User, error) {
	profile, err := s.provider.Exchange(ctx, code)
	if err != nil {
		zap.L().Error("provider exchange failed", zap.Error(err))
		return nil, err
	}

	user, err := s.userRepo.FindByExternalID(ctx, profile.ExternalID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user, err = s.userRepo.Create(ctx, &domain.User{
			ExternalID: profile.ExternalID,
			Name:       profile.Name,
			Email:      profile.Email,
			Avatar:     profile.Avatar,
			Role:       domain.RoleUser,
		})
		if err != nil {
			zap.L().Error("can't create user", zap.Error(err))
			return nil, err
		}
		zap.L().Info("user created from provider profile", zap.String("external_id", profile.ExternalID))
	} else {
		if err := s.userRepo.UpdateProfile(ctx, user.ID, profile.Name, profile.Email, profile.Avatar); err != nil {
			return nil, err
		}
		user.Name, user.Email, user.Avatar = profile.Name, profile.Email, profile.Avatar
	}

	s.cache.Set(ctx, user.ID, session.Claims{Role: user.Role, Points: user.Points})
	return user, nil
}

// Login is the local credential path used to bootstrap admin accounts.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil || user.PasswordHash == "" {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		return nil, ErrInvalidCredentials
	}
	s.cache.Set(ctx, user.ID, session.Claims{Role: user.Role, Points: user.Points})
	zap.L().Info("user authenticated", zap.String("email", email))
	return user, nil
}

// Session returns the caller's profile with role and points served from the
// claims cache when warm. Ledger writes and role changes invalidate the
// cache, so a miss always re-reads authoritative values.
func (s *Service) Session(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	claims, err := s.cache.Get(ctx, userID)
	if err != nil || claims == nil {
		s.cache.Set(ctx, userID, session.Claims{Role: user.Role, Points: user.Points})
		return user, nil
	}
	user.Role = claims.Role
	user.Points = claims.Points
	return user, nil
}

// Role returns the caller's current role for authorization checks, served
// from the claims cache when warm and re-read from the database on a miss.
// Role changes invalidate the cache, so a demotion is visible on the very
// next privileged request.
func (s *Service) Role(ctx context.Context, userID int) (string, error) {
	claims, err := s.cache.Get(ctx, userID)
	if err == nil && claims != nil {
		return claims.Role, nil
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}
	s.cache.Set(ctx, userID, session.Claims{Role: user.Role, Points: user.Points})
	return user.Role, nil
}

// SetMembership applies identity-provider membership webhooks.
func (s *Service) SetMembership(ctx context.Context, externalID string, isMember bool) error {
	user, err := s.userRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err := s.userRepo.UpdateMembership(ctx, externalID, isMember); err != nil {
		return err
	}
	zap.L().Info("membership updated",
		zap.String("external_id", externalID), zap.Bool("is_member", isMember))
	return nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(s.tokenTTL)

	token, err := s.jwtService.GenerateJWT(user.ID, user.Role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
