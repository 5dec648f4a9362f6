package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/drakeshop/inventory-api/internal/core/domain"
	"github.com/drakeshop/inventory-api/internal/core/ports"
)

// DefaultTokenTTL is the session token lifetime used when none is configured.
const DefaultTokenTTL = time.Hour

// UserService implements account management and login.
type UserService struct {
	store    ports.UserStore
	hasher   ports.PasswordHasher
	issuer   ports.TokenIssuer
	tokenTTL time.Duration
	logger   zerolog.Logger
}

func NewUserService(
	store ports.UserStore,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
	tokenTTL time.Duration,
	logger zerolog.Logger,
) *UserService {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &UserService{
		store:    store,
		hasher:   hasher,
		issuer:   issuer,
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.store.FindAll(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) CreateUser(ctx context.Context, username, password string) (int64, error) {
	existing, err := s.store.FindByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, domain.ErrUserExists
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.store.Insert(ctx, domain.UserRecord{Username: username, PasswordHash: hash})
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("user_id", id).Str("username", username).Msg("user created")
	return id, nil
}

// ReplaceUser overwrites both fields. The password is rehashed with a fresh
// salt on every call, whether or not it changed.
func (s *UserService) ReplaceUser(ctx context.Context, id int64, username, password string) error {
	existing, err := s.store.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != id {
		return domain.ErrUserExists
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	n, err := s.store.Update(ctx, id, domain.UserRecord{Username: username, PasswordHash: hash})
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (s *UserService) RemoveUser(ctx context.Context, id int64) error {
	n, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	s.logger.Info().Int64("user_id", id).Msg("user removed")
	return nil
}

func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.store.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		s.logger.Info().Str("username", username).Msg("login rejected")
		return "", domain.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.logger.Info().Str("username", username).Msg("login rejected")
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
