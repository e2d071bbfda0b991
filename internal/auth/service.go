package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/hyperionhq/hyperion/internal/logger"
	"github.com/hyperionhq/hyperion/internal/models"
	"github.com/hyperionhq/hyperion/internal/store"
)

// RegisterInput carries the fields needed to create a user.
type RegisterInput struct {
	FirstName        string
	LastName         string
	Email            string
	PhoneNumber      string
	PhoneCountryCode string
	Password         string
}

// Service composes the password hasher, the token manager and the user
// store into the login, registration and token verification flows.
type Service struct {
	store  store.UserStore
	hasher *Hasher
	tokens *TokenManager
	logger *logger.Logger
}

func NewService(userStore store.UserStore, hasher *Hasher, tokens *TokenManager, logger *logger.Logger) *Service {
	return &Service{
		store:  userStore,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

// Login verifies the credentials and mints a token for username. An unknown
// login and a wrong password both fail with ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (Token, error) {
	user, err := s.store.GetByEmail(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Token{}, ErrInvalidCredentials
		}
		s.logger.Error("login: failed to get user", "error", err.Error())
		return Token{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !s.hasher.Verify(password, user.HashedPassword) {
		return Token{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(username, DefaultTTL)
	if err != nil {
		s.logger.Error("login: failed to issue token", "error", err.Error())
		return Token{}, fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}

// Register hashes the password and creates the user record. A duplicate
// email surfaces store.ErrDuplicateEmail untouched.
func (s *Service) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		s.logger.Error("register: failed to hash password", "error", err.Error())
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	countryCode := in.PhoneCountryCode
	if countryCode == "" {
		countryCode = "1"
	}

	user, err := s.store.Create(ctx, models.User{
		Email:            in.Email,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		PhoneNumber:      in.PhoneNumber,
		PhoneCountryCode: countryCode,
		HashedPassword:   digest,
		Permission:       models.RoleUser,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return models.User{}, err
		}
		s.logger.Error("register: failed to create user", "email", in.Email, "error", err.Error())
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("registered user", "email", user.Email, "id", user.ID)
	return user, nil
}

// VerifyToken validates a bearer token and resolves it back to the user it
// was issued for. The result is proof of identity for the current request
// only; no session persists.
func (s *Service) VerifyToken(ctx context.Context, token string) (models.User, error) {
	subject, err := s.tokens.Parse(token)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.store.GetByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrUserNotFound
		}
		s.logger.Error("verify: failed to get user", "error", err.Error())
		return models.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}
