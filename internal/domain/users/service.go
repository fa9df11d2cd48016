package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hrdesk/internal/auth"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Service struct {
	Store     *Store
	JWTSecret string
	TokenTTL  time.Duration
}

func NewService(store *Store, jwtSecret string, tokenTTL time.Duration) *Service {
	return &Service{Store: store, JWTSecret: jwtSecret, TokenTTL: tokenTTL}
}

// Authenticate checks the credentials and mints an access token. A missing
// user and a wrong password produce the same error.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, string, error) {
	u, err := s.Store.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return User{}, "", ErrInvalidCredentials
	}
	if err != nil {
		return User{}, "", err
	}
	if err := auth.CheckPassword(u.PasswordHash, password); err != nil {
		return User{}, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(s.JWTSecret, auth.Claims{UserID: u.ID, Name: u.Name, Admin: u.Admin}, s.TokenTTL)
	if err != nil {
		return User{}, "", fmt.Errorf("issue token: %w", err)
	}
	return u, token, nil
}

// Register creates an account with a hashed password.
func (s *Service) Register(ctx context.Context, email, name, password string, admin bool) (User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}
	return s.Store.Create(ctx, User{Email: email, Name: name, PasswordHash: hash, Admin: admin})
}

func (s *Service) Get(ctx context.Context, id string) (User, error) {
	return s.Store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.Store.List(ctx)
}
