package auth

import (
	"context"
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

type Service interface {
	Login(ctx context.Context, username, password string) (token string, err error)
	ChangePassword(ctx context.Context, current, newPassword, confirm, username string) error
}

type service struct {
	repo   CredentialsRepository
	secret string
}

func NewService(repo CredentialsRepository, secret string) Service {
	return &service{repo: repo, secret: secret}
}

func (s *service) Login(ctx context.Context, username, password string) (string, error) {
	creds, err := s.repo.Load(ctx)
	if err != nil {
		return "", err
	}
	if creds.Username == "" || creds.PasswordHash == "" {
		return "", ErrInvalidCredentials
	}
	if username != creds.Username || !CheckPasswordHash(password, creds.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	return GenerateToken(s.secret, username)
}

// ChangePassword verifies the current password, applies the minimum-length
// and confirmation checks and persists the new hash atomically.
func (s *service) ChangePassword(ctx context.Context, current, newPassword, confirm, username string) error {
	creds, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	if creds.PasswordHash == "" || !CheckPasswordHash(current, creds.PasswordHash) {
		return ErrInvalidCredentials
	}
	if len(newPassword) < 6 {
		return ErrPasswordTooShort
	}
	if newPassword != confirm {
		return ErrPasswordMismatch
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	if username == "" {
		username = creds.Username
	}
	return s.repo.Save(ctx, Credentials{Username: username, PasswordHash: hash})
}
