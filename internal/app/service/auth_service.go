package service

import (
	"context"
	"errors"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"progresstracker/internal/core/domain"
	"progresstracker/internal/core/ports"
	"progresstracker/pkg/tokens"
)

var (
	ErrInvalidEmail = errors.New("invalid email format")
	// Bcrypt rejects inputs over 72 bytes, so both bounds are checked up front.
	ErrWeakPassword    = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes")
)

const bcryptCost = 12

type AuthService struct {
	userRepository ports.UserRepository
	tokenManager   *tokens.Manager
}

func NewAuthService(userRepository ports.UserRepository, tokenManager *tokens.Manager) *AuthService {
	return &AuthService{userRepository: userRepository, tokenManager: tokenManager}
}

func (s *AuthService) SignUp(ctx context.Context, email, password string) (domain.User, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.User{}, ErrInvalidEmail
	}
	if len(password) < 8 {
		return domain.User{}, ErrWeakPassword
	}
	if len(password) > 72 {
		return domain.User{}, ErrPasswordTooLong
	}

	if _, err := s.userRepository.GetByEmail(ctx, email); err == nil {
		return domain.User{}, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.userRepository.Create(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (domain.Session, error) {
	user, err := s.userRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.Session{}, domain.ErrInvalidCredentials
		}
		return domain.Session{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.Session{}, domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Generate(user.ID, user.Email)
	if err != nil {
		return domain.Session{}, err
	}

	return domain.Session{
		Token:     token,
		ExpiresIn: s.tokenManager.TTLSeconds(),
		User:      user,
	}, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID string) (domain.User, error) {
	return s.userRepository.GetByID(ctx, userID)
}

var _ ports.AuthService = (*AuthService)(nil)
