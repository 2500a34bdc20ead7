package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"petapi/internal/auth"
	apperrors "petapi/internal/errors"
	"petapi/internal/model"
	"petapi/internal/repository"
)

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, email, username, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (accessToken string, err error)
}

type authService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
	jwt    *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, hasher *auth.PasswordHasher, jwt *auth.JWTService) AuthService {
	return &authService{
		users:  users,
		hasher: hasher,
		jwt:    jwt,
	}
}

// Register creates a new user with a hashed password. Email and username
// uniqueness are pre-checked for a fast client error, but the unique
// indexes remain the source of truth: a duplicate-key rejection from the
// insert is translated into the same conflict error the pre-check would
// have produced.
func (s *authService) Register(ctx context.Context, email, username, password string) (*model.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	existing, err = s.users.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, apperrors.ErrUsernameTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	// Hash only after both checks so doomed requests skip the bcrypt cost.
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		IsActive:     true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.resolveDuplicate(ctx, email)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// resolveDuplicate decides which unique index a racing insert tripped on.
func (s *authService) resolveDuplicate(ctx context.Context, email string) error {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return apperrors.ErrEmailTaken
	}
	return apperrors.ErrUsernameTaken
}

// Login verifies the credentials and returns a signed access token.
// Unknown usernames and wrong passwords are indistinguishable to callers.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", apperrors.ErrInvalidCredentials
	}

	accessToken, err := s.jwt.IssueAccessToken(user)
	if err != nil {
		return "", fmt.Errorf("issue access token: %w", err)
	}

	return accessToken, nil
}
