package service

import (
	"context"
	"fmt"
	"time"

	"github.com/YeMinHein/App-Management/internal/auth"
	usermodel "github.com/YeMinHein/App-Management/internal/models/user"
	"github.com/YeMinHein/App-Management/internal/storage"
	"github.com/google/uuid"
)

type UserService struct {
	users      storage.UserStore
	jwtManager *auth.JWTManager
}

func NewUserService(users storage.UserStore, jwtManager *auth.JWTManager) *UserService {
	return &UserService{
		users:      users,
		jwtManager: jwtManager,
	}
}

// AuthResult bundles the identity view with the freshly issued token.
type AuthResult struct {
	User      *usermodel.Identity
	Token     string
	ExpiresAt time.Time
}

func (s *UserService) Register(ctx context.Context, email, password, name string) (*AuthResult, error) {
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateUser
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	u := &usermodel.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(u)
}

func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}

	if err := auth.CheckPassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(u)
}

// VerifyToken resolves a bearer token to a user identity. It returns
// (nil, nil) for any invalid token or unknown subject; the reason is never
// reported to the caller.
func (s *UserService) VerifyToken(ctx context.Context, token string) (*usermodel.Identity, error) {
	claims, err := s.jwtManager.ValidateToken(token)
	if err != nil {
		return nil, nil
	}

	u, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, nil
	}

	return u.Identity(), nil
}

func (s *UserService) issueToken(u *usermodel.User) (*AuthResult, error) {
	token, expiresAt, err := s.jwtManager.GenerateToken(u.ID, u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResult{
		User:      u.Identity(),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
