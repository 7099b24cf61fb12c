package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/YeMinHein/App-Management/internal/auth"
	"github.com/YeMinHein/App-Management/internal/storage"
)

func newUserService(tokenTTL time.Duration) *UserService {
	jwtManager := auth.NewJWTManager("test-secret-key", tokenTTL)
	return NewUserService(storage.NewMemoryUserStore(), jwtManager)
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(time.Hour)

	result, err := svc.Register(ctx, "a@x.com", "pw", "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.User.Email != "a@x.com" || result.User.Name != "A" {
		t.Errorf("unexpected identity: %+v", result.User)
	}
	if result.User.ID == "" {
		t.Error("expected a minted user id")
	}
	if result.Token == "" {
		t.Error("expected a token on registration")
	}
}

func TestUserService_Register_Duplicate(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(time.Hour)

	if _, err := svc.Register(ctx, "a@x.com", "pw", "A"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.Register(ctx, "a@x.com", "other", "A2")
	if !errors.Is(err, ErrDuplicateUser) {
		t.Errorf("expected ErrDuplicateUser, got: %v", err)
	}

	// The original account must still authenticate.
	if _, err := svc.Login(ctx, "a@x.com", "pw"); err != nil {
		t.Errorf("duplicate register mutated the store: %v", err)
	}
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(time.Hour)

	registered, err := svc.Register(ctx, "a@x.com", "pw", "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := svc.Login(ctx, "a@x.com", "pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.User.ID != registered.User.ID {
		t.Errorf("login returned a different user: %s vs %s", result.User.ID, registered.User.ID)
	}
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(time.Hour)

	if _, err := svc.Register(ctx, "a@x.com", "pw", "A"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.Login(ctx, "a@x.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got: %v", err)
	}
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(time.Hour)

	_, err := svc.Login(ctx, "nobody@x.com", "pw")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got: %v", err)
	}
}

func TestUserService_VerifyToken(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(time.Hour)

	registered, err := svc.Register(ctx, "a@x.com", "pw", "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	identity, err := svc.VerifyToken(ctx, registered.Token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity == nil {
		t.Fatal("expected identity for fresh token")
	}
	if identity.ID != registered.User.ID || identity.Email != "a@x.com" {
		t.Errorf("unexpected identity: %+v", identity)
	}
}

func TestUserService_VerifyToken_Expired(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(-time.Hour)

	registered, err := svc.Register(ctx, "a@x.com", "pw", "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	identity, err := svc.VerifyToken(ctx, registered.Token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity != nil {
		t.Error("expected nil identity for expired token")
	}
}

func TestUserService_VerifyToken_Garbage(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(time.Hour)

	identity, err := svc.VerifyToken(ctx, "not-a-token")
	if err != nil {
		t.Fatalf("expected silent rejection, got error: %v", err)
	}
	if identity != nil {
		t.Error("expected nil identity for malformed token")
	}
}

func TestUserService_VerifyToken_UnknownSubject(t *testing.T) {
	ctx := context.Background()

	jwtManager := auth.NewJWTManager("test-secret-key", time.Hour)
	svc := NewUserService(storage.NewMemoryUserStore(), jwtManager)

	// Token signed with the right secret but an id the store never saw.
	token, _, err := jwtManager.GenerateToken("ghost-user", "ghost@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	identity, err := svc.VerifyToken(ctx, token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity != nil {
		t.Error("expected nil identity for unknown subject")
	}
}
