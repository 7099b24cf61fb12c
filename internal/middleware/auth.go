package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/YeMinHein/App-Management/internal/logger"
	"github.com/YeMinHein/App-Management/internal/models"
	usermodel "github.com/YeMinHein/App-Management/internal/models/user"
)

type contextKey string

const userKey contextKey = "user"

// TokenVerifier resolves a bearer token to an identity. A nil identity with
// a nil error means the token was rejected.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*usermodel.Identity, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
	log      *logger.Logger
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		log:      logger.New("auth-middleware"),
	}
}

// RequireAuth gates a handler behind bearer-token authentication. It never
// mutates anything; on success the identity is stored in the request context.
func (m *AuthMiddleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(w)
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		identity, err := m.verifier.VerifyToken(r.Context(), token)
		if err != nil {
			m.log.Error("Token verification failed: %v", err)
			unauthorized(w)
			return
		}
		if identity == nil {
			unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), userKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// GetUser returns the authenticated identity, or nil outside RequireAuth.
func GetUser(ctx context.Context) *usermodel.Identity {
	if identity, ok := ctx.Value(userKey).(*usermodel.Identity); ok {
		return identity
	}
	return nil
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Authentication required"})
}
