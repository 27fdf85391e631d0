package ports

import (
	"context"
	"time"

	"github.com/rafabene/sunmile-backend/internal/domain/entities"
)

// PasswordHasher gera e confere hashes de senha
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// IssuedToken é o token assinado entregue no login
type IssuedToken struct {
	Value     string
	ID        string
	ExpiresAt time.Time
}

// TokenManager emite e verifica tokens de acesso
type TokenManager interface {
	Issue(userID string, role entities.Role) (IssuedToken, error)
	Parse(token string) (*entities.Identity, error)
}

// TokenRevocationStore guarda os tokens invalidados (logout, conta removida)
// até a expiração natural de cada um.
type TokenRevocationStore interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
