package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/rafabene/sunmile-backend/internal/domain/entities"
	"github.com/rafabene/sunmile-backend/internal/domain/ports"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims do token de acesso. O id do usuário vai em "sub".
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager implementa ports.TokenManager com HS256
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTManager cria o emissor/verificador de tokens
func NewJWTManager(secret, issuer string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

var _ ports.TokenManager = (*JWTManager)(nil)

func (m *JWTManager) Issue(userID string, role entities.Role) (ports.IssuedToken, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)
	tokenID := uuid.NewString()

	claims := Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    m.issuer,
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return ports.IssuedToken{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return ports.IssuedToken{
		Value:     signed,
		ID:        tokenID,
		ExpiresAt: expiresAt.Truncate(time.Second),
	}, nil
}

// Parse valida assinatura, algoritmo, emissor e expiração
func (m *JWTManager) Parse(tokenStr string) (*entities.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	role := entities.Role(claims.Role)
	if !role.IsValid() {
		return nil, ErrInvalidToken
	}

	return &entities.Identity{
		UserID:    claims.Subject,
		Role:      role,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
