package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/sunmile-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/sunmile-backend/internal/domain/errors"
)

// IdentityContextKey guarda a identidade do chamador autenticado
const IdentityContextKey = "identity"

// Authenticator valida um bearer token
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entities.Identity, error)
}

// RequireAuth bloqueia a requisição com 401 quando o token está ausente,
// inválido, expirado ou revogado. Em caso de sucesso a identidade fica no contexto.
func RequireAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := auth.Authenticate(c.Request.Context(), bearerToken(c))
		if err != nil {
			abort(c, err)
			return
		}

		c.Set(IdentityContextKey, *identity)
		c.Next()
	}
}

// IdentityFrom retorna a identidade definida por RequireAuth
func IdentityFrom(c *gin.Context) (entities.Identity, bool) {
	v, ok := c.Get(IdentityContextKey)
	if !ok {
		return entities.Identity{}, false
	}
	identity, ok := v.(entities.Identity)
	return identity, ok
}

func bearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// abort registra o erro para ser renderizado no fim da cadeia e interrompe a requisição
func abort(c *gin.Context, err error) {
	if _, ok := domainerrors.As(err); !ok {
		err = domainerrors.Internal(err)
	}
	_ = c.Error(err)
	c.Abort()
}
