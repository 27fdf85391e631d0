package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/rafabene/sunmile-backend/internal/domain/errors"
	"github.com/rafabene/sunmile-backend/internal/domain/ports"
)

// Initializer garante a inicialização única do banco
type Initializer interface {
	EnsureInitialized(ctx context.Context) error
}

// RequireDatastore inicializa o banco na primeira requisição. Enquanto ele não
// responder, as rotas da API devolvem 503 e a próxima requisição tenta de novo.
func RequireDatastore(init Initializer, logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := init.EnsureInitialized(c.Request.Context()); err != nil {
			logger.Error("datastore not ready", "error", err)
			abort(c, domainerrors.Unavailable(domainerrors.ErrDatastoreNotReady))
			return
		}
		c.Next()
	}
}
