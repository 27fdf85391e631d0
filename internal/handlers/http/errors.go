package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/rafabene/sunmile-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/sunmile-backend/internal/domain/errors"
	"github.com/rafabene/sunmile-backend/internal/domain/ports"
	"github.com/rafabene/sunmile-backend/internal/handlers/dto"
	"github.com/rafabene/sunmile-backend/internal/handlers/middleware"
)

// respondError registra o erro e interrompe a cadeia; renderErrors escreve a resposta
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// renderErrors escreve como problem+json o último erro registrado por
// handlers e middlewares. Erros internos são logados com a causa, que nunca
// chega ao cliente.
func renderErrors(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		c.Errors = c.Errors[:0]
		writeProblem(c, logger, err)
	}
}

// recoverPanic devolve 500 no mesmo formato dos demais erros
func recoverPanic(logger ports.Logger) gin.RecoveryFunc {
	return func(c *gin.Context, recovered any) {
		writeProblem(c, logger, domainerrors.Internal(fmt.Errorf("panic: %v", recovered)))
	}
}

func writeProblem(c *gin.Context, logger ports.Logger, err error) {
	if domainerrors.KindOf(err) == domainerrors.KindInternal {
		logger.Error("request failed",
			"error", err,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(middleware.RequestIDContextKey),
		)
	}

	status, body := dto.NewErrorResponse(c, err)
	if domainerrors.KindOf(err) == domainerrors.KindAuthentication {
		c.Header("WWW-Authenticate", `Bearer realm="sunmile"`)
	}
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(status, body)
}

// notFound responde rotas inexistentes
func notFound(c *gin.Context) {
	respondError(c, domainerrors.NotFound(domainerrors.ErrRouteNotFound))
}

// currentIdentity lê a identidade definida pelo RequireAuth
func currentIdentity(c *gin.Context) (entities.Identity, bool) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		respondError(c, domainerrors.Unauthenticated(domainerrors.ErrUnauthorized))
	}
	return identity, ok
}
