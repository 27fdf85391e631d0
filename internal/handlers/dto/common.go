package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	domainerrors "github.com/rafabene/sunmile-backend/internal/domain/errors"
	"github.com/rafabene/sunmile-backend/internal/handlers/middleware"
)

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs).
// Message repete o detalhe traduzido; é o campo que o frontend exibe.
type ErrorResponse struct {
	problems.DefaultProblem
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// MessageResponse é a resposta de operações sem recurso (logout, troca de senha)
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusOf mapeia o Kind do erro de domínio para o status HTTP
func StatusOf(kind domainerrors.Kind) int {
	switch kind {
	case domainerrors.KindValidation:
		return http.StatusBadRequest
	case domainerrors.KindConflict:
		return http.StatusConflict
	case domainerrors.KindAuthentication:
		return http.StatusUnauthorized
	case domainerrors.KindAuthorization:
		return http.StatusForbidden
	case domainerrors.KindNotFound:
		return http.StatusNotFound
	case domainerrors.KindUnavailable:
		return http.StatusServiceUnavailable
	case domainerrors.KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorResponse traduz um erro para o idioma da requisição.
// Erros fora da taxonomia viram 500 sem expor a causa.
func NewErrorResponse(c *gin.Context, err error) (int, ErrorResponse) {
	de, ok := domainerrors.As(err)
	if !ok {
		de = domainerrors.Internal(err)
	}

	status := StatusOf(de.Kind)
	detail := T(c, de.Message)

	problem := problems.NewDetailedProblem(status, detail)
	problem.Type = c.GetString(middleware.BaseURLContextKey) + de.Type
	problem.Title = T(c, de.Title)
	problem.Instance = c.Request.URL.Path

	return status, ErrorResponse{
		DefaultProblem: *problem,
		Message:        detail,
		Errors:         de.Fields,
	}
}
