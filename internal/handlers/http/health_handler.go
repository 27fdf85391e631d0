package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Readiness informa se o banco já foi inicializado
type Readiness interface {
	Ready() bool
}

// HealthHandler responde o health check do processo
type HealthHandler struct {
	readiness Readiness
	env       string
}

// NewHealthHandler cria um novo HealthHandler
func NewHealthHandler(readiness Readiness, env string) *HealthHandler {
	return &HealthHandler{readiness: readiness, env: env}
}

// Health sempre responde 200 enquanto o processo estiver de pé.
// "database" fica "pending" até a primeira inicialização bem-sucedida.
func (h *HealthHandler) Health(c *gin.Context) {
	database := "pending"
	if h.readiness.Ready() {
		database = "ready"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"env":      h.env,
		"database": database,
	})
}
