package middleware

import "github.com/gin-gonic/gin"

// BaseURLContextKey guarda a URL base usada nos "type" dos problem details
const BaseURLContextKey = "base_url"

// BaseURL publica a URL base configurada no contexto da requisição
func BaseURL(url string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(BaseURLContextKey, url)
		c.Next()
	}
}
