package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/sunmile-backend/internal/handlers/middleware"
	"github.com/rafabene/sunmile-backend/internal/infrastructure/i18n"
)

// T traduz uma chave no idioma da requisição.
// Sem o middleware de i18n a própria chave é devolvida.
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	v, exists := c.Get(middleware.I18nServiceContextKey)
	if !exists {
		return key
	}

	service, ok := v.(*i18n.Service)
	if !ok {
		return key
	}

	return service.T(GetLanguage(c, service), key, params...)
}

// GetLanguage retorna o idioma detectado para a requisição
func GetLanguage(c *gin.Context, service *i18n.Service) string {
	if lang := c.GetString(middleware.LanguageContextKey); lang != "" {
		return lang
	}
	return service.GetDefaultLanguage()
}
