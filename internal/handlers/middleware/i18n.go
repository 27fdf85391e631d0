package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/sunmile-backend/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey é a chave usada para armazenar o idioma no contexto do Gin
	LanguageContextKey = "language"
	// I18nServiceContextKey é a chave usada para armazenar o serviço i18n no contexto
	I18nServiceContextKey = "i18n_service"
)

// I18nMiddleware escolhe o idioma das mensagens de cada requisição
type I18nMiddleware struct {
	i18nService *i18n.Service
}

// NewI18nMiddleware cria um novo middleware de i18n
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{
		i18nService: i18nService,
	}
}

// DetectLanguage define o idioma da requisição.
// Prioridade:
// 1. Query parameter ?lang=en
// 2. Accept-Language
// 3. Idioma padrão (pt-BR)
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := m.match(c.Query("lang"))

		if lang == "" {
			lang = m.parseAcceptLanguage(c.GetHeader("Accept-Language"))
		}

		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)

		c.Next()
	}
}

// parseAcceptLanguage percorre o header na ordem enviada e devolve o primeiro
// idioma suportado. Pesos (;q=) são ignorados.
// Exemplo: "pt-PT,pt;q=0.9,en;q=0.8" -> "pt-BR"
func (m *I18nMiddleware) parseAcceptLanguage(acceptLang string) string {
	if acceptLang == "" {
		return ""
	}

	for _, lang := range strings.Split(acceptLang, ",") {
		if idx := strings.Index(lang, ";"); idx != -1 {
			lang = lang[:idx]
		}
		if found := m.match(lang); found != "" {
			return found
		}
	}

	return ""
}

// match aceita o idioma exato (sem diferenciar maiúsculas) ou, na falta dele,
// outro suportado com a mesma base: "pt" e "pt-PT" viram "pt-BR", "en-US" vira "en".
func (m *I18nMiddleware) match(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" || lang == "*" {
		return ""
	}

	supported := m.i18nService.GetSupportedLanguages()
	for _, s := range supported {
		if strings.EqualFold(s, lang) {
			return s
		}
	}

	base := baseLanguage(lang)
	for _, s := range supported {
		if strings.EqualFold(baseLanguage(s), base) {
			return s
		}
	}

	return ""
}

func baseLanguage(lang string) string {
	if idx := strings.IndexAny(lang, "-_"); idx != -1 {
		return lang[:idx]
	}
	return lang
}
