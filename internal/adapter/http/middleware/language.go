package middleware

import (
	"progresstracker/pkg/translator"

	"github.com/gin-gonic/gin"
)

// LanguageMiddleware sets the request language from the Accept-Language
// header. A lang query parameter takes precedence so websocket clients,
// which cannot set headers from a browser, can still pick a language.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Keep language handling simple for now: use raw values, fallback to en.
		lang := c.Query("lang")
		if lang == "" {
			lang = c.GetHeader("Accept-Language")
		}
		if lang == "" {
			lang = translator.LanguageEn
		}
		c.Set("lang", lang)
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
