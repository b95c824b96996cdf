// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/natura-backend/internal/i18n"
)

// I18nMiddleware picks the first supported language of Accept-Language and
// stores it under "lang".
func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("lang", preferredLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// Handles values like "en-US,en;q=0.9,es;q=0.8".
func preferredLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		subtags := strings.FieldsFunc(strings.Split(part, ";")[0], func(r rune) bool {
			return r == '-' || r == '_' || r == ' '
		})
		if len(subtags) == 0 {
			continue
		}
		base := strings.ToLower(subtags[0])
		if i18n.IsSupported(base) {
			return base
		}
	}
	return i18n.DefaultLanguage()
}
