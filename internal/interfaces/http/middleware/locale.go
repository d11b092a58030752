package middleware

import (
	"github.com/gin-gonic/gin"

	"ministryshare/internal/shared/constants"
	"ministryshare/internal/shared/i18n"
)

// Locale negotiates the response language from the Accept-Language header
// and puts it on the context for the notification layer to use.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.Negotiate("", c.GetHeader("Accept-Language"))
		c.Set(constants.ContextKeyLocale, locale)
		c.Next()
	}
}
