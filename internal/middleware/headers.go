package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// ColorSchemeHint is the client hint carrying the browser's color scheme.
const ColorSchemeHint = "Sec-CH-Prefers-Color-Scheme"

// ClientHints asks browsers to send the color scheme hint on later requests.
func ClientHints() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Accept-CH", ColorSchemeHint)
		c.Header("Vary", ColorSchemeHint)
		c.Header("Critical-CH", ColorSchemeHint)
		c.Next()
	}
}

// PrefersDarkScheme reports whether the request's color scheme hint is dark.
// Structured header values may arrive quoted.
func PrefersDarkScheme(c *gin.Context) bool {
	value := strings.Trim(strings.TrimSpace(c.GetHeader(ColorSchemeHint)), `"`)
	return strings.EqualFold(value, "dark")
}
