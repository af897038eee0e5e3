package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"carenest/config"
)

// CSPMiddleware sets a per-request Content-Security-Policy allowlisting the
// payment gateway, Google Fonts, Unsplash imagery and the core API origin.
func CSPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		coreOrigin := strings.TrimSuffix(config.AppConfig.CoreAPIURL, "/")
		connectSrc := []string{"'self'", coreOrigin, "https://api.razorpay.com"}
		if extra := config.AppConfig.CSPExtraConnectSrc; extra != "" {
			connectSrc = append(connectSrc, strings.Fields(extra)...)
		}

		directives := []string{
			"default-src 'self'",
			"script-src 'self' https://checkout.razorpay.com",
			"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com",
			"font-src 'self' https://fonts.gstatic.com",
			"img-src 'self' data: https://images.unsplash.com",
			"frame-src https://api.razorpay.com https://checkout.razorpay.com",
			"connect-src " + strings.Join(connectSrc, " "),
		}
		c.Header("Content-Security-Policy", strings.Join(directives, "; "))
		c.Next()
	}
}
