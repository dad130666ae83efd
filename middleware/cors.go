package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddlewareWithOrigins allows the configured origins. Entries may be
// exact origins, "*", or wildcard hosts such as https://*.example.com.
func CORSMiddlewareWithOrigins(allowedOrigins []string) gin.HandlerFunc {
	origins := make([]string, 0, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	config := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return isOriginAllowed(origin, origins)
		},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With", RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	return cors.New(config)
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	for _, allowed := range allowedOrigins {
		if matchOriginPattern(origin, allowed) {
			return true
		}
	}
	return false
}

// Support wildcard patterns like https://*.example.com
func matchOriginPattern(origin, pattern string) bool {
	if pattern == "*" {
		return true
	}
	if scheme, host, ok := strings.Cut(pattern, "://"); ok && strings.HasPrefix(host, "*.") {
		return strings.HasPrefix(origin, scheme+"://") && strings.HasSuffix(origin, host[1:])
	}
	if strings.HasPrefix(pattern, "*.") {
		return strings.HasSuffix(origin, pattern[1:])
	}
	return origin == pattern
}
