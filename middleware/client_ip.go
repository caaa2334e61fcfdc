package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// AnonymousIdentity is used when no client-identifying header is present.
const AnonymousIdentity = "anonymous"

// ClientIdentity resolves the client identity used for rate limiting.
// First non-empty wins: first X-Forwarded-For entry, X-Real-IP,
// CF-Connecting-IP, otherwise the anonymous identity.
func ClientIdentity(c *gin.Context) string {
	// X-Forwarded-For may contain a comma-separated list of IPs. Use the first one.
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first := strings.TrimSpace(strings.Split(xff, ",")[0])
		if first != "" {
			return first
		}
	}

	if xri := strings.TrimSpace(c.GetHeader("X-Real-IP")); xri != "" {
		return xri
	}

	if cf := strings.TrimSpace(c.GetHeader("CF-Connecting-IP")); cf != "" {
		return cf
	}

	return AnonymousIdentity
}
