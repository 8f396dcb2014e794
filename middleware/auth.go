package middleware

import (
	"net/http"
	"strings"

	"food-ordering-api/auth"

	"github.com/gin-gonic/gin"
)

// Identity is the authenticated caller attached to the request context by
// AuthRequired. Role is empty for refresh tokens.
type Identity struct {
	SubjectID string
	Role      string
}

const identityKey = "identity"

// AuthRequired validates the bearer token and injects the caller's Identity
// into the context. Expired and tampered tokens produce the same rejection.
func AuthRequired(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no authorization header"})
			return
		}
		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "malformed authorization header"})
			return
		}
		claims, err := tokens.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set(identityKey, Identity{SubjectID: claims.Subject, Role: claims.Role})
		c.Next()
	}
}

// RoleRequired enforces that the caller holds one of the allowed roles.
// Must run after AuthRequired.
func RoleRequired(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok || !auth.RoleAllowed(identity.Role, roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}
		c.Next()
	}
}

// GetIdentity returns the caller's Identity, reporting absence instead of
// panicking when the gate did not run.
func GetIdentity(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	identity, ok := v.(Identity)
	return identity, ok
}
