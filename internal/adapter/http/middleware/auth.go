package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"progresstracker/pkg/apierrors"
	"progresstracker/pkg/tokens"
)

const ownerIDKey = "owner_id"

// AuthMiddleware validates the bearer token and stores the subject as the
// owner id for downstream handlers. Websocket clients cannot set headers
// from a browser, so a token query parameter is accepted as a fallback.
func AuthMiddleware(manager *tokens.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		raw := bearerToken(c)
		if raw == "" {
			raw = c.Query("token")
		}
		if raw == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgMissingToken, lang),
			)
			return
		}

		claims, err := manager.Validate(raw)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidToken, lang),
			)
			return
		}

		c.Set(ownerIDKey, claims.Subject)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetOwnerID returns the authenticated owner id, or "" outside the
// authorized group.
func GetOwnerID(c *gin.Context) string {
	if value, exists := c.Get(ownerIDKey); exists {
		if s, ok := value.(string); ok {
			return s
		}
	}
	return ""
}
