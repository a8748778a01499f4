package cookie

import (
	"github.com/gin-gonic/gin"
)

const AccessTokenCookieName = "access_token"

// GetAccessToken reads the admin console session cookie set by the identity
// service; the Authorization header remains the API fallback.
func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
