package middleware

import "github.com/gin-gonic/gin"

// userNameKey is the key used to store the authenticated user's name in the
// request context.
const userNameKey = contextKey("userName")

// GetUserNameFromContext retrieves the authenticated user name from the Gin
// context. It returns the name and a boolean indicating if it was found.
func GetUserNameFromContext(c *gin.Context) (string, bool) {
	val := c.Request.Context().Value(userNameKey)
	if val == nil {
		return "", false
	}
	userName, ok := val.(string)
	if !ok || userName == "" {
		return "", false
	}
	return userName, true
}
