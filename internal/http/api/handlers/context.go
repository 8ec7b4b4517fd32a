package handlers

import "github.com/gin-gonic/gin"

// Context keys set by the auth middleware.
const (
	// ContextUserIDKey holds the authenticated user's ID.
	ContextUserIDKey = "userID"
	// ContextUsernameKey holds the authenticated user's username.
	ContextUsernameKey = "username"
)

// currentUserID returns the authenticated user's ID from the request
// context, or zero when unauthenticated.
func currentUserID(c *gin.Context) uint64 {
	value, ok := c.Get(ContextUserIDKey)
	if !ok {
		return 0
	}
	id, _ := value.(uint64)
	return id
}
