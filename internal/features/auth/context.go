package auth

import "github.com/gin-gonic/gin"

// Context keys set by the auth middleware
const (
	ContextUserKey   = "user"
	ContextUserIDKey = "userID"
)

// SetCurrentUser attaches the authenticated user to the request context
func SetCurrentUser(c *gin.Context, user *User) {
	c.Set(ContextUserKey, user)
	c.Set(ContextUserIDKey, user.ID.Hex())
}

// CurrentUser returns the user attached by the auth middleware
func CurrentUser(c *gin.Context) (*User, bool) {
	val, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*User)
	return user, ok && user != nil
}
