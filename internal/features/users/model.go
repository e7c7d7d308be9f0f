package users

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/tasklists/internal/features/auth"
)

// PublicProfile is what one user may see about another
// @Description Public view of a user
type PublicProfile struct {
	ID       primitive.ObjectID `json:"id" example:"507f1f77bcf86cd799439013"`
	Username string             `json:"username" example:"bob"`
}

func newPublicProfile(u *auth.User) PublicProfile {
	return PublicProfile{ID: u.ID, Username: u.Username}
}
