package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered user in the system.
// Password holds the bcrypt digest; neither it nor the token is ever serialized.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username    string             `bson:"username" json:"username"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	Password    string             `bson:"password" json:"-"`
	AccessToken string             `bson:"accessToken" json:"-"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RegisterRequest represents user registration data
// @Description Data required to register a new user
type RegisterRequest struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required" example:"password1"`
	Email    string `json:"email" example:"alice@example.com"`
}

// LoginRequest represents user login credentials
// @Description Credentials for signing in
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required" example:"password1"`
}

// AuthResponse represents the response after successful registration or sign in
type AuthResponse struct {
	UserID      primitive.ObjectID `json:"userId" example:"507f1f77bcf86cd799439011"`
	Username    string             `json:"username" example:"alice"`
	Email       string             `json:"email,omitempty" example:"alice@example.com"`
	AccessToken string             `json:"accessToken"`
}

func newAuthResponse(u *User) *AuthResponse {
	return &AuthResponse{
		UserID:      u.ID,
		Username:    u.Username,
		Email:       u.Email,
		AccessToken: u.AccessToken,
	}
}
