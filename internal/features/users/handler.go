package users

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/tasklists/internal/features/auth"
	"github.com/xyz-asif/tasklists/internal/pkg/response"
	apperrors "github.com/xyz-asif/tasklists/pkg/errors"
)

// Directory looks users up by name or id
type Directory interface {
	FindByUsername(ctx context.Context, username string) (*auth.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*auth.User, error)
}

type Handler struct {
	directory Directory
}

func NewHandler(directory Directory) *Handler {
	return &Handler{directory: directory}
}

// GetUserByUsername godoc
// @Summary Get user profile by username
// @Description Public profile of a user, e.g. before sharing a list with them
// @Tags users
// @Produce json
// @Security TokenAuth
// @Param username path string true "Username"
// @Success 200 {object} PublicProfile
// @Failure 404 {object} response.APIResponse
// @Router /users/username/{username} [get]
func (h *Handler) GetUserByUsername(c *gin.Context) {
	username := strings.TrimSpace(c.Param("username"))
	if username == "" {
		response.BadRequest(c, "Username is required", "VALIDATION_FAILED")
		return
	}

	user, err := h.directory.FindByUsername(c.Request.Context(), username)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, newPublicProfile(user))
}

// GetUserByID godoc
// @Summary Get user profile by ID
// @Description Resolves a collaborator id from a list to a username
// @Tags users
// @Produce json
// @Security TokenAuth
// @Param id path string true "User ID"
// @Success 200 {object} PublicProfile
// @Failure 400 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /users/{id} [get]
func (h *Handler) GetUserByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.FromError(c, apperrors.New(apperrors.ErrValidation, "Invalid user ID"))
		return
	}

	user, err := h.directory.FindByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, newPublicProfile(user))
}
