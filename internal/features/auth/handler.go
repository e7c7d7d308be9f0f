package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/tasklists/internal/pkg/logger"
	"github.com/xyz-asif/tasklists/internal/pkg/response"
	apperrors "github.com/xyz-asif/tasklists/pkg/errors"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register godoc
// @Summary Register a new user
// @Description Create an account and receive its access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "User registration data"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} response.APIResponse
// @Router /register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.ErrRequestInvalid {
			logger.Error("register %q: %v", req.Username, err)
		}
		response.FromError(c, err)
		return
	}

	logger.Info("user %s registered", res.Username)
	response.Success(c, res)
}

// SignIn godoc
// @Summary Sign in
// @Description Verify credentials and return the user's access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "User login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /signin [post]
func (h *Handler) SignIn(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, res)
}

// Me godoc
// @Summary Get current user
// @Description Get the profile of the currently authenticated user
// @Tags auth
// @Produce json
// @Security TokenAuth
// @Success 200 {object} User
// @Failure 401 {object} response.APIResponse
// @Router /me [get]
func (h *Handler) Me(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated", "AUTH_FAILED")
		return
	}

	response.Success(c, user)
}
