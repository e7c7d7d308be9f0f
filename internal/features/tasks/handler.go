package tasks

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/tasklists/internal/features/auth"
	"github.com/xyz-asif/tasklists/internal/pkg/logger"
	"github.com/xyz-asif/tasklists/internal/pkg/pagination"
	"github.com/xyz-asif/tasklists/internal/pkg/response"
	apperrors "github.com/xyz-asif/tasklists/pkg/errors"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func fail(c *gin.Context, err error) {
	if apperrors.KindOf(err) == apperrors.ErrRequestInvalid {
		logger.Error("%s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	response.FromError(c, err)
}

// List godoc
// @Summary List my tasks
// @Description Standalone tasks of the authenticated user, newest first
// @Tags tasks
// @Produce json
// @Security TokenAuth
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 50, max: 100)"
// @Success 200 {array} Task
// @Failure 401 {object} response.APIResponse
// @Router /tasks [get]
func (h *Handler) List(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated", "AUTH_FAILED")
		return
	}

	req := pagination.FromQuery(c.Query("page"), c.Query("limit"))
	tasks, meta, err := h.service.ListTasks(c.Request.Context(), user.ID, req)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, gin.H{"tasks": tasks, "pagination": meta})
}

// Create godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body CreateTaskRequest true "Task"
// @Success 201 {object} Task
// @Failure 400 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Router /tasks [post]
func (h *Handler) Create(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated", "AUTH_FAILED")
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	task, err := h.service.CreateTask(c.Request.Context(), user.ID, req)
	if err != nil {
		fail(c, err)
		return
	}

	response.Created(c, task)
}

// Update godoc
// @Summary Update a task
// @Description Only the owner can update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path string true "Task ID"
// @Param request body UpdateTaskRequest true "Fields to change"
// @Success 200 {object} Task
// @Failure 400 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /tasks/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated", "AUTH_FAILED")
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	task, err := h.service.UpdateTask(c.Request.Context(), user.ID, c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, task)
}

// Delete godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Security TokenAuth
// @Param id path string true "Task ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} response.APIResponse
// @Router /tasks/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated", "AUTH_FAILED")
		return
	}

	if err := h.service.DeleteTask(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		fail(c, err)
		return
	}

	response.Success(c, map[string]string{"message": "Task deleted successfully"})
}
