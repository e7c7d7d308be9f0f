package lists

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/tasklists/internal/features/auth"
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

func currentUser(c *gin.Context) (*auth.User, bool) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated", "AUTH_FAILED")
	}
	return user, ok
}

func fail(c *gin.Context, err error) {
	if apperrors.KindOf(err) == apperrors.ErrRequestInvalid {
		logger.Error("%s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	response.FromError(c, err)
}

// List godoc
// @Summary List lists
// @Description All lists the authenticated user collaborates on
// @Tags lists
// @Produce json
// @Security TokenAuth
// @Success 200 {array} List
// @Failure 401 {object} response.APIResponse
// @Router /lists [get]
func (h *Handler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	lists, err := h.service.ListAll(c.Request.Context(), user.ID)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, gin.H{"lists": lists})
}

// Create godoc
// @Summary Create a list
// @Description Create a list owned by the authenticated user
// @Tags lists
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body TitleRequest true "List title"
// @Success 200 {object} List
// @Failure 400 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Router /lists [post]
func (h *Handler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req TitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	list, err := h.service.CreateList(c.Request.Context(), user.ID, req.Title)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, list)
}

// GetTasks godoc
// @Summary Get the tasks of a list
// @Tags lists
// @Produce json
// @Security TokenAuth
// @Param id path string true "List ID"
// @Success 200 {array} Task
// @Failure 403 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /lists/{id}/tasks [get]
func (h *Handler) GetTasks(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	tasks, err := h.service.GetTasks(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, gin.H{"tasks": tasks})
}

// AddTask godoc
// @Summary Add a task to a list
// @Tags lists
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path string true "List ID"
// @Param request body AddTaskRequest true "Task"
// @Success 200 {object} List
// @Failure 400 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /lists/{id}/tasks [patch]
func (h *Handler) AddTask(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req AddTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	list, err := h.service.AddTask(c.Request.Context(), user.ID, c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, list)
}

// RemoveTask godoc
// @Summary Remove a task from a list
// @Description Removing a task that is not in the list leaves the list unchanged
// @Tags lists
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path string true "List ID"
// @Param request body RemoveTaskRequest true "Task to remove"
// @Success 200 {object} List
// @Failure 403 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /lists/{id}/tasks/delete [patch]
func (h *Handler) RemoveTask(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req RemoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	list, err := h.service.RemoveTask(c.Request.Context(), user.ID, c.Param("id"), req.TaskID)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, list)
}

// SetCompletion godoc
// @Summary Mark a task complete or incomplete
// @Tags lists
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path string true "List ID"
// @Param request body SetCompletionRequest true "Completion"
// @Success 200 {object} List
// @Failure 403 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /lists/{id}/tasks/update [patch]
func (h *Handler) SetCompletion(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req SetCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	list, err := h.service.SetTaskCompletion(c.Request.Context(), user.ID, c.Param("id"), req.TaskID, *req.Complete)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, list)
}

// RenameTask godoc
// @Summary Rename a task
// @Tags lists
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path string true "List ID"
// @Param request body RenameTaskRequest true "New title"
// @Success 200 {object} List
// @Failure 403 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /lists/{id}/tasks/rename [patch]
func (h *Handler) RenameTask(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req RenameTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	list, err := h.service.RenameTask(c.Request.Context(), user.ID, c.Param("id"), req.TaskID, req.Title)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, list)
}

// Rename godoc
// @Summary Rename a list
// @Tags lists
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path string true "List ID"
// @Param request body TitleRequest true "New title"
// @Success 200 {object} List
// @Failure 400 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /lists/{id} [patch]
func (h *Handler) Rename(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req TitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	list, err := h.service.RenameList(c.Request.Context(), user.ID, c.Param("id"), req.Title)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, list)
}

// Delete godoc
// @Summary Delete a list
// @Description Deletes the list together with all of its tasks
// @Tags lists
// @Produce json
// @Security TokenAuth
// @Param id path string true "List ID"
// @Success 200 {object} List
// @Failure 403 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /lists/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	list, err := h.service.DeleteList(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	logger.Info("list %s deleted by %s", list.ID.Hex(), user.Username)
	response.Success(c, list)
}

// AddCollaborator godoc
// @Summary Share a list
// @Tags lists
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path string true "List ID"
// @Param request body AddCollaboratorRequest true "User to share with"
// @Success 200 {object} List
// @Failure 403 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /lists/{id}/collaborators [patch]
func (h *Handler) AddCollaborator(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req AddCollaboratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	list, err := h.service.AddCollaborator(c.Request.Context(), user.ID, c.Param("id"), req.Username)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, list)
}

// RemoveCollaborator godoc
// @Summary Stop sharing a list with a user
// @Tags lists
// @Produce json
// @Security TokenAuth
// @Param id path string true "List ID"
// @Param userId path string true "Collaborator user ID"
// @Success 200 {object} List
// @Failure 400 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /lists/{id}/collaborators/{userId} [delete]
func (h *Handler) RemoveCollaborator(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	list, err := h.service.RemoveCollaborator(c.Request.Context(), user.ID, c.Param("id"), c.Param("userId"))
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, list)
}
