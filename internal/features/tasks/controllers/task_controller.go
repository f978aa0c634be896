package tasks_controllers

import (
	"net/http"

	tasks_dto "taskhub/internal/features/tasks/dto"
	tasks_enums "taskhub/internal/features/tasks/enums"
	tasks_services "taskhub/internal/features/tasks/services"
	users_middleware "taskhub/internal/features/users/middleware"
	"taskhub/internal/util/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskController struct {
	taskService *tasks_services.TaskService
}

func (c *TaskController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/projects/:id/tasks", c.CreateTask)
	router.GET("/projects/:id/tasks", c.GetProjectTasks)

	router.GET("/tasks/my", c.GetMyAssignedTasks)
	router.GET("/tasks/:id", c.GetTask)
	router.PATCH("/tasks/:id", c.UpdateTask)
	router.DELETE("/tasks/:id", c.DeleteTask)

	router.GET("/users/:id/tasks", c.GetUserTasks)
}

// CreateTask
// @Summary Create a task in a project
// @Description Caller must be the project owner or a member
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param request body tasks_dto.CreateTaskRequestDTO true "Task fields"
// @Success 201 {object} tasks_dto.TaskResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{id}/tasks [post]
func (c *TaskController) CreateTask(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	var request tasks_dto.CreateTaskRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.taskService.CreateTask(projectID, &request, user)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

// GetProjectTasks
// @Summary List a project's tasks
// @Description Owner, member, admin, or manager; optional status/priority filters
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param status_filter query string false "Filter by status"
// @Param priority_filter query string false "Filter by priority"
// @Success 200 {object} tasks_dto.ListTasksResponseDTO
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{id}/tasks [get]
func (c *TaskController) GetProjectTasks(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	var statusFilter *tasks_enums.TaskStatus
	if raw := ctx.Query("status_filter"); raw != "" {
		status := tasks_enums.TaskStatus(raw)
		statusFilter = &status
	}

	var priorityFilter *tasks_enums.TaskPriority
	if raw := ctx.Query("priority_filter"); raw != "" {
		priority := tasks_enums.TaskPriority(raw)
		priorityFilter = &priority
	}

	response, err := c.taskService.GetProjectTasks(projectID, user, statusFilter, priorityFilter)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetTask
// @Summary Get a task
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} tasks_dto.TaskResponseDTO
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tasks/{id} [get]
func (c *TaskController) GetTask(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	response, err := c.taskService.GetTask(taskID, user)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// UpdateTask
// @Summary Update task fields
// @Description Project owner, author, or assignee; a zero assignedToId clears the assignment
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param request body tasks_dto.UpdateTaskRequestDTO true "Fields to change"
// @Success 200 {object} tasks_dto.TaskResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tasks/{id} [patch]
func (c *TaskController) UpdateTask(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	var request tasks_dto.UpdateTaskRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.taskService.UpdateTask(taskID, &request, user)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// DeleteTask
// @Summary Delete a task
// @Description Author, project owner, or admin
// @Tags tasks
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tasks/{id} [delete]
func (c *TaskController) DeleteTask(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	if err := c.taskService.DeleteTask(taskID, user); err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetMyAssignedTasks
// @Summary List tasks assigned to the caller
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} tasks_dto.ListTasksResponseDTO
// @Failure 401 {object} map[string]string
// @Router /tasks/my [get]
func (c *TaskController) GetMyAssignedTasks(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.taskService.GetMyAssignedTasks(user)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetUserTasks
// @Summary List a user's assigned tasks
// @Description Narrowed to projects the caller owns or belongs to
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} tasks_dto.ListTasksResponseDTO
// @Failure 400 {object} map[string]string
// @Router /users/{id}/tasks [get]
func (c *TaskController) GetUserTasks(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	targetUserID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	response, err := c.taskService.GetUserTasks(targetUserID, user)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}
