package users_controllers

import (
	"net/http"

	users_dto "taskhub/internal/features/users/dto"
	users_middleware "taskhub/internal/features/users/middleware"
	users_services "taskhub/internal/features/users/services"
	"taskhub/internal/util/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DirectoryController struct {
	directoryService *users_services.DirectoryService
}

func (c *DirectoryController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/users/me", c.GetMyProfile)
	router.GET("/users", c.GetUsers)
	router.GET("/users/:id", c.GetUser)
	router.PATCH("/users/:id", c.UpdateUser)
}

// GetMyProfile
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} users_dto.UserProfileResponseDTO
// @Failure 401 {object} map[string]string
// @Router /users/me [get]
func (c *DirectoryController) GetMyProfile(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	profile, err := c.directoryService.GetMyProfile(user)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// GetUsers
// @Summary List active users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} users_dto.ListUsersResponseDTO
// @Failure 404 {object} map[string]string
// @Router /users [get]
func (c *DirectoryController) GetUsers(ctx *gin.Context) {
	response, err := c.directoryService.GetUsers()
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetUser
// @Summary Get a user profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} users_dto.UserProfileResponseDTO
// @Failure 404 {object} map[string]string
// @Router /users/{id} [get]
func (c *DirectoryController) GetUser(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	profile, err := c.directoryService.GetUserProfile(userID)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// UpdateUser
// @Summary Update a user profile
// @Description Partial update; position and role fields require the admin role
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body users_dto.UpdateUserRequestDTO true "Profile fields"
// @Success 200 {object} users_dto.UserProfileResponseDTO
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id} [patch]
func (c *DirectoryController) UpdateUser(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var request users_dto.UpdateUserRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	profile, err := c.directoryService.UpdateUser(userID, &request, user)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}
