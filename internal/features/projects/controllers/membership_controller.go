package projects_controllers

import (
	"net/http"

	projects_services "taskhub/internal/features/projects/services"
	users_middleware "taskhub/internal/features/users/middleware"
	"taskhub/internal/util/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MembershipController struct {
	membershipService *projects_services.MembershipService
}

func (c *MembershipController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/projects/:id/members/:email", c.AddMember)
	router.DELETE("/projects/:id/members/:userId", c.RemoveMember)
}

// AddMember
// @Summary Add a member to a project
// @Description Project owner only; the user is looked up by email
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param email path string true "Email of the user to add"
// @Success 201 {object} projects_dto.ProjectDetailResponseDTO
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /projects/{id}/members/{email} [post]
func (c *MembershipController) AddMember(ctx *gin.Context) {
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

	response, err := c.membershipService.AddMember(projectID, ctx.Param("email"), user)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

// RemoveMember
// @Summary Remove a member from a project
// @Description Project owner only
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param userId path string true "ID of the member to remove"
// @Success 200 {object} projects_dto.ProjectDetailResponseDTO
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{id}/members/{userId} [delete]
func (c *MembershipController) RemoveMember(ctx *gin.Context) {
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

	memberID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	response, err := c.membershipService.RemoveMember(projectID, memberID, user)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}
