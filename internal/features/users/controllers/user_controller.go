package users_controllers

import (
	"net/http"

	users_dto "taskhub/internal/features/users/dto"
	users_services "taskhub/internal/features/users/services"
	"taskhub/internal/util/apperrors"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type UserController struct {
	userService *users_services.UserService
	// protects the password-grant endpoint from brute force
	tokenLimiter *rate.Limiter
}

func (c *UserController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/users", c.Register)
	router.POST("/users/token", c.IssueTokens)
	router.POST("/users/refresh-token", c.RefreshToken)
}

func (c *UserController) SetTokenLimiter(limiter *rate.Limiter) {
	c.tokenLimiter = limiter
}

// Register
// @Summary Register a new user
// @Description Register a new user account; the role defaults to member
// @Tags users
// @Accept json
// @Produce json
// @Param request body users_dto.RegisterRequestDTO true "Registration data"
// @Success 201 {object} users_dto.UserResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /users [post]
func (c *UserController) Register(ctx *gin.Context) {
	var request users_dto.RegisterRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.userService.Register(&request)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

// IssueTokens
// @Summary Authenticate a user
// @Description OAuth2 password-grant style login returning access and refresh tokens
// @Tags users
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {object} users_dto.TokenPairResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Router /users/token [post]
func (c *UserController) IssueTokens(ctx *gin.Context) {
	if !c.tokenLimiter.Allow() {
		ctx.JSON(
			http.StatusTooManyRequests,
			gin.H{"error": "Rate limit exceeded. Please try again later."},
		)
		return
	}

	var request users_dto.TokenRequestDTO
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.userService.IssueTokens(&request)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// RefreshToken
// @Summary Refresh the access token
// @Description Exchange a bearer refresh token for a new access token
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} users_dto.AccessTokenResponseDTO
// @Failure 401 {object} map[string]string
// @Router /users/refresh-token [post]
func (c *UserController) RefreshToken(ctx *gin.Context) {
	token := ctx.GetHeader("Authorization")
	if len(token) > 7 && token[:7] == "Bearer " {
		token = token[7:]
	}

	if token == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token required"})
		return
	}

	response, err := c.userService.RefreshAccessToken(token)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}
