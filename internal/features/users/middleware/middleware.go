package users_middleware

import (
	"net/http"

	users_enums "taskhub/internal/features/users/enums"
	users_models "taskhub/internal/features/users/models"
	users_services "taskhub/internal/features/users/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and stores the freshly loaded
// user record in the request context.
func AuthMiddleware(userService *users_services.UserService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := ctx.GetHeader("Authorization")
		if token == "" {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
			ctx.Abort()
			return
		}

		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}

		user, err := userService.GetUserFromToken(token)
		if err != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			ctx.Abort()
			return
		}

		ctx.Set("user", user)
		ctx.Next()
	}
}

// RequireAdmin gates a route to the admin role.
func RequireAdmin() gin.HandlerFunc {
	return requireRoles(users_enums.UserRoleAdmin)
}

// RequireOwnerOrAdmin gates a route to users holding project-creation
// rights (the owner role, or admin).
func RequireOwnerOrAdmin() gin.HandlerFunc {
	return requireRoles(users_enums.UserRoleOwner, users_enums.UserRoleAdmin)
}

func requireRoles(roles ...users_enums.UserRole) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := GetUserFromContext(ctx)
		if !ok {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			ctx.Abort()
			return
		}

		for _, role := range roles {
			if user.Role == role {
				ctx.Next()
				return
			}
		}

		ctx.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		ctx.Abort()
	}
}

// GetUserFromContext extracts the authenticated user from the gin context.
func GetUserFromContext(ctx *gin.Context) (*users_models.User, bool) {
	userInterface, exists := ctx.Get("user")
	if !exists {
		return nil, false
	}

	user, ok := userInterface.(*users_models.User)

	return user, ok
}
