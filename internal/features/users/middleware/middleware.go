package users_middleware

import (
	users_models "codetutor/internal/features/users/models"
	users_services "codetutor/internal/features/users/services"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates JWT token and adds user to context
func AuthMiddleware(userService *users_services.UserService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := extractToken(ctx)
		if token == "" {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
			ctx.Abort()
			return
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

// OptionalAuthMiddleware attributes the request to a user when a valid token
// is present but lets anonymous requests through.
func OptionalAuthMiddleware(userService *users_services.UserService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := extractToken(ctx)
		if token == "" {
			ctx.Next()
			return
		}

		user, err := userService.GetUserFromToken(token)
		if err != nil {
			ctx.Next()
			return
		}

		ctx.Set("user", user)
		ctx.Next()
	}
}

func extractToken(ctx *gin.Context) string {
	token := ctx.GetHeader("Authorization")
	return strings.TrimPrefix(token, "Bearer ")
}

// GetUserFromContext helper function to extract user from gin context
func GetUserFromContext(ctx *gin.Context) (*users_models.User, bool) {
	userInterface, exists := ctx.Get("user")
	if !exists {
		return nil, false
	}

	user, ok := userInterface.(*users_models.User)

	return user, ok
}
