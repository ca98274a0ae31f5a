package prompt_logs

import (
	"net/http"

	users_middleware "codetutor/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

type PromptLogController struct {
	promptLogService *PromptLogService
}

func (c *PromptLogController) RegisterRoutes(router *gin.RouterGroup) {
	// Authentication is handled by the middleware in main.go
	monitorRoutes := router.Group("/monitor")

	monitorRoutes.GET("/prompt-logs", c.GetPromptLogs)
}

// GetPromptLogs
// @Summary Get the caller's prompt logs
// @Description Retrieve the authenticated user's prompt log entries, newest first
// @Tags monitor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param operationType query string false "Filter by operation type (generate or explain)"
// @Param language query string false "Filter by language (python, javascript or html)"
// @Param successOnly query bool false "Only return successful invocations"
// @Param limit query int false "Result limit, one of 25, 50, 100, 200" default(50)
// @Success 200 {object} GetPromptLogsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /monitor/prompt-logs [get]
func (c *PromptLogController) GetPromptLogs(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	request := &GetPromptLogsRequest{}
	if err := ctx.ShouldBindQuery(request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	response, err := c.promptLogService.GetUserPromptLogs(user, request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
