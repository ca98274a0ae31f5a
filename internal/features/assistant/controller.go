package assistant

import (
	"errors"
	"net/http"
	"strconv"

	users_middleware "codetutor/internal/features/users/middleware"
	users_models "codetutor/internal/features/users/models"
	"codetutor/internal/util/rate_limit"

	"github.com/gin-gonic/gin"
)

const (
	assistantRequestsPerSecond = 1
	assistantBurstLimit        = 5
)

type AssistantController struct {
	assistantService *AssistantService
	rateLimiter      *rate_limit.RateLimiter
}

// Assistant endpoints are public: anonymous callers get results too,
// attribution happens only when a valid token is present.
func (c *AssistantController) RegisterRoutes(router *gin.RouterGroup) {
	assistantRoutes := router.Group("/assistant")

	assistantRoutes.POST("/generate", c.GenerateCode)
	assistantRoutes.POST("/explain", c.ExplainCode)
}

// GenerateCode
// @Summary Generate code from a description
// @Description Generate code in the requested language from an English description
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body GenerateCodeRequestDTO true "Generation request"
// @Success 200 {object} AssistantResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /assistant/generate [post]
func (c *AssistantController) GenerateCode(ctx *gin.Context) {
	user, _ := users_middleware.GetUserFromContext(ctx)

	if !c.checkRateLimit(ctx, user) {
		return
	}

	var request GenerateCodeRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.assistantService.GenerateCode(ctx.Request.Context(), &request, user)
	if err != nil {
		c.respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ExplainCode
// @Summary Explain a code snippet
// @Description Explain what the submitted code does and how it works
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body ExplainCodeRequestDTO true "Explanation request"
// @Success 200 {object} AssistantResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /assistant/explain [post]
func (c *AssistantController) ExplainCode(ctx *gin.Context) {
	user, _ := users_middleware.GetUserFromContext(ctx)

	if !c.checkRateLimit(ctx, user) {
		return
	}

	var request ExplainCodeRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.assistantService.ExplainCode(ctx.Request.Context(), &request, user)
	if err != nil {
		c.respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (c *AssistantController) checkRateLimit(ctx *gin.Context, user *users_models.User) bool {
	callerKey := ctx.ClientIP()
	if user != nil {
		callerKey = user.ID.String()
	}

	result, err := c.rateLimiter.CheckRateLimit(callerKey, assistantRequestsPerSecond, assistantBurstLimit)
	if err != nil {
		// A broken limiter must not take the feature down
		return true
	}

	if !result.Allowed {
		ctx.Header("Retry-After", strconv.Itoa(result.RetryAfterSec))
		ctx.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Please try again later."})
		return false
	}

	return true
}

func (c *AssistantController) respondWithError(ctx *gin.Context, err error) {
	if errors.Is(err, ErrGatewayUnavailable) {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Failed to process the request. Please try again."})
		return
	}

	ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
