package assistant

import (
	"errors"
	"net/http"
	"testing"

	users_middleware "codetutor/internal/features/users/middleware"
	users_services "codetutor/internal/features/users/services"
	users_testing "codetutor/internal/features/users/testing"
	"codetutor/internal/util/logger"
	"codetutor/internal/util/rate_limit"
	test_utils "codetutor/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GenerateCodeEndpoint_WithValidRequest_ReturnsCode(t *testing.T) {
	code := "print('hello')"
	gateway := &gatewayStub{result: &CompletionResult{
		ResponseText: `{"code": "print('hello')"}`,
		OutputCode:   &code,
		ModelUsed:    "gemini-2.0-flash",
	}}
	router, writer := createAssistantTestRouter(gateway)
	testUser := users_testing.CreateTestUser()

	request := GenerateCodeRequestDTO{
		Language:    LanguagePython,
		Description: "print hello",
	}

	var response AssistantResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/assistant/generate",
		testUser.Token,
		request,
		http.StatusOK,
		&response,
	)

	require.NotNil(t, response.OutputCode)
	assert.Equal(t, code, *response.OutputCode)
	assert.Nil(t, response.Explanation)

	require.Len(t, writer.records, 1)
	require.NotNil(t, writer.records[0].UserID)
	assert.Equal(t, testUser.UserID, *writer.records[0].UserID)
}

func Test_ExplainCodeEndpoint_WithValidRequest_ReturnsExplanation(t *testing.T) {
	explanation := "Prints a greeting."
	gateway := &gatewayStub{result: &CompletionResult{
		ResponseText: `{"explanation": "Prints a greeting."}`,
		Explanation:  &explanation,
	}}
	router, _ := createAssistantTestRouter(gateway)
	testUser := users_testing.CreateTestUser()

	request := ExplainCodeRequestDTO{
		Language: LanguagePython,
		Code:     "print('hello')",
	}

	var response AssistantResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/assistant/explain",
		testUser.Token,
		request,
		http.StatusOK,
		&response,
	)

	require.NotNil(t, response.Explanation)
	assert.Equal(t, explanation, *response.Explanation)
	assert.Nil(t, response.OutputCode)
}

func Test_GenerateCodeEndpoint_WithoutToken_StillServesRequest(t *testing.T) {
	code := "x = 1"
	gateway := &gatewayStub{result: &CompletionResult{
		ResponseText: `{"code": "x = 1"}`,
		OutputCode:   &code,
	}}
	router, writer := createAssistantTestRouter(gateway)

	// Anonymous requests share a per-IP bucket, reset it to keep tests stable
	rate_limit.NewRateLimiter().ResetRateLimit("192.0.2.1")

	request := GenerateCodeRequestDTO{
		Language:    LanguagePython,
		Description: "assign one",
	}

	test_utils.MakePostRequest(t, router, "/api/v1/assistant/generate", "", request, http.StatusOK)

	require.Len(t, writer.records, 1)
	assert.Nil(t, writer.records[0].UserID)
}

func Test_GenerateCodeEndpoint_WithInvalidJSON_ReturnsBadRequest(t *testing.T) {
	router, _ := createAssistantTestRouter(&gatewayStub{})
	testUser := users_testing.CreateTestUser()

	resp := test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         "POST",
		URL:            "/api/v1/assistant/generate",
		Token:          testUser.Token,
		Body:           "invalid json",
		ExpectedStatus: http.StatusBadRequest,
	})

	assert.Contains(t, string(resp.Body), "Invalid request format")
}

func Test_GenerateCodeEndpoint_WithMissingFields_ReturnsBadRequest(t *testing.T) {
	router, _ := createAssistantTestRouter(&gatewayStub{})
	testUser := users_testing.CreateTestUser()

	testCases := []struct {
		name    string
		request GenerateCodeRequestDTO
	}{
		{
			name:    "missing language",
			request: GenerateCodeRequestDTO{Description: "print hello"},
		},
		{
			name:    "missing description",
			request: GenerateCodeRequestDTO{Language: LanguagePython},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			test_utils.MakePostRequest(
				t,
				router,
				"/api/v1/assistant/generate",
				testUser.Token,
				tc.request,
				http.StatusBadRequest,
			)
		})
	}
}

func Test_GenerateCodeEndpoint_WhenGatewayFails_ReturnsBadGateway(t *testing.T) {
	gateway := &gatewayStub{err: errors.New("connection refused")}
	router, writer := createAssistantTestRouter(gateway)
	testUser := users_testing.CreateTestUser()

	request := GenerateCodeRequestDTO{
		Language:    LanguagePython,
		Description: "print hello",
	}

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/assistant/generate",
		testUser.Token,
		request,
		http.StatusBadGateway,
	)

	// The raw gateway error must not leak to the caller
	assert.NotContains(t, string(resp.Body), "connection refused")
	require.Len(t, writer.records, 1)
	assert.False(t, writer.records[0].Success)
}

func Test_GenerateCodeEndpoint_OverBurstLimit_ReturnsTooManyRequests(t *testing.T) {
	code := "x = 1"
	gateway := &gatewayStub{result: &CompletionResult{
		ResponseText: `{"code": "x = 1"}`,
		OutputCode:   &code,
	}}
	router, _ := createAssistantTestRouter(gateway)
	testUser := users_testing.CreateTestUser()

	request := GenerateCodeRequestDTO{
		Language:    LanguagePython,
		Description: "assign one",
	}

	sawTooManyRequests := false
	for i := 0; i < assistantBurstLimit+2; i++ {
		resp := test_utils.MakeRequest(t, router, test_utils.RequestOptions{
			Method: "POST",
			URL:    "/api/v1/assistant/generate",
			Token:  testUser.Token,
			Body:   request,
		})

		if resp.Code == http.StatusTooManyRequests {
			sawTooManyRequests = true
			break
		}

		require.Equal(t, http.StatusOK, resp.Code)
	}

	assert.True(t, sawTooManyRequests)
}

func createAssistantTestRouter(gateway CompletionGateway) (*gin.Engine, *promptLogWriterStub) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	writer := &promptLogWriterStub{}
	service := &AssistantService{
		gateway:         gateway,
		logger:          logger.GetLogger(),
		promptLogWriter: writer,
	}
	controller := &AssistantController{
		assistantService: service,
		rateLimiter:      rate_limit.NewRateLimiter(),
	}

	v1 := router.Group("/api/v1")
	assistantRoutes := v1.Group("").
		Use(users_middleware.OptionalAuthMiddleware(users_services.GetUserService()))
	controller.RegisterRoutes(assistantRoutes.(*gin.RouterGroup))

	return router, writer
}
