package users_controllers

import (
	"net/http"
	"testing"

	projects_models "codetutor/internal/features/projects/models"
	projects_repositories "codetutor/internal/features/projects/repositories"
	users_dto "codetutor/internal/features/users/dto"
	users_middleware "codetutor/internal/features/users/middleware"
	users_services "codetutor/internal/features/users/services"
	users_testing "codetutor/internal/features/users/testing"
	test_utils "codetutor/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func Test_SignUpUser_WithValidData_UserCreated(t *testing.T) {
	router := createUserTestRouter()

	request := users_dto.SignUpRequestDTO{
		Username: "user" + uuid.New().String()[:8],
		Email:    "test" + uuid.New().String() + "@example.com",
		Password: "testpassword123",
	}

	test_utils.MakePostRequest(t, router, "/api/v1/users/signup", "", request, http.StatusOK)
}

func Test_SignUpUser_WithInvalidJSON_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()

	resp := test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         "POST",
		URL:            "/api/v1/users/signup",
		Body:           "invalid json",
		ExpectedStatus: http.StatusBadRequest,
	})

	assert.Contains(t, string(resp.Body), "Invalid request format")
}

func Test_SignUpUser_WithDuplicateUsername_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()
	username := "dup" + uuid.New().String()[:8]

	request := users_dto.SignUpRequestDTO{
		Username: username,
		Email:    "first" + uuid.New().String() + "@example.com",
		Password: "testpassword123",
	}

	// First signup
	test_utils.MakePostRequest(t, router, "/api/v1/users/signup", "", request, http.StatusOK)

	// Second signup with same username but different email
	request.Email = "second" + uuid.New().String() + "@example.com"
	resp := test_utils.MakePostRequest(t, router, "/api/v1/users/signup", "", request, http.StatusBadRequest)
	assert.Contains(t, string(resp.Body), "already exists")
}

func Test_SignUpUser_WithDuplicateEmail_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()
	email := "duplicate" + uuid.New().String() + "@example.com"

	request := users_dto.SignUpRequestDTO{
		Username: "first" + uuid.New().String()[:8],
		Email:    email,
		Password: "testpassword123",
	}

	// First signup
	test_utils.MakePostRequest(t, router, "/api/v1/users/signup", "", request, http.StatusOK)

	// Second signup with same email but different username
	request.Username = "second" + uuid.New().String()[:8]
	resp := test_utils.MakePostRequest(t, router, "/api/v1/users/signup", "", request, http.StatusBadRequest)
	assert.Contains(t, string(resp.Body), "already exists")
}

func Test_SignUpUser_WithValidationErrors_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()

	testCases := []struct {
		name    string
		request users_dto.SignUpRequestDTO
	}{
		{
			name: "missing username",
			request: users_dto.SignUpRequestDTO{
				Email:    "test@example.com",
				Password: "testpassword123",
			},
		},
		{
			name: "short username",
			request: users_dto.SignUpRequestDTO{
				Username: "ab",
				Email:    "test@example.com",
				Password: "testpassword123",
			},
		},
		{
			name: "missing email",
			request: users_dto.SignUpRequestDTO{
				Username: "testuser",
				Password: "testpassword123",
			},
		},
		{
			name: "invalid email",
			request: users_dto.SignUpRequestDTO{
				Username: "testuser",
				Email:    "not-an-email",
				Password: "testpassword123",
			},
		},
		{
			name: "short password",
			request: users_dto.SignUpRequestDTO{
				Username: "testuser",
				Email:    "test@example.com",
				Password: "short",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			test_utils.MakePostRequest(t, router, "/api/v1/users/signup", "", tc.request, http.StatusBadRequest)
		})
	}
}

func Test_SignInUser_WithValidCredentials_ReturnsToken(t *testing.T) {
	router := createUserTestRouter()
	username := "signin" + uuid.New().String()[:8]
	password := "testpassword123"

	// First create a user
	signupRequest := users_dto.SignUpRequestDTO{
		Username: username,
		Email:    username + "@example.com",
		Password: password,
	}
	test_utils.MakePostRequest(t, router, "/api/v1/users/signup", "", signupRequest, http.StatusOK)

	// Now sign in
	signinRequest := users_dto.SignInRequestDTO{
		Username: username,
		Password: password,
	}

	var response users_dto.SignInResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/signin",
		"",
		signinRequest,
		http.StatusOK,
		&response,
	)

	assert.NotEmpty(t, response.Token)
	assert.Equal(t, username, response.Username)
	assert.NotEqual(t, uuid.Nil, response.UserID)
}

func Test_SignInUser_WithWrongPassword_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()
	username := "signin2" + uuid.New().String()[:8]

	signupRequest := users_dto.SignUpRequestDTO{
		Username: username,
		Email:    username + "@example.com",
		Password: "testpassword123",
	}
	test_utils.MakePostRequest(t, router, "/api/v1/users/signup", "", signupRequest, http.StatusOK)

	signinRequest := users_dto.SignInRequestDTO{
		Username: username,
		Password: "wrongpassword",
	}

	resp := test_utils.MakePostRequest(t, router, "/api/v1/users/signin", "", signinRequest, http.StatusBadRequest)
	assert.Contains(t, string(resp.Body), "invalid username or password")
}

func Test_SignInUser_WithNonExistentUser_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()

	signinRequest := users_dto.SignInRequestDTO{
		Username: "nonexistent" + uuid.New().String()[:8],
		Password: "testpassword123",
	}

	// The message must not reveal whether the username exists
	resp := test_utils.MakePostRequest(t, router, "/api/v1/users/signin", "", signinRequest, http.StatusBadRequest)
	assert.Contains(t, string(resp.Body), "invalid username or password")
}

func Test_GetCurrentUser_WithValidToken_ReturnsProfile(t *testing.T) {
	router := createUserTestRouter()
	testUser := users_testing.CreateTestUser()

	var response users_dto.UserProfileResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/me",
		testUser.Token,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, testUser.UserID, response.ID)
	assert.Equal(t, testUser.Username, response.Username)
	assert.NotEmpty(t, response.Email)
}

func Test_GetCurrentUser_WithoutAuth_ReturnsUnauthorized(t *testing.T) {
	router := createUserTestRouter()

	test_utils.MakeGetRequest(t, router, "/api/v1/users/me", "", http.StatusUnauthorized)
}

func Test_ChangeUserPassword_WithValidData_PasswordChangedAndOldTokenRejected(t *testing.T) {
	router := createUserTestRouter()
	username := "changepass" + uuid.New().String()[:8]
	oldPassword := "oldpassword123"
	newPassword := "newpassword123"

	signupRequest := users_dto.SignUpRequestDTO{
		Username: username,
		Email:    username + "@example.com",
		Password: oldPassword,
	}
	test_utils.MakePostRequest(t, router, "/api/v1/users/signup", "", signupRequest, http.StatusOK)

	signinRequest := users_dto.SignInRequestDTO{
		Username: username,
		Password: oldPassword,
	}
	var signinResponse users_dto.SignInResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/signin",
		"",
		signinRequest,
		http.StatusOK,
		&signinResponse,
	)

	changePasswordRequest := users_dto.ChangePasswordRequestDTO{
		NewPassword: newPassword,
	}

	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/users/change-password",
		signinResponse.Token,
		changePasswordRequest,
		http.StatusOK,
	)

	// Tokens issued before the change must stop working
	test_utils.MakeGetRequest(t, router, "/api/v1/users/me", signinResponse.Token, http.StatusUnauthorized)

	// Old password no longer signs in
	oldSigninRequest := users_dto.SignInRequestDTO{
		Username: username,
		Password: oldPassword,
	}
	test_utils.MakePostRequest(t, router, "/api/v1/users/signin", "", oldSigninRequest, http.StatusBadRequest)

	// New password works
	newSigninRequest := users_dto.SignInRequestDTO{
		Username: username,
		Password: newPassword,
	}
	test_utils.MakePostRequest(t, router, "/api/v1/users/signin", "", newSigninRequest, http.StatusOK)
}

func Test_Logout_RevokesPresentedToken(t *testing.T) {
	router := createUserTestRouter()
	testUser := users_testing.CreateTestUser()

	// Token works before logout
	test_utils.MakeGetRequest(t, router, "/api/v1/users/me", testUser.Token, http.StatusOK)

	test_utils.MakePostRequest(t, router, "/api/v1/users/logout", testUser.Token, nil, http.StatusOK)

	// The same token must be rejected afterwards
	test_utils.MakeGetRequest(t, router, "/api/v1/users/me", testUser.Token, http.StatusUnauthorized)
}

func Test_Logout_DoesNotAffectOtherUsers(t *testing.T) {
	router := createUserTestRouter()
	leavingUser := users_testing.CreateTestUser()
	stayingUser := users_testing.CreateTestUser()

	test_utils.MakePostRequest(t, router, "/api/v1/users/logout", leavingUser.Token, nil, http.StatusOK)

	test_utils.MakeGetRequest(t, router, "/api/v1/users/me", stayingUser.Token, http.StatusOK)
}

func Test_Logout_WithoutAuth_ReturnsUnauthorized(t *testing.T) {
	router := createUserTestRouter()

	test_utils.MakePostRequest(t, router, "/api/v1/users/logout", "", nil, http.StatusUnauthorized)
}

func Test_DeleteCurrentUser_RemovesAccountAndOwnedProjects(t *testing.T) {
	router := createUserTestRouter()
	testUser := users_testing.CreateTestUser()

	projectRepository := &projects_repositories.ProjectRepository{}
	err := projectRepository.CreateProject(&projects_models.Project{
		OwnerUserID: testUser.UserID,
		Name:        "Doomed " + uuid.New().String()[:8],
	})
	require.NoError(t, err)

	test_utils.MakeDeleteRequest(t, router, "/api/v1/users/me", testUser.Token, http.StatusOK)

	// The account is gone, so the token no longer resolves to a user
	test_utils.MakeGetRequest(t, router, "/api/v1/users/me", testUser.Token, http.StatusUnauthorized)

	// Owned projects went away through the FK cascade
	projects, err := projectRepository.GetProjectsByOwner(testUser.UserID)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func Test_DeleteCurrentUser_WithoutAuth_ReturnsUnauthorized(t *testing.T) {
	router := createUserTestRouter()

	test_utils.MakeDeleteRequest(t, router, "/api/v1/users/me", "", http.StatusUnauthorized)
}

func Test_ChangeUserPassword_WithoutAuth_ReturnsUnauthorized(t *testing.T) {
	router := createUserTestRouter()

	request := users_dto.ChangePasswordRequestDTO{
		NewPassword: "newpassword123",
	}

	test_utils.MakePutRequest(t, router, "/api/v1/users/change-password", "", request, http.StatusUnauthorized)
}

func Test_ChangeUserPassword_WithValidationErrors_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()
	testUser := users_testing.CreateTestUser()

	testCases := []struct {
		name    string
		request users_dto.ChangePasswordRequestDTO
	}{
		{
			name:    "missing new password",
			request: users_dto.ChangePasswordRequestDTO{},
		},
		{
			name: "short new password",
			request: users_dto.ChangePasswordRequestDTO{
				NewPassword: "short",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			test_utils.MakePutRequest(
				t,
				router,
				"/api/v1/users/change-password",
				testUser.Token,
				tc.request,
				http.StatusBadRequest,
			)
		})
	}
}

func createUserTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")

	// Register public routes
	GetUserController().RegisterRoutes(v1)

	// Register protected routes with auth middleware
	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))
	GetUserController().RegisterProtectedRoutes(protected.(*gin.RouterGroup))
	GetUserController().SetSignInLimiter(rate.NewLimiter(rate.Limit(100), 100))

	return router
}
