package users_testing

import (
	"fmt"
	"time"

	users_dto "codetutor/internal/features/users/dto"
	users_models "codetutor/internal/features/users/models"
	users_repositories "codetutor/internal/features/users/repositories"
	users_services "codetutor/internal/features/users/services"

	"github.com/google/uuid"
)

func CreateTestUser() *users_dto.SignInResponseDTO {
	userID := uuid.New()
	username := "user-" + userID.String()[:8]
	email := fmt.Sprintf("%s@test.com", username)

	user := &users_models.User{
		ID:                   userID,
		Username:             username,
		Email:                email,
		HashedPassword:       "$2a$10$test",
		PasswordCreationTime: time.Now().UTC(),
		CreatedAt:            time.Now().UTC(),
	}

	userRepository := &users_repositories.UserRepository{}
	err := userRepository.CreateUser(user)
	if err != nil {
		panic(err)
	}

	response, err := users_services.GetUserService().GenerateAccessToken(user)
	if err != nil {
		panic(err)
	}

	response.Username = user.Username

	return response
}
