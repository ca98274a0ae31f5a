package users_services

import (
	"codetutor/internal/cache"
	users_repositories "codetutor/internal/features/users/repositories"
	cache_utils "codetutor/internal/util/cache"
)

var secretKeyRepository = &users_repositories.SecretKeyRepository{}
var userRepository = &users_repositories.UserRepository{}

var userService = &UserService{
	userRepository:      userRepository,
	secretKeyRepository: secretKeyRepository,
	revokedTokenCache:   cache_utils.NewCacheUtil[bool](cache.GetCache(), "ct_revoked_token:"),
}

func GetUserService() *UserService {
	return userService
}
