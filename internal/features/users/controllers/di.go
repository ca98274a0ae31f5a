package users_controllers

import (
	users_services "codetutor/internal/features/users/services"

	"golang.org/x/time/rate"
)

var userController = &UserController{
	userService: users_services.GetUserService(),
	// 5 attempts per second with small bursts is enough for humans
	// while slowing down brute force attempts
	signinLimiter: rate.NewLimiter(rate.Limit(5), 10),
}

func GetUserController() *UserController {
	return userController
}
