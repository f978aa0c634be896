package users_controllers

import (
	"taskhub/internal/config"
	users_services "taskhub/internal/features/users/services"

	"golang.org/x/time/rate"
)

var userController = &UserController{
	userService: users_services.GetUserService(),
	// 5 login attempts per second with a burst of 10
	tokenLimiter: newTokenLimiter(),
}

func newTokenLimiter() *rate.Limiter {
	if config.GetEnv().IsTesting {
		return rate.NewLimiter(rate.Inf, 0)
	}

	return rate.NewLimiter(rate.Limit(5), 10)
}

var directoryController = &DirectoryController{
	directoryService: users_services.GetDirectoryService(),
}

func GetUserController() *UserController {
	return userController
}

func GetDirectoryController() *DirectoryController {
	return directoryController
}
