package users_services

import (
	users_repositories "taskhub/internal/features/users/repositories"
)

var userRepository = &users_repositories.UserRepository{}

var userService = &UserService{
	userRepository: userRepository,
}

var directoryService = &DirectoryService{
	userRepository: userRepository,
}

func GetUserService() *UserService {
	return userService
}

func GetDirectoryService() *DirectoryService {
	return directoryService
}
