package users_controllers

import (
	users_middleware "taskhub/internal/features/users/middleware"
	users_services "taskhub/internal/features/users/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

type AuditLogWriterStub struct{}

func (s *AuditLogWriterStub) WriteAuditLog(message string, userID *uuid.UUID, projectID *uuid.UUID) {
}

type TaskCounterStub struct{}

func (s *TaskCounterStub) CountTasksAssignedToUser(userID uuid.UUID) (int64, error) {
	return 0, nil
}

func createUserTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	root := router.Group("")

	GetUserController().RegisterRoutes(root)
	GetUserController().SetTokenLimiter(rate.NewLimiter(rate.Inf, 0))

	protected := root.Group("")
	protected.Use(users_middleware.AuthMiddleware(users_services.GetUserService()))
	GetDirectoryController().RegisterRoutes(protected)

	users_services.GetUserService().SetAuditLogWriter(&AuditLogWriterStub{})
	users_services.GetDirectoryService().SetAuditLogWriter(&AuditLogWriterStub{})
	users_services.GetDirectoryService().SetAssignedTaskCounter(&TaskCounterStub{})

	return router
}
