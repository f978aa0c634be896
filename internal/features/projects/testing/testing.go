package projects_testing

import (
	"encoding/json"
	"fmt"
	"net/http"

	audit_logs "taskhub/internal/features/audit_logs"
	projects_dto "taskhub/internal/features/projects/dto"
	tasks_services "taskhub/internal/features/tasks/services"
	users_controllers "taskhub/internal/features/users/controllers"
	users_middleware "taskhub/internal/features/users/middleware"
	users_services "taskhub/internal/features/users/services"
	test_utils "taskhub/internal/util/testing"

	"github.com/gin-gonic/gin"
)

type ControllerInterface interface {
	RegisterRoutes(router *gin.RouterGroup)
}

// CreateTestRouter builds a router with the public auth routes plus the
// given controllers behind the auth middleware, wired the same way main
// does it.
func CreateTestRouter(controllers ...ControllerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	root := router.Group("")
	users_controllers.GetUserController().RegisterRoutes(root)

	protected := root.Group("")
	protected.Use(users_middleware.AuthMiddleware(users_services.GetUserService()))

	for _, controller := range controllers {
		controller.RegisterRoutes(protected)
	}

	audit_logs.SetupDependencies()
	tasks_services.SetupDependencies()

	return router
}

// CreateTestProjectViaAPI creates a project through the HTTP surface and
// panics on failure so test setup stays terse.
func CreateTestProjectViaAPI(
	title string,
	ownerToken string,
	router *gin.Engine,
) *projects_dto.ProjectDetailResponseDTO {
	request := projects_dto.CreateProjectRequestDTO{Title: title}
	w := test_utils.MakeRequest(router, http.MethodPost, "/projects", "Bearer "+ownerToken, request)

	if w.Code != http.StatusCreated {
		panic(fmt.Sprintf("Failed to create project. Status: %d, Body: %s", w.Code, w.Body.String()))
	}

	var response projects_dto.ProjectDetailResponseDTO
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		panic(err)
	}

	return &response
}

// AddMemberViaAPI attaches a user to the project through the owner's
// membership route.
func AddMemberViaAPI(
	projectID string,
	memberEmail string,
	ownerToken string,
	router *gin.Engine,
) {
	path := fmt.Sprintf("/projects/%s/members/%s", projectID, memberEmail)
	w := test_utils.MakeRequest(router, http.MethodPost, path, "Bearer "+ownerToken, nil)

	if w.Code != http.StatusCreated {
		panic(fmt.Sprintf("Failed to add member. Status: %d, Body: %s", w.Code, w.Body.String()))
	}
}
