package audit_logs

import (
	"net/http"
	"testing"

	users_enums "taskhub/internal/features/users/enums"
	users_middleware "taskhub/internal/features/users/middleware"
	users_services "taskhub/internal/features/users/services"
	users_testing "taskhub/internal/features/users/testing"
	test_utils "taskhub/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func createAuditLogTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	protected := router.Group("")
	protected.Use(users_middleware.AuthMiddleware(users_services.GetUserService()))
	GetAuditLogController().RegisterRoutes(protected)

	SetupDependencies()

	return router
}

func Test_GetGlobalAuditLogs_AdminOnly(t *testing.T) {
	router := createAuditLogTestRouter()
	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)

	GetAuditLogService().WriteAuditLog("User registered during audit test", &member.UserID, nil)

	var response GetAuditLogsResponse
	test_utils.MakeGetRequestAndUnmarshal(t, router,
		"/audit-logs", "Bearer "+admin.Token, http.StatusOK, &response)
	assert.NotEmpty(t, response.AuditLogs)

	resp := test_utils.MakeGetRequest(t, router, "/audit-logs", "Bearer "+member.Token, http.StatusForbidden)
	assert.Contains(t, string(resp.Body), "administrators")
}

func Test_GetUserAuditLogs_SelfAndAdminOnly(t *testing.T) {
	router := createAuditLogTestRouter()
	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)
	other := users_testing.CreateTestUser(users_enums.UserRoleMember)

	GetAuditLogService().WriteAuditLog("Member changed their profile", &member.UserID, nil)

	selfPath := "/audit-logs/users/" + member.UserID.String()

	var response GetAuditLogsResponse
	test_utils.MakeGetRequestAndUnmarshal(t, router,
		selfPath, "Bearer "+member.Token, http.StatusOK, &response)
	assert.NotEmpty(t, response.AuditLogs)

	test_utils.MakeGetRequest(t, router, selfPath, "Bearer "+admin.Token, http.StatusOK)
	test_utils.MakeGetRequest(t, router, selfPath, "Bearer "+other.Token, http.StatusForbidden)

	test_utils.MakeGetRequest(t, router,
		"/audit-logs/users/not-a-uuid", "Bearer "+member.Token, http.StatusBadRequest)
}
