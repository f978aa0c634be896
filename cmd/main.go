package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"taskhub/internal/config"
	audit_logs "taskhub/internal/features/audit_logs"
	projects_controllers "taskhub/internal/features/projects/controllers"
	system_healthcheck "taskhub/internal/features/system/healthcheck"
	tasks_controllers "taskhub/internal/features/tasks/controllers"
	tasks_services "taskhub/internal/features/tasks/services"
	users_controllers "taskhub/internal/features/users/controllers"
	users_middleware "taskhub/internal/features/users/middleware"
	users_services "taskhub/internal/features/users/services"
	"taskhub/internal/storage"
	env_utils "taskhub/internal/util/env"
	"taskhub/internal/util/logger"
	_ "taskhub/swagger" // swagger docs

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title TaskHub API
// @version 1.0
// @description Project and task tracking backend with role-based access control

// @host localhost:8000
// @BasePath /
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log := logger.GetLogger()

	setUpDependencies()

	// opens the connection and runs migrations
	storage.GetDb()

	if err := users_services.GetUserService().CreateInitialAdmin(); err != nil {
		log.Error("Failed to create initial admin", "error", err)
		os.Exit(1)
	}

	handlePasswordReset(log)

	go generateSwaggerDocs(log)

	gin.SetMode(gin.ReleaseMode)
	ginApp := gin.Default()

	ginApp.Use(gzip.Gzip(gzip.DefaultCompression))

	enableCors(ginApp)
	setUpRoutes(ginApp)

	startServerWithGracefulShutdown(log, ginApp)
}

func setUpDependencies() {
	audit_logs.SetupDependencies()
	tasks_services.SetupDependencies()
}

func setUpRoutes(r *gin.Engine) {
	root := r.Group("")

	root.GET("/docs/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	userController := users_controllers.GetUserController()
	userController.RegisterRoutes(root)
	system_healthcheck.GetHealthcheckController().RegisterRoutes(root)

	authMiddleware := users_middleware.AuthMiddleware(users_services.GetUserService())

	// Protected routes
	protected := root.Group("")
	protected.Use(authMiddleware)

	users_controllers.GetDirectoryController().RegisterRoutes(protected)
	projects_controllers.GetProjectController().RegisterRoutes(protected)
	projects_controllers.GetMembershipController().RegisterRoutes(protected)
	tasks_controllers.GetTaskController().RegisterRoutes(protected)
	audit_logs.GetAuditLogController().RegisterRoutes(protected)
}

func startServerWithGracefulShutdown(log *slog.Logger, app *gin.Engine) {
	env := config.GetEnv()

	srv := &http.Server{
		Addr:    env.Host + ":" + env.Port,
		Handler: app,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen:", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown signal received")

	// in-flight requests get 10 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown:", "error", err)
	}

	log.Info("Server gracefully stopped")
}

func enableCors(ginApp *gin.Engine) {
	ginApp.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv().CorsAllowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Length",
			"Content-Type",
			"Authorization",
			"Accept",
			"Accept-Language",
			"Accept-Encoding",
		},
		AllowCredentials: true,
	}))
}

// Keep in mind: docs appear after second launch, because Swagger
// is generated into Go files.
func generateSwaggerDocs(log *slog.Logger) {
	if config.GetEnv().EnvMode == env_utils.EnvModeProduction {
		return
	}

	currentDir, err := os.Getwd()
	if err != nil {
		log.Error("Failed to get current directory", "error", err)
		return
	}

	cmd := exec.Command("swag", "init", "-d", currentDir, "-g", "cmd/main.go", "-o", "swagger")

	output, err := cmd.CombinedOutput()
	if err != nil {
		log.Error("Failed to generate Swagger docs", "error", err, "output", string(output))
		return
	}

	log.Info("Swagger documentation generated successfully")
}

func handlePasswordReset(log *slog.Logger) {
	newPassword := flag.String("new-password", "", "Set a new password for the user")
	email := flag.String("email", "", "Email of the user to reset password")

	flag.Parse()

	if *newPassword == "" {
		return
	}

	if *email == "" {
		log.Info("No email provided, please provide an email via --email=\"some@email.com\" flag")
		os.Exit(1)
	}

	log.Info("Resetting password...")

	if err := users_services.GetUserService().ChangeUserPasswordByEmail(*email, *newPassword); err != nil {
		log.Error("Failed to reset password", "error", err)
		os.Exit(1)
	}

	log.Info("Password reset successfully")
	os.Exit(0)
}
