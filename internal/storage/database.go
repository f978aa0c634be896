package storage

import (
	"os"
	"sync"

	"taskhub/internal/config"
	audit_logs_models "taskhub/internal/features/audit_logs/models"
	projects_models "taskhub/internal/features/projects/models"
	tasks_models "taskhub/internal/features/tasks/models"
	users_models "taskhub/internal/features/users/models"
	"taskhub/internal/util/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var (
	once sync.Once
	db   *gorm.DB
)

func GetDb() *gorm.DB {
	once.Do(openDatabase)
	return db
}

func openDatabase() {
	log := logger.GetLogger()
	env := config.GetEnv()

	var dialector gorm.Dialector
	if env.IsTesting {
		// Shared in-memory database so every connection in the test
		// process sees the same schema and rows.
		dialector = sqlite.Open("file::memory:?cache=shared&_fk=1")
	} else {
		dialector = postgres.Open(env.DatabaseDsn)
	}

	opened, err := gorm.Open(dialector, &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
	})
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	db = opened

	if err := migrate(); err != nil {
		log.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
}

func migrate() error {
	return db.AutoMigrate(
		&users_models.User{},
		&projects_models.Project{},
		&projects_models.ProjectMembership{},
		&tasks_models.Task{},
		&audit_logs_models.AuditLog{},
	)
}
