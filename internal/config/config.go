package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	env_utils "taskhub/internal/util/env"
	"taskhub/internal/util/logger"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var log = logger.GetLogger()

type EnvVariables struct {
	IsTesting   bool
	SecretKey   string            `env:"SECRET_KEY"`
	DatabaseDsn string            `env:"DATABASE_DSN"`
	EnvMode     env_utils.EnvMode `env:"ENV_MODE"           env-default:"development"`
	Host        string            `env:"HOST"               env-default:"0.0.0.0"`
	Port        string            `env:"PORT"               env-default:"8000"`
	// comma-separated list of allowed CORS origins
	CorsAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" env-default:"*"`
	// optional bootstrap admin; skipped when empty
	InitialAdminEmail    string `env:"INITIAL_ADMIN_EMAIL"`
	InitialAdminPassword string `env:"INITIAL_ADMIN_PASSWORD"`
}

var (
	env  EnvVariables
	once sync.Once
)

func GetEnv() EnvVariables {
	once.Do(loadEnvVariables)
	return env
}

func loadEnvVariables() {
	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			env.IsTesting = true
			break
		}
	}

	loadDotEnvFile()

	if err := cleanenv.ReadEnv(&env); err != nil {
		log.Error("Configuration could not be loaded", "error", err)
		os.Exit(1)
	}

	if env.IsTesting {
		// Tests run against the in-memory database and never need a real
		// secret or DSN.
		if env.SecretKey == "" {
			env.SecretKey = "taskhub-test-secret"
		}

		return
	}

	if env.SecretKey == "" {
		log.Error("SECRET_KEY is empty")
		os.Exit(1)
	}

	if env.DatabaseDsn == "" {
		log.Error("DATABASE_DSN is empty")
		os.Exit(1)
	}

	if !env.EnvMode.IsValid() {
		log.Error("ENV_MODE is invalid", "mode", env.EnvMode)
		os.Exit(1)
	}
	log.Info("ENV_MODE loaded", "mode", env.EnvMode)

	log.Info("Environment variables loaded successfully!")
}

// loadDotEnvFile looks for a .env next to the working directory and next to
// the module root. Not finding one is fine when the variables are already
// exported.
func loadDotEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Warn("could not get current working directory", "error", err)
		cwd = "."
	}

	moduleRoot := cwd
	for {
		if _, err := os.Stat(filepath.Join(moduleRoot, "go.mod")); err == nil {
			break
		}

		parent := filepath.Dir(moduleRoot)
		if parent == moduleRoot {
			break
		}

		moduleRoot = parent
	}

	for _, path := range []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(moduleRoot, ".env"),
	} {
		if err := godotenv.Load(path); err == nil {
			log.Info("Loaded .env", "path", path)
			return
		}
	}
}
