package main

import (
	"context"
	"log"
	"os"

	_ "os_service_api/docs"
	"os_service_api/internal/adapter/http/routes"
	"os_service_api/internal/infrastructure/config"
	"os_service_api/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           OS Service API
// @version         1.0
// @description     Work order (ordem de serviço) lifecycle, catalog and payments backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg := config.NewConfig()
	cfg.LoadEnv(os.Getenv)
	if err := cfg.ParseFlags(os.Args[1:]); err != nil {
		log.Fatalf("invalid flags: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if err := routes.Run(context.Background(), cfg, zlog); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
