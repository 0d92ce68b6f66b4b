package main

import (
	"context"
	"log"

	"noticeboard-backend/controller"
	"noticeboard-backend/dal"
	"noticeboard-backend/infrastructure"
	"noticeboard-backend/middelware"
	"noticeboard-backend/models"
	"noticeboard-backend/repository"
	"noticeboard-backend/services"
	"noticeboard-backend/utils"
	"noticeboard-backend/utils/logger"
	"noticeboard-backend/worker"

	"github.com/gin-gonic/gin"
)

var config *models.Config

func Init() {
	var err error
	config, err = utils.GetConfig()
	if err != nil {
		log.Fatal(err)
	}
}

// @title Noticeboard Backend API
// @version 1.0
// @description Admin API for organizations, members and notification messages.
// @description
// @description Authenticate via **POST /auth/login** and pass the returned token
// @description as `Bearer YOUR_TOKEN` in the Authorization header.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Enter 'Bearer' [space] and then your token in the text input below.
func main() {
	Init()

	ctx := context.Background()
	appLogger := logger.NewLogger(config.LogLevel, config.LogFormat)
	appLogger.Infof("Starting %s v%s (env: %s)", config.AppName, config.AppVersion, config.AppEnv)

	// Data backend is chosen once at startup and never flipped mid-session.
	var db dal.DatabaseClientInterface
	if config.UseMockData {
		appLogger.Info("Data backend: in-memory (mock data)")
		db = dal.NewMemoryClient(appLogger)
	} else {
		appLogger.Info("Data backend: DynamoDB")
		dynamo, err := dal.NewDynamoDBClient(config, appLogger)
		if err != nil {
			log.Fatalf("Failed to create DynamoDB client: %v", err)
		}
		db = dynamo
	}

	repos := repository.NewRepository(db, config, appLogger)

	if config.UseMockData && config.SeedFixtures {
		seeder := infrastructure.NewSeeder(repos, appLogger)
		if err := seeder.Seed(ctx); err != nil {
			log.Fatalf("Failed to seed fixtures: %v", err)
		}
	}

	jwtManager := middelware.NewJWTManager(config, appLogger)
	svc := services.NewService(repos, jwtManager, appLogger)
	c := controller.NewController(ctx, svc, jwtManager, appLogger)

	r := gin.New()

	// Start server (this is blocking)
	go func() {
		if err := c.RegisterRoutes(ctx, config, r, config.BasePath, appLogger); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	snapshotWorker := worker.NewSnapshotWorker(svc.Analytics, config.SnapshotSchedule, appLogger)
	if err := snapshotWorker.Start(); err != nil {
		log.Fatalf("Failed to start snapshot worker: %v", err)
	}

	// Keep main goroutine alive
	select {}
}
