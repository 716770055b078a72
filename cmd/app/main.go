package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"fulfillment/cmd"
	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := openDB(configs)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(
		app.CreateCompleteDeliveredOrdersCommandHandler(),
		configs.DeliveryCompletionSchedule,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                   goDotEnvVariable("HTTP_PORT"),
		DBHost:                     goDotEnvVariable("DB_HOST"),
		DBPort:                     goDotEnvVariable("DB_PORT"),
		DBUser:                     goDotEnvVariable("DB_USER"),
		DBPassword:                 goDotEnvVariable("DB_PASSWORD"),
		DBName:                     goDotEnvVariable("DB_NAME"),
		DBSslMode:                  goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:                  goDotEnvVariable("JWT_SECRET"),
		KafkaHost:                  goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderChangedTopic:     goDotEnvVariable("KAFKA_ORDER_CHANGED_TOPIC"),
		DeliveryCompletionSchedule: goDotEnvVariable("DELIVERY_COMPLETION_SCHEDULE"),
	}

	if config.DeliveryCompletionSchedule == "" {
		config.DeliveryCompletionSchedule = "0 * * * * *"
	}

	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDB(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateRequestOrderTransitionCommandHandler(),
		app.CreateAssignRiderCommandHandler(),
		app.CreateAcceptAssignmentCommandHandler(),
		app.CreateRejectAssignmentCommandHandler(),
		app.CreateUpdateAssignmentStatusCommandHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetActiveRidersQueryHandler(),
		app.CreateFindRidersByZoneQueryHandler(),
		app.CreateGetOrderAssignmentQueryHandler(),
		app.CreateRiderRepository(),
	)

	api := e.Group("", httpadapter.AuthMiddleware(configs.JWTSecret))
	servers.RegisterHandlers(api, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
