package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"parceltrack/cmd"
	"parceltrack/internal/adapters/in/ws"
	"parceltrack/internal/adapters/out/postgres/eventrepo"
	"parceltrack/internal/adapters/out/postgres/notificationrepo"
	"parceltrack/internal/adapters/out/postgres/parcelrepo"
	"parceltrack/internal/adapters/out/postgres/walletrepo"
	"parceltrack/internal/jobs"

	httpin "parceltrack/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultDispatchBatchSize = 100

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	hub := ws.NewHub(logger)
	app := cmd.NewCompositionRoot(configs, gormDB, hub)

	jobManager := jobs.NewJobManager(
		app.CreateDispatchNotificationsCommandHandler(),
		configs.DispatchBatchSize,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, hub, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		DispatchBatchSize: defaultDispatchBatchSize,
	}
	if raw := os.Getenv("DISPATCH_BATCH_SIZE"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			log.Fatalf("Invalid DISPATCH_BATCH_SIZE: %q", raw)
		}
		config.DispatchBatchSize = size
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&eventrepo.ParcelEventDTO{},
		&walletrepo.TransactionDTO{},
		&walletrepo.WalletAccountDTO{},
		&notificationrepo.NotificationDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, hub *ws.Hub, port string) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Validator = httpin.NewValidator()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/ws", hub.HandleConnection)

	server := httpin.NewServer(
		app.CreateCreateParcelCommandHandler(),
		app.CreateUpdateParcelStatusCommandHandler(),
		app.CreateAssignDriverCommandHandler(),
		app.CreateRecordTransactionCommandHandler(),
		app.CreateGetParcelByTrackingIDQueryHandler(),
		app.CreateGetParcelsBySenderQueryHandler(),
		app.CreateGetParcelsByDriverQueryHandler(),
		app.CreateGetTransactionsByUserQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
