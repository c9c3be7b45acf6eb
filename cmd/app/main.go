package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/cmd"
	httpin "github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/adapters/in/http"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/adapters/out/postgres/kitchenrepo"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/adapters/out/postgres/menurepo"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/adapters/out/postgres/orderrepo"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/adapters/out/postgres/revenuerepo"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/adapters/out/rabbitmq"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	migrateSchema(gormDB)

	amqpConn, err := rabbitmq.Connect(configs.AmqpURL)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer amqpConn.Close()
	publisher := rabbitmq.NewPublisher(amqpConn)

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, logger)

	jobManager := jobs.NewJobManager(app.CreateNotifyStalePendingCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		AmqpURL:               goDotEnvVariable("AMQP_URL"),
		MinAdvanceHours:       goDotEnvVariable("MIN_ADVANCE_HOURS"),
		StalePendingAfterMins: goDotEnvVariable("STALE_PENDING_AFTER_MINUTES"),
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
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateSchema(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&kitchenrepo.KitchenDTO{},
		&menurepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&revenuerepo.RevenueEntryDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		app.CreateValidateOrderCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateGetSlotAvailabilityQueryHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)
	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
