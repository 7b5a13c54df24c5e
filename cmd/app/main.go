package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"fixmate/cmd"
	httpadapter "fixmate/internal/adapters/in/http"
	"fixmate/internal/adapters/out/postgres/providerrepo"
	"fixmate/internal/adapters/out/postgres/requestrepo"
	"fixmate/internal/adapters/out/postgres/vehiclerepo"
	"fixmate/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
	)

	jobManager := startJobs(&app)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&requestrepo.RequestDTO{},
		&providerrepo.ProviderDTO{},
		&vehiclerepo.VehicleDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startJobs(app *cmd.CompositionRoot) *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateDispatchPendingRequestCommandHandler(),
		logger,
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateRequestCommandHandler(),
		app.CreateAssignProviderCommandHandler(),
		app.CreateUpdateRequestStatusCommandHandler(),
		app.CreateCreateVehicleCommandHandler(),
		app.CreateCreateProviderCommandHandler(),
		app.CreateSetProviderAvailabilityCommandHandler(),
		app.CreateGetRequestQueryHandler(),
		app.CreateGetVehicleRequestsQueryHandler(),
		app.CreateGetProviderRequestsQueryHandler(),
		app.CreateGetAvailableProvidersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
