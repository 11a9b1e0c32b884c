package main

import (
	"fmt"
	"os"

	"cargopro/cmd"
	adapterhttp "cargopro/internal/adapters/in/http"
	"cargopro/internal/adapters/out/postgres/bookingrepo"
	"cargopro/internal/adapters/out/postgres/loadrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	root := cmd.NewCompositionRoot(configs, gormDB)
	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
}

func goDotEnvVariable(key string) string {
	if err := godotenv.Load(".env"); err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = db.AutoMigrate(&loadrepo.LoadDTO{}, &bookingrepo.BookingDTO{}); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return db
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	server := adapterhttp.NewServer(
		root.CreateCreateLoadCommandHandler(),
		root.CreateUpdateLoadCommandHandler(),
		root.CreateCancelLoadCommandHandler(),
		root.CreateCreateBookingCommandHandler(),
		root.CreateUpdateBookingStatusCommandHandler(),
		root.CreateDeleteBookingCommandHandler(),
		root.CreateGetLoadByIDQueryHandler(),
		root.CreateGetLoadsQueryHandler(),
		root.CreateGetBookingByIDQueryHandler(),
		root.CreateGetBookingsQueryHandler(),
	)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Validator = adapterhttp.NewValidator()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
