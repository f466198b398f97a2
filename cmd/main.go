package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/franciscosanchezn/pizza-restaurants-api/docs" // Import generated docs
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/config"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/metrics"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/routes"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownGracePeriod = 10 * time.Second

// @title Pizza Restaurants API
// @version 1.0
// @description Restaurants, pizzas and the prices restaurants offer them at
// @host localhost:5555
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Load configuration
	configuration := loadConfig()

	// Initialize logger
	setUpLogger(configuration)

	// Initialize database connection
	db := setupDatabase(configuration)

	// Initialize services and controllers
	router := routes.SetupRouter(routes.Dependencies{
		RestaurantController:      controllers.NewRestaurantController(services.NewRestaurantService(db)),
		PizzaController:           controllers.NewPizzaController(services.NewPizzaService(db)),
		RestaurantPizzaController: controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(db)),
		Metrics:                   metrics.New(),
		Logger:                    log.StandardLogger(),
	})

	// Start the server
	server := &http.Server{
		Addr:    configuration.Addr(),
		Handler: router,
	}
	go func() {
		log.Infof("Starting server on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	waitForShutdown(server, db)
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level
// from LOG_LEVEL, falling back to one derived from APP_ENV
func setUpLogger(conf *config.Config) {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(conf.Level())
	database.SetLogLevel(conf.Level())
	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase connects, migrates the schema and seeds an empty store when enabled
func setupDatabase(conf *config.Config) *gorm.DB {
	dbConfig, err := conf.Database()
	checkPanicErr(err)

	db, err := database.InitDatabase(dbConfig)
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))

	if !conf.Seed {
		log.Info("Seeding disabled")
		return db
	}
	seeded, err := database.SeedIfEmpty(db)
	checkPanicErr(err)
	if seeded {
		log.Info("Database seeded with initial data")
	} else {
		log.Info("Database already contains data, skipping seed")
	}
	return db
}

// waitForShutdown blocks until SIGINT or SIGTERM, then drains in-flight
// requests and closes the store
func waitForShutdown(server *http.Server, db *gorm.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Infof("Received %s, shutting down", sig)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Errorf("Failed to close database: %v", err)
		}
	}
	log.Info("Server exited")
}
