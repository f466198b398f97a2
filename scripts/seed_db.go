package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/joho/godotenv"
)

func main() {
	// Parse command line flags
	_ = godotenv.Load()
	dbURI := flag.String("db", os.Getenv("DB_URI"), "Database connection string (defaults to DB_URI, then "+database.DefaultDatabaseURL+")")
	reset := flag.Bool("reset", false, "Drop the restaurants, pizzas and restaurant_pizzas tables before seeding")
	flag.Parse()

	dbConfig, err := database.ParseDatabaseURL(*dbURI)
	if err != nil {
		log.Fatal("Invalid database connection string:", err)
	}
	dbConfig.MaxRetries = 1

	db, err := database.InitDatabase(dbConfig)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if *reset {
		// Offers first, they reference both other tables
		if err := db.Migrator().DropTable(&models.RestaurantPizza{}, &models.Restaurant{}, &models.Pizza{}); err != nil {
			log.Fatal("Failed to drop tables:", err)
		}
		fmt.Println("Dropped existing tables")
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate:", err)
	}

	seeded, err := database.SeedIfEmpty(db)
	if err != nil {
		log.Fatal("Failed to seed:", err)
	}
	if !seeded {
		fmt.Printf("Database %s already has restaurants, nothing to do (use -reset to reseed)\n", dbConfig.String())
		return
	}

	var restaurants, pizzas, offers int64
	db.Model(&models.Restaurant{}).Count(&restaurants)
	db.Model(&models.Pizza{}).Count(&pizzas)
	db.Model(&models.RestaurantPizza{}).Count(&offers)
	fmt.Printf("✓ Seeded %s\n", dbConfig.String())
	fmt.Printf("Restaurants: %d\nPizzas: %d\nRestaurant pizzas: %d\n", restaurants, pizzas, offers)
}
