package database

import (
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the restaurants, pizzas and restaurant_pizzas tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Restaurant{}, &models.Pizza{}, &models.RestaurantPizza{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// SeedIfEmpty seeds the store when no restaurant exists yet.
// It reports whether seeding happened.
func SeedIfEmpty(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count restaurants: %w", err)
	}
	if count > 0 {
		log.Info("Database already seeded with initial data")
		return false, nil
	}

	log.Info("Database is empty, seeding initial data")
	if err := db.Transaction(seed); err != nil {
		return false, fmt.Errorf("seed database: %w", err)
	}
	log.Info("Database seeded successfully")
	return true, nil
}

func seed(tx *gorm.DB) error {
	restaurants := []struct{ name, address string }{
		{"Karen's Pizza Shack", "address1"},
		{"Sanjay's Pizza", "address2"},
		{"Kiki's Pizza", "address3"},
	}
	pizzas := []struct{ name, ingredients string }{
		{"Emma", "Dough, Tomato Sauce, Cheese"},
		{"Geri", "Dough, Tomato Sauce, Cheese, Pepperoni"},
		{"Melanie", "Dough, Sauce, Ricotta, Red peppers, Mustard"},
	}

	var createdRestaurants []*models.Restaurant
	for _, r := range restaurants {
		restaurant, err := models.NewRestaurant(r.name, r.address)
		if err != nil {
			return err
		}
		if err := tx.Create(restaurant).Error; err != nil {
			return err
		}
		createdRestaurants = append(createdRestaurants, restaurant)
	}

	var createdPizzas []*models.Pizza
	for _, p := range pizzas {
		pizza, err := models.NewPizza(p.name, p.ingredients)
		if err != nil {
			return err
		}
		if err := tx.Create(pizza).Error; err != nil {
			return err
		}
		createdPizzas = append(createdPizzas, pizza)
	}

	// Each restaurant offers each pizza at a price derived from their positions
	for i, restaurant := range createdRestaurants {
		for j, pizza := range createdPizzas {
			price := models.MinPrice + (i*len(createdPizzas)+j)*3%models.MaxPrice
			rp, err := models.NewRestaurantPizza(price, pizza.ID, restaurant.ID)
			if err != nil {
				return err
			}
			if err := tx.Create(rp).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
