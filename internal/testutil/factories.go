package testutil

import (
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// CreateRestaurant inserts a restaurant
func CreateRestaurant(t *testing.T, db *gorm.DB, name, address string) *models.Restaurant {
	t.Helper()
	restaurant, err := models.NewRestaurant(name, address)
	require.NoError(t, err)
	require.NoError(t, db.Create(restaurant).Error)
	return restaurant
}

// CreatePizza inserts a pizza
func CreatePizza(t *testing.T, db *gorm.DB, name, ingredients string) *models.Pizza {
	t.Helper()
	pizza, err := models.NewPizza(name, ingredients)
	require.NoError(t, err)
	require.NoError(t, db.Create(pizza).Error)
	return pizza
}

// CreateRestaurantPizza inserts an offer of pizza at restaurant for price
func CreateRestaurantPizza(t *testing.T, db *gorm.DB, price int, pizza *models.Pizza, restaurant *models.Restaurant) *models.RestaurantPizza {
	t.Helper()
	rp, err := models.NewRestaurantPizza(price, pizza.ID, restaurant.ID)
	require.NoError(t, err)
	require.NoError(t, db.Create(rp).Error)
	return rp
}

// CountRestaurantPizzas returns the number of offers, optionally restricted to one restaurant
func CountRestaurantPizzas(t *testing.T, db *gorm.DB, restaurantID ...int) int64 {
	t.Helper()
	var count int64
	q := db.Model(&models.RestaurantPizza{})
	if len(restaurantID) > 0 {
		q = q.Where("restaurant_id = ?", restaurantID[0])
	}
	require.NoError(t, q.Count(&count).Error)
	return count
}
