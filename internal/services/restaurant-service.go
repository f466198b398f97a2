package services

import (
	apperrors "github.com/franciscosanchezn/pizza-restaurants-api/internal/errors"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RestaurantService provides methods to interact with the restaurants table
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants without their offers
	GetAllRestaurants() ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant with its offers and their pizzas
	GetRestaurantByID(id int) (models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant together with its offers
	DeleteRestaurant(id int) error
}

// restaurantService is the implementation of the RestaurantService interface
type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetAllRestaurants() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.Order("id").Find(&restaurants).Error; err != nil {
		return nil, apperrors.NewStoreError("list restaurants", err)
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(id int) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.Preload("RestaurantPizzas.Pizza").First(&restaurant, id).Error
	if err != nil {
		return models.Restaurant{}, lookupError(err, apperrors.ErrRestaurantNotFound, "get restaurant")
	}
	return restaurant, nil
}

func (s *restaurantService) DeleteRestaurant(id int) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, id).Error; err != nil {
			return lookupError(err, apperrors.ErrRestaurantNotFound, "get restaurant")
		}

		// Offers go first so the restaurant row is never left referenced
		if err := tx.Where("restaurant_id = ?", restaurant.ID).Delete(&models.RestaurantPizza{}).Error; err != nil {
			return apperrors.NewStoreError("delete restaurant pizzas", err)
		}
		if err := tx.Delete(&restaurant).Error; err != nil {
			return apperrors.NewStoreError("delete restaurant", err)
		}
		return nil
	})
	if apperrors.IsStore(err) {
		log.WithError(err).WithField("restaurant_id", id).Error("Failed to delete restaurant, transaction rolled back")
	}
	return err
}
