package services

import (
	apperrors "github.com/franciscosanchezn/pizza-restaurants-api/internal/errors"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RestaurantPizzaService creates priced offers of a pizza at a restaurant
type RestaurantPizzaService interface {
	// CreateRestaurantPizza validates and inserts an offer, returning it with
	// its restaurant and pizza loaded. Missing references and out-of-range
	// prices yield a *errors.ValidationError and nothing is written.
	CreateRestaurantPizza(price, pizzaID, restaurantID int) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(price, pizzaID, restaurantID int) (models.RestaurantPizza, error) {
	rp, err := models.NewRestaurantPizza(price, pizzaID, restaurantID)
	if err != nil {
		return models.RestaurantPizza{}, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, rp.RestaurantID).Error; err != nil {
			return lookupError(err,
				apperrors.NewValidationError("restaurant_id", "restaurant does not exist"), "get restaurant")
		}

		var pizza models.Pizza
		if err := tx.First(&pizza, rp.PizzaID).Error; err != nil {
			return lookupError(err,
				apperrors.NewValidationError("pizza_id", "pizza does not exist"), "get pizza")
		}

		if err := tx.Create(rp).Error; err != nil {
			if apperrors.IsValidation(err) {
				return err
			}
			return apperrors.NewStoreError("create restaurant pizza", err)
		}

		// Attached after the insert so GORM does not upsert them
		rp.Restaurant = &restaurant
		rp.Pizza = &pizza
		return nil
	})
	if err != nil {
		if apperrors.IsStore(err) {
			log.WithError(err).WithFields(log.Fields{
				"restaurant_id": restaurantID,
				"pizza_id":      pizzaID,
			}).Error("Failed to create restaurant pizza, transaction rolled back")
		}
		return models.RestaurantPizza{}, err
	}
	return *rp, nil
}
