package services

import (
	apperrors "github.com/franciscosanchezn/pizza-restaurants-api/internal/errors"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

// PizzaService provides methods to interact with the pizza database
type PizzaService interface {
	// GetAllPizzas retrieves all pizzas from the database
	GetAllPizzas() ([]models.Pizza, error)
	// GetPizzaByID retrieves a pizza with the restaurants offering it
	GetPizzaByID(id int) (models.Pizza, error)
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) GetAllPizzas() ([]models.Pizza, error) {
	var pizzas []models.Pizza
	if err := s.db.Order("id").Find(&pizzas).Error; err != nil {
		return nil, apperrors.NewStoreError("list pizzas", err)
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizzaByID(id int) (models.Pizza, error) {
	var pizza models.Pizza
	if err := s.db.Preload("RestaurantPizzas.Restaurant").First(&pizza, id).Error; err != nil {
		return models.Pizza{}, lookupError(err, apperrors.ErrPizzaNotFound, "get pizza")
	}
	return pizza, nil
}
