package models

import (
	"gorm.io/gorm"
)

// Price bounds for a RestaurantPizza, inclusive
const (
	MinPrice = 1
	MaxPrice = 30
)

// RestaurantPizza records that a restaurant offers a pizza at a given price
type RestaurantPizza struct {
	ID           int `json:"id" gorm:"primaryKey"`
	Price        int `json:"price" gorm:"not null" validate:"min=1,max=30"`
	RestaurantID int `json:"restaurant_id" gorm:"not null;index" validate:"gt=0"`
	PizzaID      int `json:"pizza_id" gorm:"not null;index" validate:"gt=0"`

	Restaurant *Restaurant `json:"restaurant,omitempty" validate:"-"`
	Pizza      *Pizza      `json:"pizza,omitempty" validate:"-"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// NewRestaurantPizza builds an association, returning a *errors.ValidationError
// when the price is outside [MinPrice, MaxPrice] or an id is not positive.
// Existence of the referenced rows is checked by the service inside its transaction.
func NewRestaurantPizza(price, pizzaID, restaurantID int) (*RestaurantPizza, error) {
	rp := &RestaurantPizza{
		Price:        price,
		PizzaID:      pizzaID,
		RestaurantID: restaurantID,
	}
	if err := rp.Validate(); err != nil {
		return nil, err
	}
	return rp, nil
}

// Validate checks the price bounds and foreign key presence
func (rp *RestaurantPizza) Validate() error {
	return validateStruct(rp)
}

// BeforeSave runs in the write path, so an out-of-range price aborts the
// insert even when the constructor was bypassed.
func (rp *RestaurantPizza) BeforeSave(tx *gorm.DB) error {
	return rp.Validate()
}
