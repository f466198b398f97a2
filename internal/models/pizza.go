package models

import (
	"strings"

	"gorm.io/gorm"
)

// Pizza represents a pizza that restaurants can offer
type Pizza struct {
	ID          int    `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null" validate:"required"`
	Ingredients string `json:"ingredients" gorm:"not null" validate:"required"`

	// No cascade: the store refuses to remove a pizza that is still offered.
	RestaurantPizzas []RestaurantPizza `json:"restaurant_pizzas,omitempty" validate:"-"`
}

func (Pizza) TableName() string {
	return "pizzas"
}

// NewPizza builds a Pizza, rejecting an empty name or ingredient list
func NewPizza(name, ingredients string) (*Pizza, error) {
	pizza := &Pizza{
		Name:        strings.TrimSpace(name),
		Ingredients: strings.TrimSpace(ingredients),
	}
	if err := pizza.Validate(); err != nil {
		return nil, err
	}
	return pizza, nil
}

// Validate checks the pizza's field invariants
func (p *Pizza) Validate() error {
	return validateStruct(p)
}

// BeforeSave keeps invalid pizzas out of the store
func (p *Pizza) BeforeSave(tx *gorm.DB) error {
	return p.Validate()
}
