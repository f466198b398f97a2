package models

import (
	"strings"

	"gorm.io/gorm"
)

// Restaurant owns the pizzas it offers; deleting it removes its offers
type Restaurant struct {
	ID      int    `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"not null" validate:"required"`
	Address string `json:"address" gorm:"not null" validate:"required"`

	RestaurantPizzas []RestaurantPizza `json:"restaurant_pizzas,omitempty" gorm:"constraint:OnDelete:CASCADE" validate:"-"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

// NewRestaurant builds a Restaurant, rejecting an empty name or address
func NewRestaurant(name, address string) (*Restaurant, error) {
	restaurant := &Restaurant{
		Name:    strings.TrimSpace(name),
		Address: strings.TrimSpace(address),
	}
	if err := restaurant.Validate(); err != nil {
		return nil, err
	}
	return restaurant, nil
}

// Validate checks the restaurant's field invariants
func (r *Restaurant) Validate() error {
	return validateStruct(r)
}

// BeforeSave keeps invalid restaurants out of the store
func (r *Restaurant) BeforeSave(tx *gorm.DB) error {
	return r.Validate()
}
