// Package serializers shapes models into JSON views. Summary views carry
// scalar fields only; detail views nest one level of related entities and
// drop the back-references that would otherwise recurse.
package serializers

import "github.com/franciscosanchezn/pizza-restaurants-api/internal/models"

// RestaurantSummary is the list view of a restaurant
type RestaurantSummary struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// PizzaSummary is the list view of a pizza
type PizzaSummary struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// RestaurantPizzaWithPizza is an offer nested under its restaurant
type RestaurantPizzaWithPizza struct {
	ID           int          `json:"id"`
	Price        int          `json:"price"`
	PizzaID      int          `json:"pizza_id"`
	RestaurantID int          `json:"restaurant_id"`
	Pizza        PizzaSummary `json:"pizza"`
}

// RestaurantPizzaWithRestaurant is an offer nested under its pizza
type RestaurantPizzaWithRestaurant struct {
	ID           int               `json:"id"`
	Price        int               `json:"price"`
	PizzaID      int               `json:"pizza_id"`
	RestaurantID int               `json:"restaurant_id"`
	Restaurant   RestaurantSummary `json:"restaurant"`
}

// RestaurantDetail is the full view of a restaurant
type RestaurantDetail struct {
	ID               int                        `json:"id"`
	Name             string                     `json:"name"`
	Address          string                     `json:"address"`
	RestaurantPizzas []RestaurantPizzaWithPizza `json:"restaurant_pizzas"`
}

// PizzaDetail is the full view of a pizza
type PizzaDetail struct {
	ID               int                             `json:"id"`
	Name             string                          `json:"name"`
	Ingredients      string                          `json:"ingredients"`
	RestaurantPizzas []RestaurantPizzaWithRestaurant `json:"restaurant_pizzas"`
}

// RestaurantPizzaDetail is the full view of an offer
type RestaurantPizzaDetail struct {
	ID           int               `json:"id"`
	Price        int               `json:"price"`
	PizzaID      int               `json:"pizza_id"`
	RestaurantID int               `json:"restaurant_id"`
	Pizza        PizzaSummary      `json:"pizza"`
	Restaurant   RestaurantSummary `json:"restaurant"`
}

func NewRestaurantSummary(r models.Restaurant) RestaurantSummary {
	return RestaurantSummary{ID: r.ID, Name: r.Name, Address: r.Address}
}

// NewRestaurantSummaries never returns nil so empty lists encode as []
func NewRestaurantSummaries(restaurants []models.Restaurant) []RestaurantSummary {
	out := make([]RestaurantSummary, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, NewRestaurantSummary(r))
	}
	return out
}

func NewPizzaSummary(p models.Pizza) PizzaSummary {
	return PizzaSummary{ID: p.ID, Name: p.Name, Ingredients: p.Ingredients}
}

// NewPizzaSummaries never returns nil so empty lists encode as []
func NewPizzaSummaries(pizzas []models.Pizza) []PizzaSummary {
	out := make([]PizzaSummary, 0, len(pizzas))
	for _, p := range pizzas {
		out = append(out, NewPizzaSummary(p))
	}
	return out
}

// NewRestaurantDetail expects RestaurantPizzas and their Pizza to be loaded
func NewRestaurantDetail(r models.Restaurant) RestaurantDetail {
	offers := make([]RestaurantPizzaWithPizza, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		offer := RestaurantPizzaWithPizza{
			ID:           rp.ID,
			Price:        rp.Price,
			PizzaID:      rp.PizzaID,
			RestaurantID: rp.RestaurantID,
		}
		if rp.Pizza != nil {
			offer.Pizza = NewPizzaSummary(*rp.Pizza)
		}
		offers = append(offers, offer)
	}
	return RestaurantDetail{
		ID:               r.ID,
		Name:             r.Name,
		Address:          r.Address,
		RestaurantPizzas: offers,
	}
}

// NewPizzaDetail expects RestaurantPizzas and their Restaurant to be loaded
func NewPizzaDetail(p models.Pizza) PizzaDetail {
	offers := make([]RestaurantPizzaWithRestaurant, 0, len(p.RestaurantPizzas))
	for _, rp := range p.RestaurantPizzas {
		offer := RestaurantPizzaWithRestaurant{
			ID:           rp.ID,
			Price:        rp.Price,
			PizzaID:      rp.PizzaID,
			RestaurantID: rp.RestaurantID,
		}
		if rp.Restaurant != nil {
			offer.Restaurant = NewRestaurantSummary(*rp.Restaurant)
		}
		offers = append(offers, offer)
	}
	return PizzaDetail{
		ID:               p.ID,
		Name:             p.Name,
		Ingredients:      p.Ingredients,
		RestaurantPizzas: offers,
	}
}

// NewRestaurantPizzaDetail expects Restaurant and Pizza to be loaded
func NewRestaurantPizzaDetail(rp models.RestaurantPizza) RestaurantPizzaDetail {
	detail := RestaurantPizzaDetail{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
	}
	if rp.Pizza != nil {
		detail.Pizza = NewPizzaSummary(*rp.Pizza)
	}
	if rp.Restaurant != nil {
		detail.Restaurant = NewRestaurantSummary(*rp.Restaurant)
	}
	return detail
}
