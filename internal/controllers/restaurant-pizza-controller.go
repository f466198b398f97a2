package controllers

import (
	"net/http"

	apperrors "github.com/franciscosanchezn/pizza-restaurants-api/internal/errors"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/serializers"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantPizzaController handles HTTP requests that create pizza offers
type RestaurantPizzaController interface {
	// CreateRestaurantPizza offers a pizza at a restaurant for a price
	CreateRestaurantPizza(c *gin.Context)
}

// CreateRestaurantPizzaRequest is the body of POST /restaurant_pizzas.
// Pointers distinguish a missing field from an explicit zero.
type CreateRestaurantPizzaRequest struct {
	Price        *int `json:"price" binding:"required" example:"15"`
	PizzaID      *int `json:"pizza_id" binding:"required" example:"1"`
	RestaurantID *int `json:"restaurant_id" binding:"required" example:"3"`
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Offer an existing pizza at an existing restaurant. Price must be between 1 and 30.
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body CreateRestaurantPizzaRequest true "Offer"
// @Success 201 {object} serializers.RestaurantPizzaDetail
// @Failure 400 {object} models.ErrorsResponse
// @Failure 500 {object} models.ErrorsResponse
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var req CreateRestaurantPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewErrorsResponse(models.MsgValidationErrors))
		return
	}

	rp, err := c.service.CreateRestaurantPizza(*req.Price, *req.PizzaID, *req.RestaurantID)
	if err != nil {
		if apperrors.IsValidation(err) {
			ctx.JSON(http.StatusBadRequest, models.NewErrorsResponse(models.MsgValidationErrors))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.NewErrorsResponse("unexpected error: "+err.Error()))
		return
	}
	ctx.JSON(http.StatusCreated, serializers.NewRestaurantPizzaDetail(rp))
}
