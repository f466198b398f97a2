package controllers

import (
	"net/http"

	apperrors "github.com/franciscosanchezn/pizza-restaurants-api/internal/errors"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/serializers"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

const msgRestaurantNotFound = "Restaurant not found"

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// GetAllRestaurants lists restaurants without their offers
	GetAllRestaurants(c *gin.Context)
	// GetRestaurantByID returns a restaurant with its offers
	GetRestaurantByID(c *gin.Context)
	// DeleteRestaurant deletes a restaurant and its offers
	DeleteRestaurant(c *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) RestaurantController {
	return &restaurantController{service: service}
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Description Get a list of all restaurants (id, name, address)
// @Tags restaurants
// @Produce json
// @Success 200 {array} serializers.RestaurantSummary
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [get]
func (c *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.GetAllRestaurants()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to retrieve restaurants"))
		return
	}
	ctx.JSON(http.StatusOK, serializers.NewRestaurantSummaries(restaurants))
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a restaurant with the pizzas it offers
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} serializers.RestaurantDetail
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (c *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(msgRestaurantNotFound))
		return
	}

	restaurant, err := c.service.GetRestaurantByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound, models.NewErrorResponse(msgRestaurantNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to retrieve restaurant"))
		return
	}
	ctx.JSON(http.StatusOK, serializers.NewRestaurantDetail(restaurant))
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant and every pizza offer it owns
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(msgRestaurantNotFound))
		return
	}

	if err := c.service.DeleteRestaurant(id); err != nil {
		if apperrors.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound, models.NewErrorResponse(msgRestaurantNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to delete: "+err.Error()))
		return
	}
	ctx.Status(http.StatusNoContent)
}
