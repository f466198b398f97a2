package controllers

import (
	"net/http"

	apperrors "github.com/franciscosanchezn/pizza-restaurants-api/internal/errors"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/serializers"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(c *gin.Context)
}

type pizzaController struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) PizzaController {
	return &pizzaController{service: service}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get a list of all pizzas (id, name, ingredients)
// @Tags pizzas
// @Produce json
// @Success 200 {array} serializers.PizzaSummary
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas [get]
func (c *pizzaController) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.GetAllPizzas()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to retrieve pizzas"))
		return
	}
	ctx.JSON(http.StatusOK, serializers.NewPizzaSummaries(pizzas))
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza with the restaurants offering it
// @Tags pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} serializers.PizzaDetail
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas/{id} [get]
func (c *pizzaController) GetPizzaByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse("Pizza not found"))
		return
	}

	pizza, err := c.service.GetPizzaByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound, models.NewErrorResponse("Pizza not found"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to retrieve pizza"))
		return
	}
	ctx.JSON(http.StatusOK, serializers.NewPizzaDetail(pizza))
}
