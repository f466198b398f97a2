package routes

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/metrics"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the handlers and collaborators the router is built from
type Dependencies struct {
	RestaurantController      controllers.RestaurantController
	PizzaController           controllers.PizzaController
	RestaurantPizzaController controllers.RestaurantPizzaController
	Metrics                   *metrics.HTTPMetrics
	Logger                    *logrus.Logger
}

// SetupRouter initializes the Gin router and sets up the routes
func SetupRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	if deps.Logger != nil {
		router.Use(middleware.RequestLogger(deps.Logger))
	}
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
	}
	// Inside the logger and metrics so a recovered panic is logged and counted as a 500
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig()))

	setupRoutes(router, deps)
	return router
}

func corsConfig() cors.Config {
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}
	config.AllowHeaders = append(config.AllowHeaders, middleware.RequestIDHeader)
	config.ExposeHeaders = []string{middleware.RequestIDHeader}
	return config
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine, deps Dependencies) {
	router.GET("/", controllers.IndexHandler)
	router.GET("/health", controllers.HealthCheckHandler)

	restaurants := router.Group("/restaurants")
	{
		restaurants.GET("", deps.RestaurantController.GetAllRestaurants)
		restaurants.GET("/:id", deps.RestaurantController.GetRestaurantByID)
		restaurants.DELETE("/:id", deps.RestaurantController.DeleteRestaurant)
	}

	pizzas := router.Group("/pizzas")
	{
		pizzas.GET("", deps.PizzaController.GetAllPizzas)
		pizzas.GET("/:id", deps.PizzaController.GetPizzaByID)
	}

	router.POST("/restaurant_pizzas", deps.RestaurantPizzaController.CreateRestaurantPizza)

	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
