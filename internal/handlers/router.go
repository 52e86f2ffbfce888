package handlers

import (
	"car-api-go/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const carsPath = "/api/v1/cars"

// NewRouter wires the car and health routes behind logging, recovery, CORS
// and error rendering.
func NewRouter(cars *CarHandler, health *HealthHandler, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler(logger))

	router.GET(carsPath+"/health", health.HealthCheck)
	cars.Register(router.Group(carsPath))

	return router
}
