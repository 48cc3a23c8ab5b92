package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/izamghali/fastrac-take-home-test/internal/api/handlers"
	"github.com/izamghali/fastrac-take-home-test/internal/checkout"
	"github.com/izamghali/fastrac-take-home-test/internal/config"
	"github.com/izamghali/fastrac-take-home-test/internal/repository"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, gw checkout.Gateway, repos *repository.Repositories, sessions *checkout.Store, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(customRecovery(logger))
	router.Use(loggingMiddleware(logger))

	// Root: friendly response so GET / returns 200 instead of 404
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "Storefront Checkout API",
			"endpoints": []string{
				"GET /health",
				"GET /address/postal_code/:postal_code",
				"POST /address/region",
				"GET /all-courier",
				"GET /courier-service/:courier_code",
				"POST /tariff",
				"POST /order",
				"GET /order/:booking_id",
				"POST /checkout/sessions",
				"GET /checkout/sessions/:id",
				"POST /checkout/sessions/:id/submit",
			},
		})
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Logistics gateway: thin proxies over the Fastrac provider
	router.GET("/address/postal_code/:postal_code", handlers.HandleLocationByPostalCode(gw, logger))
	router.POST("/address/region", handlers.HandleSearchRegion(gw, logger))
	router.GET("/all-courier", handlers.HandleAllCouriers(gw, logger))
	router.GET("/courier-service/:courier_code", handlers.HandleCourierServices(gw, logger))
	router.POST("/tariff", handlers.HandleQuoteTariff(gw, logger))
	router.POST("/order", handlers.HandleCreateOrder(gw, logger))
	router.GET("/order/:booking_id", handlers.HandleGetOrder(repos, logger))

	// Checkout sessions: the stateful selection flow
	co := router.Group("/checkout/sessions")
	{
		co.POST("", handlers.HandleCreateCheckoutSession(cfg, gw, repos, sessions, logger))
		co.GET("/:id", handlers.HandleGetCheckoutSession(sessions, logger))
		co.PUT("/:id/warehouse", handlers.HandleSetCheckoutWarehouse(repos, sessions, logger))
		co.PUT("/:id/address", handlers.HandleSetCheckoutAddress(sessions, logger))
		co.PUT("/:id/courier", handlers.HandleSelectCheckoutCourier(sessions, logger))
		co.PUT("/:id/service", handlers.HandleSelectCheckoutService(sessions, logger))
		co.PUT("/:id/insurance", handlers.HandleSetCheckoutInsurance(sessions, logger))
		co.POST("/:id/submit", handlers.HandleSubmitCheckout(repos, sessions, logger))
	}

	return router
}

// customRecovery is a custom recovery middleware that logs panics
func customRecovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered",
			zap.Any("error", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"details": fmt.Sprintf("%v", recovered),
		})
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
