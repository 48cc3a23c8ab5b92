package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/izamghali/fastrac-take-home-test/internal/checkout"
)

// HandleAllCouriers handles GET /all-courier
func HandleAllCouriers(gw checkout.Gateway, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		couriers, err := gw.AllCouriers(c.Request.Context())
		if err != nil {
			respondError(c, logger, "Failed to fetch couriers", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"data": couriers})
	}
}

// HandleCourierServices handles GET /courier-service/:courier_code
func HandleCourierServices(gw checkout.Gateway, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		courierCode := c.Param("courier_code")
		if courierCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "courier_code required"})
			return
		}

		services, err := gw.CourierServices(c.Request.Context(), courierCode)
		if err != nil {
			respondError(c, logger, "Failed to fetch courier service", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"data": services})
	}
}
