package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/izamghali/fastrac-take-home-test/internal/checkout"
	"github.com/izamghali/fastrac-take-home-test/internal/fastrac"
	"github.com/izamghali/fastrac-take-home-test/internal/repository"
)

// HandleCreateOrder handles POST /order: books an order with the provider
// directly, without a checkout session
func HandleCreateOrder(gw checkout.Gateway, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req fastrac.OrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing request body"})
			return
		}

		confirmation, err := gw.CreateOrder(c.Request.Context(), req)
		if err != nil {
			respondError(c, logger, "Failed to create order", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Order successfully created",
			"data":    confirmation,
		})
	}
}

// HandleGetOrder handles GET /order/:booking_id for orders persisted after
// checkout submission
func HandleGetOrder(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingID := c.Param("booking_id")
		if bookingID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "booking_id required"})
			return
		}

		order, err := repos.Order.GetByBookingID(c.Request.Context(), bookingID)
		if err != nil {
			respondError(c, logger, "Failed to fetch order", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"data": order})
	}
}
