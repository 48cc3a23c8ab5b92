package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/izamghali/fastrac-take-home-test/internal/checkout"
	"github.com/izamghali/fastrac-take-home-test/internal/fastrac"
)

type tariffRequest struct {
	UserRegionID      int64 `json:"userRegionId"`
	WarehouseRegionID int64 `json:"warehouseRegionId"`
}

// HandleQuoteTariff handles POST /tariff. The warehouse region is the origin,
// the user region the destination; the package profile is the fixed
// placeholder, not derived from cart contents.
func HandleQuoteTariff(gw checkout.Gateway, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req tariffRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing userRegionId or warehouseRegionId request body"})
			return
		}
		if req.UserRegionID == 0 || req.WarehouseRegionID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing userRegionId or warehouseRegionId request body"})
			return
		}

		quote, err := gw.QuoteTariff(c.Request.Context(), fastrac.TariffRequest{
			Origin:         req.WarehouseRegionID,
			Destination:    req.UserRegionID,
			PackageProfile: fastrac.DefaultPackageProfile,
		})
		if err != nil {
			respondError(c, logger, "Failed to fetch tariff", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": quote.Success,
			"message": quote.Message,
			"data":    gin.H{"tariff": quote.Tariff},
		})
	}
}
