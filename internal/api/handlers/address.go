package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/izamghali/fastrac-take-home-test/internal/checkout"
)

// HandleLocationByPostalCode handles GET /address/postal_code/:postal_code
func HandleLocationByPostalCode(gw checkout.Gateway, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		postalCode := c.Param("postal_code")
		if postalCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "postal_code required"})
			return
		}

		locations, err := gw.LocationsByPostalCode(c.Request.Context(), postalCode)
		if err != nil {
			respondError(c, logger, "Failed to fetch location by postal code", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"data": locations})
	}
}

type searchRegionRequest struct {
	Search string `json:"search"`
}

// HandleSearchRegion handles POST /address/region
func HandleSearchRegion(gw checkout.Gateway, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req searchRegionRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Search == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing search in request body"})
			return
		}

		regions, err := gw.SearchRegions(c.Request.Context(), req.Search)
		if err != nil {
			respondError(c, logger, "Failed to fetch region", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"data": regions})
	}
}
