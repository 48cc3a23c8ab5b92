package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/izamghali/fastrac-take-home-test/pkg/errors"
)

// respondError maps the error taxonomy onto HTTP statuses. fallbackMessage is
// the user-facing text for upstream and unknown failures, so provider error
// bodies never leak to clients.
func respondError(c *gin.Context, logger *zap.Logger, fallbackMessage string, err error) {
	switch err.(type) {
	case *errors.ErrValidation:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case *errors.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case *errors.ErrConflict:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case *errors.ErrStockInsufficient:
		c.JSON(http.StatusConflict, gin.H{"message": "Some items are out of stock"})
	case *errors.ErrConfiguration:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Missing API credentials"})
	default:
		logger.Error(fallbackMessage, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMessage})
	}
}
