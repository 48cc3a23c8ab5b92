package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/izamghali/fastrac-take-home-test/internal/checkout"
	"github.com/izamghali/fastrac-take-home-test/internal/config"
	"github.com/izamghali/fastrac-take-home-test/internal/domain"
	"github.com/izamghali/fastrac-take-home-test/internal/repository"
)

const pickupWindowLayout = "2006-01-02 15:04:05"

type createSessionRequest struct {
	CartID string `json:"cart_id" binding:"required"`
}

// HandleCreateCheckoutSession handles POST /checkout/sessions. It loads the
// cart, its stock snapshot and the owning user, then opens a session and
// fetches the courier catalog.
func HandleCreateCheckoutSession(cfg *config.Config, gw checkout.Gateway, repos *repository.Repositories, sessions *checkout.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart_id required"})
			return
		}
		cartID, err := uuid.Parse(req.CartID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart_id"})
			return
		}

		cart, err := repos.Cart.GetByID(c.Request.Context(), cartID)
		if err != nil {
			respondError(c, logger, "Failed to load cart", err)
			return
		}
		stock, err := repos.Stock.ListForCart(c.Request.Context(), cartID)
		if err != nil {
			respondError(c, logger, "Failed to load stock", err)
			return
		}
		user, err := repos.User.GetByID(c.Request.Context(), cart.UserID)
		if err != nil {
			respondError(c, logger, "Failed to load user", err)
			return
		}

		notifier := checkout.NewBufferedNotifier(logger)
		session := checkout.NewSession(gw, notifier, logger, cart, stock, *user, cfg.Checkout.SubmitDelay)
		session.LoadCouriers(c.Request.Context())
		sessions.Put(session)

		logger.Info("Checkout session opened",
			zap.String("session_id", session.ID.String()),
			zap.String("cart_id", cartID.String()),
		)
		respondSession(c, http.StatusCreated, session)
	}
}

// HandleGetCheckoutSession handles GET /checkout/sessions/:id
func HandleGetCheckoutSession(sessions *checkout.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessionFromPath(c, sessions, logger)
		if !ok {
			return
		}
		respondSession(c, http.StatusOK, session)
	}
}

type setWarehouseRequest struct {
	WarehouseID string `json:"warehouse_id" binding:"required"`
}

// HandleSetCheckoutWarehouse handles PUT /checkout/sessions/:id/warehouse.
// Picking a warehouse kicks off region resolution for its postal code.
func HandleSetCheckoutWarehouse(repos *repository.Repositories, sessions *checkout.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessionFromPath(c, sessions, logger)
		if !ok {
			return
		}

		var req setWarehouseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "warehouse_id required"})
			return
		}
		warehouseID, err := uuid.Parse(req.WarehouseID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid warehouse_id"})
			return
		}

		warehouse, err := repos.Warehouse.GetByID(c.Request.Context(), warehouseID)
		if err != nil {
			respondError(c, logger, "Failed to load warehouse", err)
			return
		}

		session.SetWarehouse(c.Request.Context(), *warehouse)
		respondSession(c, http.StatusOK, session)
	}
}

type setAddressRequest struct {
	PostalCode string `json:"postal_code" binding:"required"`
	Street     string `json:"street"`
}

// HandleSetCheckoutAddress handles PUT /checkout/sessions/:id/address for the
// buyer's side
func HandleSetCheckoutAddress(sessions *checkout.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessionFromPath(c, sessions, logger)
		if !ok {
			return
		}

		var req setAddressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "postal_code required"})
			return
		}

		session.SetUserAddress(c.Request.Context(), domain.Address{
			PostalCode: req.PostalCode,
			Street:     req.Street,
		})
		respondSession(c, http.StatusOK, session)
	}
}

type selectCourierRequest struct {
	CourierCode string `json:"courier_code" binding:"required"`
}

// HandleSelectCheckoutCourier handles PUT /checkout/sessions/:id/courier
func HandleSelectCheckoutCourier(sessions *checkout.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessionFromPath(c, sessions, logger)
		if !ok {
			return
		}

		var req selectCourierRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "courier_code required"})
			return
		}

		if err := session.SelectCourier(c.Request.Context(), req.CourierCode); err != nil {
			respondError(c, logger, "Failed to select courier", err)
			return
		}
		respondSession(c, http.StatusOK, session)
	}
}

type selectServiceRequest struct {
	ServiceCode string `json:"code_service" binding:"required"`
}

// HandleSelectCheckoutService handles PUT /checkout/sessions/:id/service
func HandleSelectCheckoutService(sessions *checkout.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessionFromPath(c, sessions, logger)
		if !ok {
			return
		}

		var req selectServiceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "code_service required"})
			return
		}

		if err := session.SelectService(c.Request.Context(), req.ServiceCode); err != nil {
			respondError(c, logger, "Failed to select service", err)
			return
		}
		respondSession(c, http.StatusOK, session)
	}
}

type setInsuranceRequest struct {
	Insurance *bool `json:"insurance" binding:"required"`
}

// HandleSetCheckoutInsurance handles PUT /checkout/sessions/:id/insurance
func HandleSetCheckoutInsurance(sessions *checkout.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessionFromPath(c, sessions, logger)
		if !ok {
			return
		}

		var req setInsuranceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "insurance required"})
			return
		}

		session.SetInsurance(*req.Insurance)
		respondSession(c, http.StatusOK, session)
	}
}

// HandleSubmitCheckout handles POST /checkout/sessions/:id/submit. On success
// the created order is persisted and the cart cleared.
func HandleSubmitCheckout(repos *repository.Repositories, sessions *checkout.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessionFromPath(c, sessions, logger)
		if !ok {
			return
		}

		confirmation, err := session.Submit(c.Request.Context())
		if err != nil {
			respondError(c, logger, "Failed to create order", err)
			return
		}

		selection := session.Snapshot()
		record := &domain.OrderRecord{
			BookingID:    confirmation.BookingID,
			Waybill:      confirmation.AWB,
			CourierCode:  selection.CourierCode,
			ServiceCode:  selection.ServiceCode,
			Insurance:    selection.Insurance,
			ShippingCost: confirmation.Tariff,
			Subtotal:     selection.Subtotal,
		}
		if selection.WarehouseID != nil {
			record.WarehouseID = *selection.WarehouseID
		}
		if start, err := time.Parse(pickupWindowLayout, confirmation.ExpectPickupStart); err == nil {
			record.ExpectPickupStart = &start
		}
		if end, err := time.Parse(pickupWindowLayout, confirmation.ExpectPickupEnd); err == nil {
			record.ExpectPickupEnd = &end
		}

		cart := session.Cart()
		if cart != nil {
			record.CartID = cart.ID
			record.UserID = cart.UserID
			if err := repos.Order.Create(c.Request.Context(), record); err != nil {
				logger.Warn("Failed to persist order record", zap.Error(err))
			}
			if err := repos.Cart.Clear(c.Request.Context(), cart.ID); err != nil {
				logger.Warn("Failed to clear cart after submission",
					zap.String("cart_id", cart.ID.String()), zap.Error(err))
			}
		}

		c.JSON(http.StatusCreated, gin.H{
			"success":       true,
			"message":       "Order successfully created",
			"data":          confirmation,
			"notifications": session.DrainNotices(),
		})
	}
}

func sessionFromPath(c *gin.Context, sessions *checkout.Store, logger *zap.Logger) (*checkout.Session, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return nil, false
	}
	session, err := sessions.Get(id)
	if err != nil {
		respondError(c, logger, "Failed to load checkout session", err)
		return nil, false
	}
	return session, true
}

func respondSession(c *gin.Context, status int, session *checkout.Session) {
	c.JSON(status, gin.H{
		"data":          session.Snapshot(),
		"notifications": session.DrainNotices(),
	})
}
