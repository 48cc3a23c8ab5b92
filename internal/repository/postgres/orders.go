package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/izamghali/fastrac-take-home-test/internal/domain"
	"github.com/izamghali/fastrac-take-home-test/pkg/errors"
)

type orderRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sql.DB, logger *zap.Logger) *orderRepository {
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.OrderRecord) error {
	query := `
		INSERT INTO orders (
			id, cart_id, user_id, warehouse_id, booking_id, waybill,
			courier_code, service_code, insurance, shipping_cost, subtotal,
			expect_pickup_start, expect_pickup_end, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, query,
		order.ID,
		order.CartID,
		order.UserID,
		order.WarehouseID,
		order.BookingID,
		order.Waybill,
		order.CourierCode,
		order.ServiceCode,
		order.Insurance,
		order.ShippingCost,
		order.Subtotal.String(),
		order.ExpectPickupStart,
		order.ExpectPickupEnd,
		order.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create order record", zap.Error(err))
		return err
	}
	return nil
}

func (r *orderRepository) GetByBookingID(ctx context.Context, bookingID string) (*domain.OrderRecord, error) {
	query := `
		SELECT id, cart_id, user_id, warehouse_id, booking_id, waybill,
			courier_code, service_code, insurance, shipping_cost, subtotal,
			expect_pickup_start, expect_pickup_end, created_at
		FROM orders
		WHERE booking_id = $1
	`

	var order domain.OrderRecord
	var subtotal string
	var pickupStart, pickupEnd sql.NullTime
	err := r.db.QueryRowContext(ctx, query, bookingID).Scan(
		&order.ID,
		&order.CartID,
		&order.UserID,
		&order.WarehouseID,
		&order.BookingID,
		&order.Waybill,
		&order.CourierCode,
		&order.ServiceCode,
		&order.Insurance,
		&order.ShippingCost,
		&subtotal,
		&pickupStart,
		&pickupEnd,
		&order.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &errors.ErrNotFound{Resource: "order", ID: bookingID}
	}
	if err != nil {
		r.logger.Error("Failed to get order record", zap.Error(err))
		return nil, err
	}
	order.Subtotal, err = decimal.NewFromString(subtotal)
	if err != nil {
		return nil, err
	}
	if pickupStart.Valid {
		order.ExpectPickupStart = &pickupStart.Time
	}
	if pickupEnd.Valid {
		order.ExpectPickupEnd = &pickupEnd.Time
	}
	return &order, nil
}
