package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/izamghali/fastrac-take-home-test/internal/domain"
)

// CartRepository defines cart data access methods
type CartRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Cart, error)
	Clear(ctx context.Context, id uuid.UUID) error
}

// StockRepository defines stock data access methods. Stock is read-only from
// the checkout flow; it is only compared against ordered quantities.
type StockRepository interface {
	ListForCart(ctx context.Context, cartID uuid.UUID) ([]domain.StockRecord, error)
}

// WarehouseRepository defines warehouse data access methods
type WarehouseRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Warehouse, error)
	List(ctx context.Context) ([]*domain.Warehouse, error)
}

// UserRepository defines user data access methods
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// OrderRepository defines created-order data access methods
type OrderRepository interface {
	Create(ctx context.Context, order *domain.OrderRecord) error
	GetByBookingID(ctx context.Context, bookingID string) (*domain.OrderRecord, error)
}

// Repositories aggregates all repositories
type Repositories struct {
	Cart      CartRepository
	Stock     StockRepository
	Warehouse WarehouseRepository
	User      UserRepository
	Order     OrderRepository
}
