package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/izamghali/fastrac-take-home-test/internal/domain"
	"github.com/izamghali/fastrac-take-home-test/pkg/errors"
)

type cartRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *sql.DB, logger *zap.Logger) *cartRepository {
	return &cartRepository{
		db:     db,
		logger: logger,
	}
}

func (r *cartRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Cart, error) {
	query := `
		SELECT id, user_id, created_at, updated_at
		FROM carts
		WHERE id = $1
	`

	var cart domain.Cart
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&cart.ID,
		&cart.UserID,
		&cart.CreatedAt,
		&cart.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &errors.ErrNotFound{Resource: "cart", ID: id.String()}
	}
	if err != nil {
		r.logger.Error("Failed to get cart", zap.Error(err))
		return nil, err
	}

	items, err := r.itemsByCartID(ctx, id)
	if err != nil {
		return nil, err
	}
	cart.Items = items

	return &cart, nil
}

func (r *cartRepository) itemsByCartID(ctx context.Context, cartID uuid.UUID) ([]domain.CartItem, error) {
	query := `
		SELECT ci.id, ci.cart_id, ci.product_variant_id, p.name, ci.size, ci.quantity, ci.price
		FROM cart_items ci
		JOIN product_variants pv ON pv.id = ci.product_variant_id
		JOIN products p ON p.id = pv.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.created_at
	`

	rows, err := r.db.QueryContext(ctx, query, cartID)
	if err != nil {
		r.logger.Error("Failed to list cart items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		var price string
		if err := rows.Scan(
			&item.ID,
			&item.CartID,
			&item.ProductVariantID,
			&item.ProductName,
			&item.Size,
			&item.Quantity,
			&price,
		); err != nil {
			return nil, err
		}
		item.Price, err = decimal.NewFromString(price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *cartRepository) Clear(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM cart_items WHERE cart_id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.logger.Error("Failed to clear cart", zap.String("cart_id", id.String()), zap.Error(err))
		return err
	}
	return nil
}
