package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/izamghali/fastrac-take-home-test/internal/domain"
)

type stockRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewStockRepository creates a new stock repository
func NewStockRepository(db *sql.DB, logger *zap.Logger) *stockRepository {
	return &stockRepository{
		db:     db,
		logger: logger,
	}
}

// ListForCart returns one record per cart item with the total stock across
// warehouses for the item's (variant, size), alongside the ordered quantity
func (r *stockRepository) ListForCart(ctx context.Context, cartID uuid.UUID) ([]domain.StockRecord, error) {
	query := `
		SELECT ci.product_variant_id, p.name, ci.size, COALESCE(SUM(s.quantity), 0), ci.quantity
		FROM cart_items ci
		JOIN product_variants pv ON pv.id = ci.product_variant_id
		JOIN products p ON p.id = pv.product_id
		LEFT JOIN stocks s ON s.product_variant_id = ci.product_variant_id AND s.size = ci.size
		WHERE ci.cart_id = $1
		GROUP BY ci.product_variant_id, p.name, ci.size, ci.quantity
	`

	rows, err := r.db.QueryContext(ctx, query, cartID)
	if err != nil {
		r.logger.Error("Failed to list stock for cart", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []domain.StockRecord
	for rows.Next() {
		var rec domain.StockRecord
		if err := rows.Scan(
			&rec.ProductVariantID,
			&rec.ProductName,
			&rec.Size,
			&rec.TotalStock,
			&rec.OrderedQuantity,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
