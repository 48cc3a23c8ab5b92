package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/izamghali/fastrac-take-home-test/internal/domain"
	"github.com/izamghali/fastrac-take-home-test/pkg/errors"
)

type warehouseRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewWarehouseRepository creates a new warehouse repository
func NewWarehouseRepository(db *sql.DB, logger *zap.Logger) *warehouseRepository {
	return &warehouseRepository{
		db:     db,
		logger: logger,
	}
}

const warehouseColumns = `
	id, name, phone, email, street, postal_code, created_at, updated_at
`

func (r *warehouseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses WHERE id = $1`

	w, err := scanWarehouse(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, &errors.ErrNotFound{Resource: "warehouse", ID: id.String()}
	}
	if err != nil {
		r.logger.Error("Failed to get warehouse", zap.Error(err))
		return nil, err
	}
	return w, nil
}

func (r *warehouseRepository) List(ctx context.Context) ([]*domain.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list warehouses", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var warehouses []*domain.Warehouse
	for rows.Next() {
		w, err := scanWarehouse(rows)
		if err != nil {
			return nil, err
		}
		warehouses = append(warehouses, w)
	}
	return warehouses, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWarehouse(row rowScanner) (*domain.Warehouse, error) {
	var w domain.Warehouse
	var phone, email, street sql.NullString
	err := row.Scan(
		&w.ID,
		&w.Name,
		&phone,
		&email,
		&street,
		&w.Address.PostalCode,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	w.Phone = phone.String
	w.Email = email.String
	w.Address.Street = street.String
	return &w, nil
}
