package postgres

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/izamghali/fastrac-take-home-test/internal/repository"
)

// NewRepositories creates a new set of repositories
func NewRepositories(db *sql.DB, logger *zap.Logger) *repository.Repositories {
	return &repository.Repositories{
		Cart:      NewCartRepository(db, logger),
		Stock:     NewStockRepository(db, logger),
		Warehouse: NewWarehouseRepository(db, logger),
		User:      NewUserRepository(db, logger),
		Order:     NewOrderRepository(db, logger),
	}
}
