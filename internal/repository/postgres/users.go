package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/izamghali/fastrac-take-home-test/internal/domain"
	"github.com/izamghali/fastrac-take-home-test/pkg/errors"
)

type userRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB, logger *zap.Logger) *userRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `
		SELECT u.id, u.name, u.phone, u.email, a.street, a.postal_code, u.created_at, u.updated_at
		FROM users u
		LEFT JOIN addresses a ON a.user_id = u.id AND a.is_primary
		WHERE u.id = $1
	`

	var user domain.User
	var phone, street, postalCode sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&phone,
		&user.Email,
		&street,
		&postalCode,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &errors.ErrNotFound{Resource: "user", ID: id.String()}
	}
	if err != nil {
		r.logger.Error("Failed to get user", zap.Error(err))
		return nil, err
	}
	user.Phone = phone.String
	user.Address.Street = street.String
	user.Address.PostalCode = postalCode.String
	return &user, nil
}
