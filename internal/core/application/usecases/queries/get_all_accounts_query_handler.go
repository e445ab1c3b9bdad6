package queries

import (
	"context"

	"parcelhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllAccountsQueryHandler retrieves the account listing from the database.
type GetAllAccountsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllAccountsQueryHandler creates a handler for account listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllAccountsQueryHandler(db *gorm.DB) GetAllAccountsQueryHandler {
	return GetAllAccountsQueryHandler{db: db}
}

// Handle executes the query to retrieve all accounts sorted by name.
// Password hashes are never selected.
func (h GetAllAccountsQueryHandler) Handle(
	ctx context.Context,
	query GetAllAccountsQuery,
) ([]AccountQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	accounts := make([]AccountQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			role,
			created_at
		FROM accounts
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp AccountQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Email,
			&resp.Role,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		accountID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = accountID

		accounts = append(accounts, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}
