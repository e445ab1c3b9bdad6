package queries

import (
	"context"

	"parcelhub/internal/core/domain/model/account"

	"gorm.io/gorm"
)

// GetAdminOverviewQueryHandler computes the admin dashboard counters.
type GetAdminOverviewQueryHandler struct {
	db *gorm.DB
}

// NewGetAdminOverviewQueryHandler creates a handler for the overview query.
// Requires a GORM database connection for query execution.
func NewGetAdminOverviewQueryHandler(db *gorm.DB) GetAdminOverviewQueryHandler {
	return GetAdminOverviewQueryHandler{db: db}
}

// Handle executes the query and returns the account, agent and parcel totals.
func (h GetAdminOverviewQueryHandler) Handle(
	ctx context.Context,
	query GetAdminOverviewQuery,
) (GetAdminOverviewQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAdminOverviewQueryResponse{}, err
	}

	var overview GetAdminOverviewQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM accounts),
			(SELECT COUNT(*) FROM accounts WHERE role = ?),
			(SELECT COUNT(*) FROM parcels)
	`, string(account.RoleAgent)).Row()

	if err := row.Scan(&overview.Users, &overview.Agents, &overview.Parcels); err != nil {
		return GetAdminOverviewQueryResponse{}, err
	}

	return overview, nil
}
