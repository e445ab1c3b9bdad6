package queries

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var (
	ErrGetAssignedParcelsQueryIsNotConstructed = errors.New(
		"GetAssignedParcelsQuery must be created via NewGetAssignedParcelsQuery constructor",
	)
)

// GetAssignedParcelsQuery retrieves the parcels assigned to one delivery agent.
// An agent only sees parcels an administrator assigned to them.
type GetAssignedParcelsQuery struct {
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAssignedParcelsQuery creates a query scoped to one agent identity.
func NewGetAssignedParcelsQuery(agentID kernel.UUID) (GetAssignedParcelsQuery, error) {
	if err := agentID.Validate(); err != nil {
		return GetAssignedParcelsQuery{}, err
	}
	return GetAssignedParcelsQuery{
		agentID: agentID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// AgentID returns the identity whose workload is requested.
func (q GetAssignedParcelsQuery) AgentID() kernel.UUID {
	return q.agentID
}

// Validate ensures the query was created through the constructor.
func (q GetAssignedParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignedParcelsQueryIsNotConstructed)
}
