package commands

import (
	"context"
	"fmt"

	"parcelhub/internal/core/domain/model/account"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/errs"
)

// AssignAgentCommandHandler assigns an agent to a parcel. Spans both
// aggregates: the referenced account must exist and carry the agent role
// before the parcel is mutated.
type AssignAgentCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignAgentCommandHandler creates a handler for agent assignment.
func NewAssignAgentCommandHandler(uowFactory UoWFactory) AssignAgentCommandHandler {
	return AssignAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment and returns the updated parcel.
// A missing parcel surfaces as not-found; a missing or non-agent account
// surfaces as a validation error on the agent parameter.
func (h *AssignAgentCommandHandler) Handle(ctx context.Context, cmd AssignAgentCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return nil, err
	}

	agent, err := uow.AccountRepository().Get(ctx, cmd.AgentID())
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("agentId", err)
	}

	if agent.Role() != account.RoleAgent {
		return nil, errs.NewValueIsInvalidErrorWithCause("agentId",
			fmt.Errorf("account %s has role %s, not agent", agent.ID(), agent.Role()))
	}

	if err = p.AssignAgent(agent.ID()); err != nil {
		return nil, err
	}

	if err = uow.ParcelRepository().Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
