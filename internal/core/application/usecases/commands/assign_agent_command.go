package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var (
	ErrAssignAgentCommandIsNotConstructed = errors.New(
		"AssignAgentCommand must be created via NewAssignAgentCommand constructor",
	)
)

// AssignAgentCommand represents an admin's request to assign an agent to a
// parcel.
type AssignAgentCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	agentID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignAgentCommand creates an agent assignment command.
func NewAssignAgentCommand(parcelID, agentID kernel.UUID) (AssignAgentCommand, error) {
	cmd := AssignAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setAgentID(agentID),
	); err != nil {
		return AssignAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignAgentCommand) Validate() error {
	return c.guard.Validate(ErrAssignAgentCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to assign.
func (c AssignAgentCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// AgentID returns the identifier of the agent to assign.
func (c AssignAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

func (c *AssignAgentCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *AssignAgentCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	c.agentID = agentID
	return nil
}
