package commands

import (
	"errors"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/guard"
)

var ErrDispatchInvitationsCommandIsNotConstructed = errors.New(
	"DispatchInvitationsCommand must be created via NewDispatchInvitationsCommand constructor",
)

// DispatchInvitationsCommand represents a request to send the pending
// invitations of one shipment request.
type DispatchInvitationsCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDispatchInvitationsCommand creates a command to dispatch invitations.
func NewDispatchInvitationsCommand(requestID kernel.UUID) (DispatchInvitationsCommand, error) {
	command := DispatchInvitationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setRequestID(requestID); err != nil {
		return DispatchInvitationsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchInvitationsCommand) Validate() error {
	return c.guard.Validate(ErrDispatchInvitationsCommandIsNotConstructed)
}

// RequestID returns the shipment request whose invitations to dispatch.
func (c DispatchInvitationsCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c *DispatchInvitationsCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}
