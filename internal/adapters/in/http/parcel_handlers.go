package http

import (
	"net/http"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/account"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/services"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// handleBookParcel handles POST /api/parcels - books a parcel for the caller.
func (s *Server) handleBookParcel(ctx echo.Context) error {
	identity, err := callerIdentity(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req bookParcelRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewBookParcelCommand(
		kernel.NewUUID(),
		identity.ID,
		req.PickupAddress,
		req.DeliveryAddress,
		req.Size,
		req.CashOnDelivery,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	booked, err := s.bookParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, parcelFromAggregate(booked))
}

// handleOwnParcels handles GET /api/parcels - lists the caller's parcels.
func (s *Server) handleOwnParcels(ctx echo.Context) error {
	identity, err := callerIdentity(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOwnParcelsQuery(identity.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	parcels, err := s.ownParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]parcelResponse, len(parcels))
	for i, p := range parcels {
		response[i] = parcelFromReadModel(p)
	}
	return ctx.JSON(http.StatusOK, response)
}

// handleAssignedParcels handles GET /api/parcels/assigned - the agent workload.
func (s *Server) handleAssignedParcels(ctx echo.Context) error {
	identity, err := callerIdentity(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetAssignedParcelsQuery(identity.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	parcels, err := s.assignedParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]parcelResponse, len(parcels))
	for i, p := range parcels {
		response[i] = parcelFromReadModel(p)
	}
	return ctx.JSON(http.StatusOK, response)
}

// handleParcelStats handles GET /api/parcels/stats - headline counters.
func (s *Server) handleParcelStats(ctx echo.Context) error {
	stats, err := s.parcelStats.Handle(ctx.Request().Context(), queries.NewGetParcelStatsQuery())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, stats)
}

// handleGetParcel handles GET /api/parcels/:id - one parcel, visible to its
// customer, its assigned agent, and admins.
func (s *Server) handleGetParcel(ctx echo.Context) error {
	identity, err := callerIdentity(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	query, err := queries.NewGetParcelQuery(parcelID)
	if err != nil {
		return respondError(ctx, err)
	}

	p, err := s.getParcel.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	if !canAccessParcel(identity, p.CustomerID, p.AgentID) {
		return respondError(ctx, errs.NewForbiddenError(
			identity.Role.String(), string(services.OpViewOwnStatus)))
	}

	return ctx.JSON(http.StatusOK, parcelFromReadModel(p))
}

// handleUpdateStatus handles PUT /api/parcels/:id/status - applies a
// lifecycle transition. Customers may move only their own parcels, agents
// only parcels assigned to them; admins any parcel.
func (s *Server) handleUpdateStatus(ctx echo.Context) error {
	identity, err := callerIdentity(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req updateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("body"))
	}

	next, err := parcel.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetParcelQuery(parcelID)
	if err != nil {
		return respondError(ctx, err)
	}

	current, err := s.getParcel.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	if !canAccessParcel(identity, current.CustomerID, current.AgentID) {
		return respondError(ctx, errs.NewForbiddenError(
			identity.Role.String(), string(services.OpUpdateStatus)))
	}

	cmd, err := commands.NewUpdateParcelStatusCommand(parcelID, next)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcelFromAggregate(updated))
}

// canAccessParcel applies the per-parcel ownership rules on top of the
// role policy: admins see everything, customers their own parcels, agents
// their assignments.
func canAccessParcel(identity ports.Identity, customerID kernel.UUID, agentID *kernel.UUID) bool {
	switch identity.Role {
	case account.RoleAdmin:
		return true
	case account.RoleCustomer:
		return customerID.IsEqual(identity.ID)
	case account.RoleAgent:
		return agentID != nil && agentID.IsEqual(identity.ID)
	default:
		return false
	}
}
