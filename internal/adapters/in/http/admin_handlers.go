package http

import (
	"net/http"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/account"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// handleAdminOverview handles GET /api/admin/stats - dashboard counters.
func (s *Server) handleAdminOverview(ctx echo.Context) error {
	overview, err := s.adminOverview.Handle(ctx.Request().Context(), queries.NewGetAdminOverviewQuery())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, overview)
}

// handleListUsers handles GET /api/admin/users - every account, no passwords.
func (s *Server) handleListUsers(ctx echo.Context) error {
	accounts, err := s.allAccounts.Handle(ctx.Request().Context(), queries.NewGetAllAccountsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]userResponse, len(accounts))
	for i, a := range accounts {
		response[i] = userFromReadModel(a)
	}
	return ctx.JSON(http.StatusOK, response)
}

// handleChangeRole handles PUT /api/admin/users/:id/role.
func (s *Server) handleChangeRole(ctx echo.Context) error {
	accountID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req changeRoleRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("body"))
	}

	role, err := account.RoleFromString(req.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeAccountRoleCommand(accountID, role)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.changeRole.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userResponse{
		ID:    updated.ID().String(),
		Name:  updated.Name(),
		Email: updated.Email(),
		Role:  updated.Role().String(),
	})
}

// handleDeleteUser handles DELETE /api/admin/users/:id.
func (s *Server) handleDeleteUser(ctx echo.Context) error {
	accountID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	cmd, err := commands.NewDeleteAccountCommand(accountID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteAccount.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// handleAllParcels handles GET /api/admin/parcels - full listing with names.
func (s *Server) handleAllParcels(ctx echo.Context) error {
	parcels, err := s.allParcels.Handle(ctx.Request().Context(), queries.NewGetAllParcelsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]adminParcelResponse, len(parcels))
	for i, p := range parcels {
		response[i] = parcelFromAdminReadModel(p)
	}
	return ctx.JSON(http.StatusOK, response)
}

// handleAssignAgent handles PUT /api/admin/parcels/:id/assign.
func (s *Server) handleAssignAgent(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req assignAgentRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("body"))
	}

	agentID, err := kernel.UUIDFromString(req.AgentID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("agentId", err))
	}

	cmd, err := commands.NewAssignAgentCommand(parcelID, agentID)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.assignAgent.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcelFromAggregate(updated))
}

// handleStatusDistribution handles GET /api/admin/analytics.
func (s *Server) handleStatusDistribution(ctx echo.Context) error {
	buckets, err := s.distribution.Handle(ctx.Request().Context(), queries.NewGetStatusDistributionQuery())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, buckets)
}

func (s *Server) reportListing(ctx echo.Context) ([]queries.AdminParcelQueryResponse, error) {
	return s.allParcels.Handle(ctx.Request().Context(), queries.NewGetAllParcelsQuery())
}

// handleCSVReport handles GET /api/admin/reports/csv.
func (s *Server) handleCSVReport(ctx echo.Context) error {
	parcels, err := s.reportListing(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="parcels.csv"`)
	ctx.Response().Header().Set(echo.HeaderContentType, "text/csv")
	ctx.Response().WriteHeader(http.StatusOK)
	return s.csvRenderer.Render(ctx.Response(), parcels)
}

// handleExcelReport handles GET /api/admin/reports/excel.
func (s *Server) handleExcelReport(ctx echo.Context) error {
	parcels, err := s.reportListing(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="parcels.xlsx"`)
	ctx.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().WriteHeader(http.StatusOK)
	return s.excelRenderer.Render(ctx.Response(), parcels)
}

// handlePDFReport handles GET /api/admin/reports/pdf.
func (s *Server) handlePDFReport(ctx echo.Context) error {
	parcels, err := s.reportListing(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="parcels.pdf"`)
	ctx.Response().Header().Set(echo.HeaderContentType, "application/pdf")
	ctx.Response().WriteHeader(http.StatusOK)
	return s.pdfRenderer.Render(ctx.Response(), parcels)
}
