// Package http exposes the REST surface. It coordinates between HTTP
// handlers and application use cases: requests are authenticated, gated by
// the access policy, translated into commands and queries, and domain
// errors are mapped onto HTTP statuses.
package http

import (
	"context"
	"net/http"

	"parcelhub/internal/adapters/out/reports"
	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/account"
	"parcelhub/internal/core/domain/services"
	"parcelhub/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// AccountReader is the read access the login flow needs. The postgres
// account repository satisfies it.
type AccountReader interface {
	GetByEmail(ctx context.Context, email string) (*account.Account, error)
}

// Server holds every handler behind the REST surface.
type Server struct {
	policy   services.AccessPolicy
	verifier ports.TokenVerifier
	issuer   ports.TokenIssuer
	accounts AccountReader

	bookParcel    commands.BookParcelCommandHandler
	updateStatus  commands.UpdateParcelStatusCommandHandler
	assignAgent   commands.AssignAgentCommandHandler
	register      commands.RegisterAccountCommandHandler
	changeRole    commands.ChangeAccountRoleCommandHandler
	deleteAccount commands.DeleteAccountCommandHandler

	ownParcels      queries.GetOwnParcelsQueryHandler
	assignedParcels queries.GetAssignedParcelsQueryHandler
	getParcel       queries.GetParcelQueryHandler
	parcelStats     queries.GetParcelStatsQueryHandler
	distribution    queries.GetStatusDistributionQueryHandler
	allParcels      queries.GetAllParcelsQueryHandler
	allAccounts     queries.GetAllAccountsQueryHandler
	adminOverview   queries.GetAdminOverviewQueryHandler

	csvRenderer   reports.CSVRenderer
	excelRenderer reports.ExcelRenderer
	pdfRenderer   reports.PDFRenderer
}

// Deps collects everything the server needs; it keeps the constructor
// readable with this many handlers.
type Deps struct {
	Policy   services.AccessPolicy
	Verifier ports.TokenVerifier
	Issuer   ports.TokenIssuer
	Accounts AccountReader

	BookParcel    commands.BookParcelCommandHandler
	UpdateStatus  commands.UpdateParcelStatusCommandHandler
	AssignAgent   commands.AssignAgentCommandHandler
	Register      commands.RegisterAccountCommandHandler
	ChangeRole    commands.ChangeAccountRoleCommandHandler
	DeleteAccount commands.DeleteAccountCommandHandler

	OwnParcels      queries.GetOwnParcelsQueryHandler
	AssignedParcels queries.GetAssignedParcelsQueryHandler
	GetParcel       queries.GetParcelQueryHandler
	ParcelStats     queries.GetParcelStatsQueryHandler
	Distribution    queries.GetStatusDistributionQueryHandler
	AllParcels      queries.GetAllParcelsQueryHandler
	AllAccounts     queries.GetAllAccountsQueryHandler
	AdminOverview   queries.GetAdminOverviewQueryHandler
}

// NewServer creates the REST server.
func NewServer(deps Deps) *Server {
	return &Server{
		policy:          deps.Policy,
		verifier:        deps.Verifier,
		issuer:          deps.Issuer,
		accounts:        deps.Accounts,
		bookParcel:      deps.BookParcel,
		updateStatus:    deps.UpdateStatus,
		assignAgent:     deps.AssignAgent,
		register:        deps.Register,
		changeRole:      deps.ChangeRole,
		deleteAccount:   deps.DeleteAccount,
		ownParcels:      deps.OwnParcels,
		assignedParcels: deps.AssignedParcels,
		getParcel:       deps.GetParcel,
		parcelStats:     deps.ParcelStats,
		distribution:    deps.Distribution,
		allParcels:      deps.AllParcels,
		allAccounts:     deps.AllAccounts,
		adminOverview:   deps.AdminOverview,
		csvRenderer:     reports.NewCSVRenderer(),
		excelRenderer:   reports.NewExcelRenderer(),
		pdfRenderer:     reports.NewPDFRenderer(),
	}
}

// RegisterRoutes mounts the REST surface on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	auth := e.Group("/api/auth")
	auth.POST("/register", s.handleRegister)
	auth.POST("/login", s.handleLogin)

	api := e.Group("/api", s.authenticate)

	parcels := api.Group("/parcels")
	parcels.POST("", s.handleBookParcel, s.requireOperation(services.OpBookParcel))
	parcels.GET("", s.handleOwnParcels, s.requireOperation(services.OpViewOwnStatus))
	parcels.GET("/assigned", s.handleAssignedParcels, s.requireOperation(services.OpViewAssigned))
	parcels.GET("/stats", s.handleParcelStats, s.requireOperation(services.OpViewStats))
	parcels.GET("/:id", s.handleGetParcel, s.requireOperation(services.OpViewOwnStatus))
	parcels.PUT("/:id/status", s.handleUpdateStatus, s.requireOperation(services.OpUpdateStatus))

	admin := api.Group("/admin")
	admin.GET("/stats", s.handleAdminOverview, s.requireOperation(services.OpManageUsers))
	admin.GET("/users", s.handleListUsers, s.requireOperation(services.OpManageUsers))
	admin.PUT("/users/:id/role", s.handleChangeRole, s.requireOperation(services.OpManageUsers))
	admin.DELETE("/users/:id", s.handleDeleteUser, s.requireOperation(services.OpManageUsers))
	admin.GET("/parcels", s.handleAllParcels, s.requireOperation(services.OpViewAllParcels))
	admin.PUT("/parcels/:id/assign", s.handleAssignAgent, s.requireOperation(services.OpAssignAgent))
	admin.GET("/analytics", s.handleStatusDistribution, s.requireOperation(services.OpViewAllParcels))
	admin.GET("/reports/csv", s.handleCSVReport, s.requireOperation(services.OpReports))
	admin.GET("/reports/excel", s.handleExcelReport, s.requireOperation(services.OpReports))
	admin.GET("/reports/pdf", s.handlePDFReport, s.requireOperation(services.OpReports))
}
