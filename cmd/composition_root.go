package cmd

import (
	"log/slog"

	adapterhttp "parcelhub/internal/adapters/in/http"
	"parcelhub/internal/adapters/in/ws"
	"parcelhub/internal/adapters/out/postgres"
	"parcelhub/internal/adapters/out/postgres/accountrepo"
	"parcelhub/internal/adapters/out/token"
	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/services"
	"parcelhub/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	tokens     *token.JWTService
	hub        *ws.Hub
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	tokens, err := token.NewJWTService(config.JWTSecret, config.TokenTTL)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		tokens:     tokens,
		hub:        ws.NewHub(logger),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateBookParcelCommandHandler() commands.BookParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBookParcelCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateUpdateParcelStatusCommandHandler() commands.UpdateParcelStatusCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateParcelStatusCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateAssignAgentCommandHandler() commands.AssignAgentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignAgentCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterAccountCommandHandler() commands.RegisterAccountCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterAccountCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeAccountRoleCommandHandler() commands.ChangeAccountRoleCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeAccountRoleCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteAccountCommandHandler() commands.DeleteAccountCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteAccountCommandHandler(f)
}

func (c *CompositionRoot) CreateServer() *adapterhttp.Server {
	return adapterhttp.NewServer(adapterhttp.Deps{
		Policy:   services.NewAccessPolicy(),
		Verifier: c.tokens,
		Issuer:   c.tokens,
		Accounts: accountrepo.NewGormAccountRepository(c.gormDB, noTracker{}),

		BookParcel:    c.CreateBookParcelCommandHandler(),
		UpdateStatus:  c.CreateUpdateParcelStatusCommandHandler(),
		AssignAgent:   c.CreateAssignAgentCommandHandler(),
		Register:      c.CreateRegisterAccountCommandHandler(),
		ChangeRole:    c.CreateChangeAccountRoleCommandHandler(),
		DeleteAccount: c.CreateDeleteAccountCommandHandler(),

		OwnParcels:      queries.NewGetOwnParcelsQueryHandler(c.gormDB),
		AssignedParcels: queries.NewGetAssignedParcelsQueryHandler(c.gormDB),
		GetParcel:       queries.NewGetParcelQueryHandler(c.gormDB),
		ParcelStats:     queries.NewGetParcelStatsQueryHandler(c.gormDB),
		Distribution:    queries.NewGetStatusDistributionQueryHandler(c.gormDB),
		AllParcels:      queries.NewGetAllParcelsQueryHandler(c.gormDB),
		AllAccounts:     queries.NewGetAllAccountsQueryHandler(c.gormDB),
		AdminOverview:   queries.NewGetAdminOverviewQueryHandler(c.gormDB),
	})
}

func (c *CompositionRoot) CreateWebSocketHandler() *ws.Handler {
	return ws.NewHandler(c.hub, c.tokens)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	statsPush := jobs.NewStatsPushJob(
		queries.NewGetParcelStatsQueryHandler(c.gormDB),
		c.hub,
		c.config.StatsPushSchedule,
		c.logger,
	)
	staleSweep := jobs.NewStaleParcelSweepJob(
		queries.NewGetStaleParcelsQueryHandler(c.gormDB),
		c.config.StaleThreshold,
		c.config.StaleSweepSchedule,
		c.logger,
	)
	return jobs.NewJobManager(statsPush, staleSweep)
}

// noTracker discards aggregate tracking for repositories used outside a
// unit of work, such as the login read path.
type noTracker struct{}

func (noTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
