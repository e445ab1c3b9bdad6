package parcelrepo_test

import (
	"context"
	"testing"
	"time"

	"parcelhub/internal/adapters/out/postgres/parcelrepo"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GormParcelRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *parcelrepo.GormParcelRepository
}

func (suite *GormParcelRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&parcelrepo.ParcelDTO{})
	suite.Require().NoError(err)

	suite.repo = parcelrepo.NewGormParcelRepository(db, &mockAggregateTracker{})
}

func (suite *GormParcelRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormParcelRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE parcels CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GormParcelRepositoryTestSuite) newParcel() *parcel.Parcel {
	p, err := parcel.NewParcel(kernel.NewUUID(), kernel.NewUUID(), "12 North St", "3 Harbor Rd", "medium", false)
	suite.Require().NoError(err)
	return p
}

func (suite *GormParcelRepositoryTestSuite) TestAddAndGet_RoundTripsAggregate() {
	ctx := context.Background()
	p := suite.newParcel()

	err := suite.repo.Add(ctx, p)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(p.ID()))
	suite.True(loaded.Customer().IsEqual(p.Customer()))
	suite.Nil(loaded.Agent())
	suite.Equal("12 North St", loaded.PickupAddress())
	suite.Equal("3 Harbor Rd", loaded.DeliveryAddress())
	suite.Equal(parcel.Booked, loaded.Status())
	suite.False(loaded.CashOnDelivery())
}

func (suite *GormParcelRepositoryTestSuite) TestGet_UnknownID_ReturnsNotFound() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormParcelRepositoryTestSuite) TestUpdate_PersistsAgentAssignment() {
	ctx := context.Background()
	p := suite.newParcel()
	suite.Require().NoError(suite.repo.Add(ctx, p))

	agentID := kernel.NewUUID()
	suite.Require().NoError(p.AssignAgent(agentID))
	suite.Require().NoError(suite.repo.Update(ctx, p))

	loaded, err := suite.repo.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(loaded.Agent())
	suite.True(loaded.Agent().IsEqual(agentID))
}

func (suite *GormParcelRepositoryTestSuite) TestUpdate_UnknownParcel_ReturnsNotFound() {
	p := suite.newParcel()
	err := suite.repo.Update(context.Background(), p)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormParcelRepositoryTestSuite) TestUpdateStatus_AppliesTransition() {
	ctx := context.Background()
	p := suite.newParcel()
	suite.Require().NoError(suite.repo.Add(ctx, p))

	previous := p.Status()
	suite.Require().NoError(p.ChangeStatus(parcel.PickedUp))
	suite.Require().NoError(suite.repo.UpdateStatus(ctx, p, previous))

	loaded, err := suite.repo.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.PickedUp, loaded.Status())
}

func (suite *GormParcelRepositoryTestSuite) TestUpdateStatus_StaleBase_ReturnsConflict() {
	ctx := context.Background()
	p := suite.newParcel()
	suite.Require().NoError(suite.repo.Add(ctx, p))

	// First writer advances the row.
	winner, err := suite.repo.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(winner.ChangeStatus(parcel.PickedUp))
	suite.Require().NoError(suite.repo.UpdateStatus(ctx, winner, parcel.Booked))

	// Second writer still holds the Booked snapshot.
	suite.Require().NoError(p.ChangeStatus(parcel.PickedUp))
	err = suite.repo.UpdateStatus(ctx, p, parcel.Booked)
	suite.Require().ErrorIs(err, errs.ErrConflict)

	loaded, err := suite.repo.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.PickedUp, loaded.Status())
}

func (suite *GormParcelRepositoryTestSuite) TestUpdateStatus_UnknownParcel_ReturnsNotFound() {
	p := suite.newParcel()
	previous := p.Status()
	suite.Require().NoError(p.ChangeStatus(parcel.PickedUp))

	err := suite.repo.UpdateStatus(context.Background(), p, previous)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormParcelRepositoryTestSuite) TestCountByStatus() {
	ctx := context.Background()

	for range 3 {
		suite.Require().NoError(suite.repo.Add(ctx, suite.newParcel()))
	}

	moved := suite.newParcel()
	suite.Require().NoError(suite.repo.Add(ctx, moved))
	suite.Require().NoError(moved.ChangeStatus(parcel.PickedUp))
	suite.Require().NoError(suite.repo.UpdateStatus(ctx, moved, parcel.Booked))

	booked, err := suite.repo.CountByStatus(ctx, parcel.Booked)
	suite.Require().NoError(err)
	suite.Equal(int64(3), booked)

	pickedUp, err := suite.repo.CountByStatus(ctx, parcel.PickedUp)
	suite.Require().NoError(err)
	suite.Equal(int64(1), pickedUp)

	delivered, err := suite.repo.CountByStatus(ctx, parcel.Delivered)
	suite.Require().NoError(err)
	suite.Equal(int64(0), delivered)
}

func TestGormParcelRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormParcelRepositoryTestSuite))
}
