package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"movebox/internal/adapters/out/postgres/orderrepo"
	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/core/domain/model/order"
	"movebox/internal/pkg/errs"
)

// OrderRepositoryIntegrationTestSuite exercises the GORM order
// repository against a real PostgreSQL database.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.repo = orderrepo.NewGormOrderRepository(db, noopTracker{})
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	newOrder := suite.newPendingOrder(kernel.NewUUID())

	ref := "pay_1001"
	err := newOrder.AttachPaymentRef(ref)
	suite.Require().NoError(err)

	err = suite.repo.Add(ctx, newOrder)
	suite.Require().NoError(err)

	stored, err := suite.repo.Get(ctx, newOrder.ID())
	suite.Require().NoError(err)

	suite.True(stored.ID().IsEqual(newOrder.ID()))
	suite.True(stored.StudentID().IsEqual(newOrder.StudentID()))
	suite.Equal(order.StatusPending, stored.Status())
	suite.Nil(stored.Mover())
	suite.Equal(newOrder.Volume(), stored.Volume())
	suite.True(stored.Price().IsEqual(newOrder.Price()))
	suite.Require().NotNil(stored.PaymentRef())
	suite.Equal(ref, *stored.PaymentRef())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsMoverAndStatus() {
	ctx := context.Background()
	moverID := kernel.NewUUID()

	newOrder := suite.newPendingOrder(kernel.NewUUID())
	err := suite.repo.Add(ctx, newOrder)
	suite.Require().NoError(err)

	err = newOrder.AssignMover(moverID)
	suite.Require().NoError(err)
	err = newOrder.TransitionTo(order.StatusAccepted)
	suite.Require().NoError(err)

	err = suite.repo.Update(ctx, newOrder)
	suite.Require().NoError(err)

	stored, err := suite.repo.Get(ctx, newOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusAccepted, stored.Status())
	suite.Require().NotNil(stored.Mover())
	suite.True(stored.Mover().IsEqual(moverID))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrderReturnsNotFound() {
	orphan := suite.newPendingOrder(kernel.NewUUID())

	err := suite.repo.Update(context.Background(), orphan)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetActiveByStudent_SkipsTerminalOrders() {
	ctx := context.Background()
	studentID := kernel.NewUUID()

	finished := suite.newPendingOrder(studentID)
	err := suite.repo.Add(ctx, finished)
	suite.Require().NoError(err)
	err = finished.Cancel()
	suite.Require().NoError(err)
	err = suite.repo.Update(ctx, finished)
	suite.Require().NoError(err)

	active := suite.newPendingOrder(studentID)
	err = suite.repo.Add(ctx, active)
	suite.Require().NoError(err)

	stored, err := suite.repo.GetActiveByStudent(ctx, studentID)
	suite.Require().NoError(err)
	suite.True(stored.ID().IsEqual(active.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetActiveByStudent_NoneActive() {
	ctx := context.Background()
	studentID := kernel.NewUUID()

	finished := suite.newPendingOrder(studentID)
	err := suite.repo.Add(ctx, finished)
	suite.Require().NoError(err)
	err = finished.Cancel()
	suite.Require().NoError(err)
	err = suite.repo.Update(ctx, finished)
	suite.Require().NoError(err)

	_, err = suite.repo.GetActiveByStudent(ctx, studentID)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) newPendingOrder(studentID kernel.UUID) *order.Order {
	pickup, err := kernel.NewAddress("12 College Walk", "Cambridge", "02138")
	suite.Require().NoError(err)
	dropoff, err := kernel.NewAddress("3 Warehouse Row", "Somerville", "02143")
	suite.Require().NoError(err)
	price, err := kernel.NewMoney(4500)
	suite.Require().NoError(err)

	newOrder, err := order.NewOrder(
		kernel.NewUUID(), studentID, 3, price,
		pickup, dropoff, time.Now().UTC().Add(48*time.Hour),
	)
	suite.Require().NoError(err)
	return newOrder
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
