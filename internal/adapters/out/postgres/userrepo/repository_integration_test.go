package userrepo_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"movebox/internal/adapters/out/postgres/userrepo"
	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/core/domain/model/user"
	"movebox/internal/pkg/errs"
)

// UserRepositoryIntegrationTestSuite exercises the GORM user repository
// against a real PostgreSQL database, including the atomic credit
// increment.
type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *userrepo.GormUserRepository
}

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&userrepo.UserDTO{})
	suite.Require().NoError(err)

	suite.repo = userrepo.NewGormUserRepository(db, noopTracker{})
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE users").Error
	suite.Require().NoError(err)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UserRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	mover := suite.newMover("Dana")

	err := suite.repo.Add(ctx, mover)
	suite.Require().NoError(err)

	stored, err := suite.repo.Get(ctx, mover.ID())
	suite.Require().NoError(err)

	suite.True(stored.ID().IsEqual(mover.ID()))
	suite.Equal("Dana", stored.Name())
	suite.Equal(kernel.RoleMover, stored.Role())
	suite.Equal(int64(0), stored.CreditCents())
	suite.Nil(stored.FcmToken())
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdjustCredit_IncrementsBalance() {
	ctx := context.Background()
	mover := suite.newMover("Dana")

	err := suite.repo.Add(ctx, mover)
	suite.Require().NoError(err)

	delta, err := kernel.NewMoney(4500)
	suite.Require().NoError(err)

	err = suite.repo.AdjustCredit(ctx, mover.ID(), delta)
	suite.Require().NoError(err)
	err = suite.repo.AdjustCredit(ctx, mover.ID(), delta)
	suite.Require().NoError(err)

	stored, err := suite.repo.Get(ctx, mover.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(9000), stored.CreditCents())
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdjustCredit_MissingMoverReturnsNotFound() {
	delta, err := kernel.NewMoney(4500)
	suite.Require().NoError(err)

	err = suite.repo.AdjustCredit(context.Background(), kernel.NewUUID(), delta)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

// TestAdjustCredit_ConcurrentIncrementsAllLand fires parallel credit
// adjustments and checks that none of them is lost.
func (suite *UserRepositoryIntegrationTestSuite) TestAdjustCredit_ConcurrentIncrementsAllLand() {
	ctx := context.Background()
	const workers = 20

	mover := suite.newMover("Dana")
	err := suite.repo.Add(ctx, mover)
	suite.Require().NoError(err)

	delta, err := kernel.NewMoney(100)
	suite.Require().NoError(err)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			suite.Require().NoError(suite.repo.AdjustCredit(ctx, mover.ID(), delta))
		}()
	}
	wg.Wait()

	stored, err := suite.repo.Get(ctx, mover.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(workers*100), stored.CreditCents())
}

func (suite *UserRepositoryIntegrationTestSuite) TestFcmTokenLifecycle() {
	ctx := context.Background()
	mover := suite.newMover("Dana")

	err := mover.SetFcmToken("fcm-token-abc")
	suite.Require().NoError(err)

	err = suite.repo.Add(ctx, mover)
	suite.Require().NoError(err)

	token, err := suite.repo.GetFcmToken(ctx, mover.ID())
	suite.Require().NoError(err)
	suite.Equal("fcm-token-abc", token)

	err = suite.repo.ClearInvalidFcmToken(ctx, "fcm-token-abc")
	suite.Require().NoError(err)

	_, err = suite.repo.GetFcmToken(ctx, mover.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) newMover(name string) *user.User {
	mover, err := user.NewUser(kernel.NewUUID(), name, kernel.RoleMover)
	suite.Require().NoError(err)
	return mover
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
