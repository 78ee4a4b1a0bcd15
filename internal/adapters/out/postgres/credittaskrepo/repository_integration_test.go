package credittaskrepo_test

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

	"movebox/internal/adapters/out/postgres/credittaskrepo"
	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/core/ports"
	"movebox/internal/pkg/errs"
)

// CreditTaskRepositoryIntegrationTestSuite exercises the GORM credit
// task repository against a real PostgreSQL database.
type CreditTaskRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *credittaskrepo.GormCreditTaskRepository
}

func (suite *CreditTaskRepositoryIntegrationTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&credittaskrepo.CreditTaskDTO{})
	suite.Require().NoError(err)

	suite.repo = credittaskrepo.NewGormCreditTaskRepository(db)
}

func (suite *CreditTaskRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE credit_tasks").Error
	suite.Require().NoError(err)
}

func (suite *CreditTaskRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *CreditTaskRepositoryIntegrationTestSuite) TestEnqueueAndGetPending_OldestFirst() {
	ctx := context.Background()

	older := suite.newTask(time.Now().UTC().Add(-2 * time.Hour))
	newer := suite.newTask(time.Now().UTC().Add(-time.Hour))

	suite.Require().NoError(suite.repo.Enqueue(ctx, newer))
	suite.Require().NoError(suite.repo.Enqueue(ctx, older))

	pending, err := suite.repo.GetPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.True(pending[0].ID.IsEqual(older.ID))
	suite.True(pending[1].ID.IsEqual(newer.ID))
}

func (suite *CreditTaskRepositoryIntegrationTestSuite) TestGetPending_HonorsLimit() {
	ctx := context.Background()

	for i := range 5 {
		task := suite.newTask(time.Now().UTC().Add(-time.Duration(i) * time.Minute))
		suite.Require().NoError(suite.repo.Enqueue(ctx, task))
	}

	pending, err := suite.repo.GetPending(ctx, 3)
	suite.Require().NoError(err)
	suite.Len(pending, 3)
}

func (suite *CreditTaskRepositoryIntegrationTestSuite) TestMarkDone_RemovesTask() {
	ctx := context.Background()

	task := suite.newTask(time.Now().UTC())
	suite.Require().NoError(suite.repo.Enqueue(ctx, task))

	err := suite.repo.MarkDone(ctx, task.ID)
	suite.Require().NoError(err)

	pending, err := suite.repo.GetPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(pending)

	err = suite.repo.MarkDone(ctx, task.ID)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CreditTaskRepositoryIntegrationTestSuite) TestMarkAttempt_IncrementsCounter() {
	ctx := context.Background()

	task := suite.newTask(time.Now().UTC())
	suite.Require().NoError(suite.repo.Enqueue(ctx, task))

	suite.Require().NoError(suite.repo.MarkAttempt(ctx, task.ID))
	suite.Require().NoError(suite.repo.MarkAttempt(ctx, task.ID))

	pending, err := suite.repo.GetPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.Equal(2, pending[0].Attempts)
}

func (suite *CreditTaskRepositoryIntegrationTestSuite) newTask(createdAt time.Time) ports.CreditTask {
	return ports.CreditTask{
		ID:          kernel.NewUUID(),
		JobID:       kernel.NewUUID(),
		MoverID:     kernel.NewUUID(),
		AmountCents: 4500,
		Attempts:    0,
		CreatedAt:   createdAt,
	}
}

func TestCreditTaskRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CreditTaskRepositoryIntegrationTestSuite))
}
