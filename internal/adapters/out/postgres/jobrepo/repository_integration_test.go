package jobrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"movebox/internal/adapters/out/postgres/jobrepo"
	"movebox/internal/core/domain/model/job"
	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/pkg/errs"
)

// JobRepositoryIntegrationTestSuite exercises the GORM job repository,
// including the atomic claim, against a real PostgreSQL database.
type JobRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *jobrepo.GormJobRepository
}

// noopTracker satisfies the aggregate tracker without recording anything.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

func (suite *JobRepositoryIntegrationTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&jobrepo.JobDTO{})
	suite.Require().NoError(err)

	suite.repo = jobrepo.NewGormJobRepository(db, noopTracker{})
}

func (suite *JobRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE jobs").Error
	suite.Require().NoError(err)
}

func (suite *JobRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *JobRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	newJob := suite.newAvailableJob(job.TypeStorage)

	err := suite.repo.Add(ctx, newJob)
	suite.Require().NoError(err)

	stored, err := suite.repo.Get(ctx, newJob.ID())
	suite.Require().NoError(err)

	suite.True(stored.ID().IsEqual(newJob.ID()))
	suite.True(stored.OrderID().IsEqual(newJob.OrderID()))
	suite.True(stored.StudentID().IsEqual(newJob.StudentID()))
	suite.Equal(job.TypeStorage, stored.JobType())
	suite.Equal(job.StatusAvailable, stored.Status())
	suite.Nil(stored.Mover())
	suite.Equal(newJob.Volume(), stored.Volume())
	suite.True(stored.Price().IsEqual(newJob.Price()))
	suite.True(stored.PickupAddress().IsEqual(newJob.PickupAddress()))
	suite.True(stored.DropoffAddress().IsEqual(newJob.DropoffAddress()))
}

func (suite *JobRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *JobRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusChange() {
	ctx := context.Background()
	moverID := kernel.NewUUID()

	newJob := suite.newAvailableJob(job.TypeStorage)
	err := suite.repo.Add(ctx, newJob)
	suite.Require().NoError(err)

	claimed, err := suite.repo.TryAccept(ctx, newJob.ID(), moverID)
	suite.Require().NoError(err)

	err = claimed.MarkPickedUp(moverID)
	suite.Require().NoError(err)

	err = suite.repo.Update(ctx, claimed)
	suite.Require().NoError(err)

	stored, err := suite.repo.Get(ctx, claimed.ID())
	suite.Require().NoError(err)
	suite.Equal(job.StatusPickedUp, stored.Status())
	suite.Require().NotNil(stored.Mover())
	suite.True(stored.Mover().IsEqual(moverID))
}

func (suite *JobRepositoryIntegrationTestSuite) TestUpdate_MissingJobReturnsNotFound() {
	ctx := context.Background()

	orphan := suite.newAvailableJob(job.TypeReturn)
	err := suite.repo.Update(ctx, orphan)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *JobRepositoryIntegrationTestSuite) TestTryAccept_ClaimsAvailableJob() {
	ctx := context.Background()
	moverID := kernel.NewUUID()

	newJob := suite.newAvailableJob(job.TypeStorage)
	err := suite.repo.Add(ctx, newJob)
	suite.Require().NoError(err)

	claimed, err := suite.repo.TryAccept(ctx, newJob.ID(), moverID)
	suite.Require().NoError(err)

	suite.Equal(job.StatusAccepted, claimed.Status())
	suite.Require().NotNil(claimed.Mover())
	suite.True(claimed.Mover().IsEqual(moverID))
}

func (suite *JobRepositoryIntegrationTestSuite) TestTryAccept_SecondClaimConflicts() {
	ctx := context.Background()

	newJob := suite.newAvailableJob(job.TypeStorage)
	err := suite.repo.Add(ctx, newJob)
	suite.Require().NoError(err)

	_, err = suite.repo.TryAccept(ctx, newJob.ID(), kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.repo.TryAccept(ctx, newJob.ID(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConflict)
}

func (suite *JobRepositoryIntegrationTestSuite) TestTryAccept_MissingJobReturnsNotFound() {
	_, err := suite.repo.TryAccept(context.Background(), kernel.NewUUID(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

// TestTryAccept_ConcurrentClaimersExactlyOneWins races many movers for
// the same job and checks that exactly one claim lands.
func (suite *JobRepositoryIntegrationTestSuite) TestTryAccept_ConcurrentClaimersExactlyOneWins() {
	ctx := context.Background()
	const claimers = 16

	newJob := suite.newAvailableJob(job.TypeStorage)
	err := suite.repo.Add(ctx, newJob)
	suite.Require().NoError(err)

	var wg sync.WaitGroup
	results := make(chan error, claimers)

	for range claimers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, claimErr := suite.repo.TryAccept(ctx, newJob.ID(), kernel.NewUUID())
			results <- claimErr
		}()
	}
	wg.Wait()
	close(results)

	var wins, conflicts int
	for claimErr := range results {
		switch {
		case claimErr == nil:
			wins++
		default:
			suite.ErrorIs(claimErr, errs.ErrConflict)
			conflicts++
		}
	}

	suite.Equal(1, wins)
	suite.Equal(claimers-1, conflicts)

	stored, err := suite.repo.Get(ctx, newJob.ID())
	suite.Require().NoError(err)
	suite.Equal(job.StatusAccepted, stored.Status())
	suite.NotNil(stored.Mover())
}

func (suite *JobRepositoryIntegrationTestSuite) TestGetAvailable_FiltersClaimedJobs() {
	ctx := context.Background()

	open := suite.newAvailableJob(job.TypeStorage)
	claimedSource := suite.newAvailableJob(job.TypeReturn)

	suite.Require().NoError(suite.repo.Add(ctx, open))
	suite.Require().NoError(suite.repo.Add(ctx, claimedSource))

	_, err := suite.repo.TryAccept(ctx, claimedSource.ID(), kernel.NewUUID())
	suite.Require().NoError(err)

	available, err := suite.repo.GetAvailable(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(available, 1)
	suite.True(available[0].ID().IsEqual(open.ID()))
}

func (suite *JobRepositoryIntegrationTestSuite) TestGetByMover_ReturnsClaimedJobs() {
	ctx := context.Background()
	moverID := kernel.NewUUID()

	mine := suite.newAvailableJob(job.TypeStorage)
	other := suite.newAvailableJob(job.TypeStorage)

	suite.Require().NoError(suite.repo.Add(ctx, mine))
	suite.Require().NoError(suite.repo.Add(ctx, other))

	_, err := suite.repo.TryAccept(ctx, mine.ID(), moverID)
	suite.Require().NoError(err)

	jobs, err := suite.repo.GetByMover(ctx, moverID)
	suite.Require().NoError(err)
	suite.Require().Len(jobs, 1)
	suite.True(jobs[0].ID().IsEqual(mine.ID()))
}

func (suite *JobRepositoryIntegrationTestSuite) TestGetByOrder_ReturnsBothLegs() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	studentID := kernel.NewUUID()

	storageLeg := suite.newJobForOrder(orderID, studentID, job.TypeStorage, 24*time.Hour)
	returnLeg := suite.newJobForOrder(orderID, studentID, job.TypeReturn, 14*24*time.Hour)

	suite.Require().NoError(suite.repo.Add(ctx, storageLeg))
	suite.Require().NoError(suite.repo.Add(ctx, returnLeg))
	suite.Require().NoError(suite.repo.Add(ctx, suite.newAvailableJob(job.TypeStorage)))

	jobs, err := suite.repo.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(jobs, 2)
	suite.Equal(job.TypeStorage, jobs[0].JobType())
	suite.Equal(job.TypeReturn, jobs[1].JobType())
}

func (suite *JobRepositoryIntegrationTestSuite) newAvailableJob(jobType job.Type) *job.Job {
	return suite.newJobForOrder(kernel.NewUUID(), kernel.NewUUID(), jobType, 24*time.Hour)
}

func (suite *JobRepositoryIntegrationTestSuite) newJobForOrder(
	orderID kernel.UUID,
	studentID kernel.UUID,
	jobType job.Type,
	in time.Duration,
) *job.Job {
	pickup, err := kernel.NewAddress("12 College Walk", "Cambridge", "02138")
	suite.Require().NoError(err)
	dropoff, err := kernel.NewAddress("3 Warehouse Row", "Somerville", "02143")
	suite.Require().NoError(err)
	price, err := kernel.NewMoney(4500)
	suite.Require().NoError(err)

	newJob, err := job.NewJob(
		kernel.NewUUID(), orderID, studentID,
		jobType, 3, price, pickup, dropoff,
		time.Now().UTC().Add(in),
	)
	suite.Require().NoError(err)
	return newJob
}

func TestJobRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(JobRepositoryIntegrationTestSuite))
}
