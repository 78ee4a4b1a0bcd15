package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"movebox/internal/core/application/usecases/commands"
	"movebox/internal/core/domain/model/job"
	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/core/domain/model/order"
	"movebox/internal/core/domain/model/user"
	"movebox/internal/core/ports"
)

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetAll(ctx context.Context) ([]*job.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetAvailable(ctx context.Context) ([]*job.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetByMover(ctx context.Context, moverID kernel.UUID) ([]*job.Job, error) {
	args := m.Called(ctx, moverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetByStudent(ctx context.Context, studentID kernel.UUID) ([]*job.Job, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*job.Job, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

func (m *MockJobRepository) TryAccept(ctx context.Context, jobID kernel.UUID, moverID kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, jobID, moverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetActiveByStudent(ctx context.Context, studentID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) AdjustCredit(ctx context.Context, moverID kernel.UUID, delta kernel.Money) error {
	args := m.Called(ctx, moverID, delta)
	return args.Error(0)
}

func (m *MockUserRepository) GetFcmToken(ctx context.Context, userID kernel.UUID) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) ClearInvalidFcmToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type MockCreditTaskRepository struct{ mock.Mock }

func (m *MockCreditTaskRepository) Enqueue(ctx context.Context, task ports.CreditTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockCreditTaskRepository) GetPending(ctx context.Context, limit int) ([]ports.CreditTask, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.CreditTask), args.Error(1)
}

func (m *MockCreditTaskRepository) MarkDone(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCreditTaskRepository) MarkAttempt(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockNotificationDispatcher struct{ mock.Mock }

func (m *MockNotificationDispatcher) SendJobStatusNotification(
	ctx context.Context,
	recipientID kernel.UUID,
	jobID kernel.UUID,
	status job.Status,
) error {
	args := m.Called(ctx, recipientID, jobID, status)
	return args.Error(0)
}

type MockEventEmitter struct{ mock.Mock }

func (m *MockEventEmitter) EmitJobCreated(ctx context.Context, j *job.Job, meta ports.EventMeta) {
	m.Called(ctx, j, meta)
}

func (m *MockEventEmitter) EmitJobUpdated(ctx context.Context, j *job.Job, meta ports.EventMeta) {
	m.Called(ctx, j, meta)
}

func (m *MockEventEmitter) EmitOrderCreated(ctx context.Context, o *order.Order, meta ports.EventMeta) {
	m.Called(ctx, o, meta)
}

func (m *MockEventEmitter) EmitOrderUpdated(ctx context.Context, o *order.Order, meta ports.EventMeta) {
	m.Called(ctx, o, meta)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) Refund(ctx context.Context, paymentRef string, amount kernel.Money) error {
	args := m.Called(ctx, paymentRef, amount)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) CreditTaskRepository() ports.CreditTaskRepository {
	args := m.Called()
	return args.Get(0).(ports.CreditTaskRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

// Test fixtures shared by the handler tests.

func testAddresses(t *testing.T) (kernel.Address, kernel.Address) {
	t.Helper()
	pickup, err := kernel.NewAddress("12 College Walk", "Cambridge", "CB2 1TN")
	require.NoError(t, err)
	dropoff, err := kernel.NewAddress("Unit 4, Depot Lane", "Cambridge", "CB4 2QT")
	require.NoError(t, err)
	return pickup, dropoff
}

func testPrice(t *testing.T) kernel.Money {
	t.Helper()
	price, err := kernel.NewMoney(4500)
	require.NoError(t, err)
	return price
}

func testMoverActor(t *testing.T, id kernel.UUID) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(id, kernel.RoleMover)
	require.NoError(t, err)
	return actor
}

func testStudentActor(t *testing.T, id kernel.UUID) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(id, kernel.RoleStudent)
	require.NoError(t, err)
	return actor
}

func testRestoredJob(t *testing.T, jobType job.Type, status job.Status, studentID kernel.UUID, moverID *kernel.UUID) *job.Job {
	t.Helper()
	pickup, dropoff := testAddresses(t)
	now := time.Now().UTC()

	j, err := job.RestoreJob(
		kernel.NewUUID(), kernel.NewUUID(), studentID, moverID,
		jobType, status, 2, testPrice(t), pickup, dropoff,
		now.Add(24*time.Hour), nil, nil, now.Add(-time.Hour), now,
	)
	require.NoError(t, err)
	return j
}

func testRestoredOrder(t *testing.T, studentID kernel.UUID, status order.Status, paymentRef *string) *order.Order {
	t.Helper()
	pickup, dropoff := testAddresses(t)
	now := time.Now().UTC()

	o, err := order.RestoreOrder(
		kernel.NewUUID(), studentID, nil, status,
		2, testPrice(t), pickup, dropoff,
		now.Add(24*time.Hour), paymentRef, now.Add(-time.Hour), now,
	)
	require.NoError(t, err)
	return o
}
