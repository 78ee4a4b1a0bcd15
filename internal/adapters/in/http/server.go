package http

import (
	"errors"
	"net/http"

	"movebox/internal/core/application/usecases/commands"
	"movebox/internal/core/application/usecases/queries"
	"movebox/internal/core/domain/model/job"
	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/generated/servers"
	"movebox/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler                 commands.CreateOrderCommandHandler
	cancelOrderHandler                 commands.CancelOrderCommandHandler
	createJobHandler                   commands.CreateJobCommandHandler
	acceptJobHandler                   commands.AcceptJobCommandHandler
	updateJobStatusHandler             commands.UpdateJobStatusCommandHandler
	requestPickupConfirmationHandler   commands.RequestPickupConfirmationCommandHandler
	confirmPickupHandler               commands.ConfirmPickupCommandHandler
	requestDeliveryConfirmationHandler commands.RequestDeliveryConfirmationCommandHandler
	confirmDeliveryHandler             commands.ConfirmDeliveryCommandHandler

	// Query handlers
	getActiveOrderHandler   queries.GetActiveOrderQueryHandler
	getAvailableJobsHandler queries.GetAvailableJobsQueryHandler
	getJobsByMoverHandler   queries.GetJobsByMoverQueryHandler
	getJobsByStudentHandler queries.GetJobsByStudentQueryHandler
	getJobsByOrderHandler   queries.GetJobsByOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	createJobHandler commands.CreateJobCommandHandler,
	acceptJobHandler commands.AcceptJobCommandHandler,
	updateJobStatusHandler commands.UpdateJobStatusCommandHandler,
	requestPickupConfirmationHandler commands.RequestPickupConfirmationCommandHandler,
	confirmPickupHandler commands.ConfirmPickupCommandHandler,
	requestDeliveryConfirmationHandler commands.RequestDeliveryConfirmationCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	getActiveOrderHandler queries.GetActiveOrderQueryHandler,
	getAvailableJobsHandler queries.GetAvailableJobsQueryHandler,
	getJobsByMoverHandler queries.GetJobsByMoverQueryHandler,
	getJobsByStudentHandler queries.GetJobsByStudentQueryHandler,
	getJobsByOrderHandler queries.GetJobsByOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:                 createOrderHandler,
		cancelOrderHandler:                 cancelOrderHandler,
		createJobHandler:                   createJobHandler,
		acceptJobHandler:                   acceptJobHandler,
		updateJobStatusHandler:             updateJobStatusHandler,
		requestPickupConfirmationHandler:   requestPickupConfirmationHandler,
		confirmPickupHandler:               confirmPickupHandler,
		requestDeliveryConfirmationHandler: requestDeliveryConfirmationHandler,
		confirmDeliveryHandler:             confirmDeliveryHandler,
		getActiveOrderHandler:              getActiveOrderHandler,
		getAvailableJobsHandler:            getAvailableJobsHandler,
		getJobsByMoverHandler:              getJobsByMoverHandler,
		getJobsByStudentHandler:            getJobsByStudentHandler,
		getJobsByOrderHandler:              getJobsByOrderHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - places a new storage order.
func (s *Server) CreateOrder(ctx echo.Context, params servers.CreateOrderParams) error {
	actor, err := actorFromHeaders(params.XActorId, params.XActorRole)
	if err != nil {
		return badRequest(ctx, err)
	}

	var newOrder servers.NewOrder
	if err = ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	orderID, err := kernel.UUIDFromBytes(newOrder.Id[:])
	if err != nil {
		return badRequest(ctx, err)
	}
	price, err := kernel.NewMoney(newOrder.PriceCents)
	if err != nil {
		return badRequest(ctx, err)
	}
	pickup, err := kernel.NewAddress(newOrder.Pickup.Street, newOrder.Pickup.City, newOrder.Pickup.Zip)
	if err != nil {
		return badRequest(ctx, err)
	}
	dropoff, err := kernel.NewAddress(newOrder.Dropoff.Street, newOrder.Dropoff.City, newOrder.Dropoff.Zip)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		orderID, actor, newOrder.Volume, price, pickup, dropoff, newOrder.ScheduledAt, newOrder.PaymentRef,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return problem(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID, params servers.CancelOrderParams) error {
	actor, err := actorFromHeaders(params.XActorId, params.XActorRole)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return problem(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// CreateJob handles POST /api/v1/jobs - opens a new job against an order.
func (s *Server) CreateJob(ctx echo.Context) error {
	var newJob servers.NewJob
	if err := ctx.Bind(&newJob); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	jobID, err := kernel.UUIDFromBytes(newJob.Id[:])
	if err != nil {
		return badRequest(ctx, err)
	}
	orderID, err := kernel.UUIDFromBytes(newJob.OrderId[:])
	if err != nil {
		return badRequest(ctx, err)
	}
	jobType, err := jobTypeFromAPI(newJob.JobType)
	if err != nil {
		return badRequest(ctx, err)
	}
	price, err := kernel.NewMoney(newJob.PriceCents)
	if err != nil {
		return badRequest(ctx, err)
	}
	pickup, err := kernel.NewAddress(newJob.Pickup.Street, newJob.Pickup.City, newJob.Pickup.Zip)
	if err != nil {
		return badRequest(ctx, err)
	}
	dropoff, err := kernel.NewAddress(newJob.Dropoff.Street, newJob.Dropoff.City, newJob.Dropoff.Zip)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCreateJobCommand(
		jobID, orderID, jobType, newJob.Volume, price, pickup, dropoff, newJob.ScheduledAt,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.createJobHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return problem(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AcceptJob handles POST /api/v1/jobs/{jobId}/accept - a mover claims an
// available job. Exactly one claimer wins; the rest get a conflict.
func (s *Server) AcceptJob(ctx echo.Context, jobId openapi_types.UUID, params servers.AcceptJobParams) error {
	actor, err := actorFromHeaders(params.XActorId, params.XActorRole)
	if err != nil {
		return badRequest(ctx, err)
	}

	jobID, err := kernel.UUIDFromBytes(jobId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAcceptJobCommand(jobID, actor)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.acceptJobHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return problem(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// UpdateJobStatus handles PUT /api/v1/jobs/{jobId}/status.
func (s *Server) UpdateJobStatus(ctx echo.Context, jobId openapi_types.UUID, params servers.UpdateJobStatusParams) error {
	actor, err := actorFromHeaders(params.XActorId, params.XActorRole)
	if err != nil {
		return badRequest(ctx, err)
	}

	var update servers.JobStatusUpdate
	if err = ctx.Bind(&update); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	jobID, err := kernel.UUIDFromBytes(jobId[:])
	if err != nil {
		return badRequest(ctx, err)
	}
	status, err := jobStatusFromAPI(update.Status)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateJobStatusCommand(jobID, status, actor)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.updateJobStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return problem(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// RequestPickupConfirmation handles POST /api/v1/jobs/{jobId}/pickup-confirmation/request.
func (s *Server) RequestPickupConfirmation(ctx echo.Context, jobId openapi_types.UUID, params servers.RequestPickupConfirmationParams) error {
	actor, err := actorFromHeaders(params.XActorId, params.XActorRole)
	if err != nil {
		return badRequest(ctx, err)
	}

	jobID, err := kernel.UUIDFromBytes(jobId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRequestPickupConfirmationCommand(jobID, actor)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.requestPickupConfirmationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return problem(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// ConfirmPickup handles POST /api/v1/jobs/{jobId}/pickup-confirmation/confirm.
func (s *Server) ConfirmPickup(ctx echo.Context, jobId openapi_types.UUID, params servers.ConfirmPickupParams) error {
	actor, err := actorFromHeaders(params.XActorId, params.XActorRole)
	if err != nil {
		return badRequest(ctx, err)
	}

	jobID, err := kernel.UUIDFromBytes(jobId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewConfirmPickupCommand(jobID, actor)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.confirmPickupHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return problem(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// RequestDeliveryConfirmation handles POST /api/v1/jobs/{jobId}/delivery-confirmation/request.
func (s *Server) RequestDeliveryConfirmation(ctx echo.Context, jobId openapi_types.UUID, params servers.RequestDeliveryConfirmationParams) error {
	actor, err := actorFromHeaders(params.XActorId, params.XActorRole)
	if err != nil {
		return badRequest(ctx, err)
	}

	jobID, err := kernel.UUIDFromBytes(jobId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRequestDeliveryConfirmationCommand(jobID, actor)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.requestDeliveryConfirmationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return problem(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// ConfirmDelivery handles POST /api/v1/jobs/{jobId}/delivery-confirmation/confirm.
func (s *Server) ConfirmDelivery(ctx echo.Context, jobId openapi_types.UUID, params servers.ConfirmDeliveryParams) error {
	actor, err := actorFromHeaders(params.XActorId, params.XActorRole)
	if err != nil {
		return badRequest(ctx, err)
	}

	jobID, err := kernel.UUIDFromBytes(jobId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewConfirmDeliveryCommand(jobID, actor)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return problem(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetActiveOrder handles GET /api/v1/students/{studentId}/order.
func (s *Server) GetActiveOrder(ctx echo.Context, studentId openapi_types.UUID) error {
	studentID, err := kernel.UUIDFromBytes(studentId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetActiveOrderQuery(studentID)
	if err != nil {
		return badRequest(ctx, err)
	}

	activeOrder, err := s.getActiveOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	response := servers.Order{
		Id:          activeOrder.ID.Bytes(),
		StudentId:   studentId,
		Status:      activeOrder.Status.String(),
		Volume:      activeOrder.Volume,
		PriceCents:  activeOrder.Price.Cents(),
		Pickup:      addressResponse(activeOrder.Pickup),
		Dropoff:     addressResponse(activeOrder.Dropoff),
		ScheduledAt: activeOrder.ScheduledAt,
		PaymentRef:  activeOrder.PaymentRef,
	}
	if activeOrder.MoverID != nil {
		moverID := activeOrder.MoverID.Bytes()
		response.MoverId = &moverID
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAvailableJobs handles GET /api/v1/jobs/available - the open job board.
func (s *Server) GetAvailableJobs(ctx echo.Context) error {
	jobs, err := s.getAvailableJobsHandler.Handle(ctx.Request().Context(), queries.NewGetAvailableJobsQuery())
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, jobListResponse(jobs))
}

// GetMoverJobs handles GET /api/v1/movers/{moverId}/jobs.
func (s *Server) GetMoverJobs(ctx echo.Context, moverId openapi_types.UUID) error {
	moverID, err := kernel.UUIDFromBytes(moverId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetJobsByMoverQuery(moverID)
	if err != nil {
		return badRequest(ctx, err)
	}

	jobs, err := s.getJobsByMoverHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, jobListResponse(jobs))
}

// GetStudentJobs handles GET /api/v1/students/{studentId}/jobs.
func (s *Server) GetStudentJobs(ctx echo.Context, studentId openapi_types.UUID) error {
	studentID, err := kernel.UUIDFromBytes(studentId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetJobsByStudentQuery(studentID)
	if err != nil {
		return badRequest(ctx, err)
	}

	jobs, err := s.getJobsByStudentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, jobListResponse(jobs))
}

// GetOrderJobs handles GET /api/v1/orders/{orderId}/jobs - both legs.
func (s *Server) GetOrderJobs(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetJobsByOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	jobs, err := s.getJobsByOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, jobListResponse(jobs))
}

// actorFromHeaders builds the authenticated caller out of the identity
// headers. Real authentication sits in front of this service; the headers
// carry what the gateway established.
func actorFromHeaders(id openapi_types.UUID, role servers.ActorRole) (kernel.Actor, error) {
	actorID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.Actor{}, err
	}

	var actorRole kernel.Role
	switch role {
	case servers.Student:
		actorRole = kernel.RoleStudent
	case servers.Mover:
		actorRole = kernel.RoleMover
	default:
		return kernel.Actor{}, errs.NewValueIsInvalidError("X-Actor-Role")
	}

	return kernel.NewActor(actorID, actorRole)
}

func jobTypeFromAPI(t servers.NewJobJobType) (job.Type, error) {
	switch t {
	case servers.Storage:
		return job.TypeStorage, nil
	case servers.Return:
		return job.TypeReturn, nil
	default:
		return job.TypeUnknown, errs.NewValueIsInvalidError("jobType")
	}
}

func jobStatusFromAPI(s servers.JobStatusUpdateStatus) (job.Status, error) {
	switch s {
	case servers.PickedUp:
		return job.StatusPickedUp, nil
	case servers.Completed:
		return job.StatusCompleted, nil
	default:
		return job.StatusUnknown, errs.NewValueIsInvalidError("status")
	}
}

func jobListResponse(jobs []queries.JobReadModel) []servers.Job {
	response := make([]servers.Job, len(jobs))
	for i, j := range jobs {
		response[i] = servers.Job{
			Id:          j.ID.Bytes(),
			OrderId:     j.OrderID.Bytes(),
			JobType:     j.JobType.String(),
			Status:      j.Status.String(),
			Volume:      j.Volume,
			PriceCents:  j.Price.Cents(),
			Pickup:      addressResponse(j.Pickup),
			Dropoff:     addressResponse(j.Dropoff),
			ScheduledAt: j.ScheduledAt,
		}
		if j.MoverID != nil {
			moverID := j.MoverID.Bytes()
			response[i].MoverId = &moverID
		}
	}

	return response
}

func addressResponse(a kernel.Address) servers.Address {
	return servers.Address{
		Street: a.Street(),
		City:   a.City(),
		Zip:    a.Zip(),
	}
}

// badRequest reports a malformed request. Validation failures never reach
// the application layer.
func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// problem maps application errors onto HTTP statuses. Unrecognized errors
// read as internal so storage details never leak to callers.
func problem(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrNotAuthenticated):
		code = http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrInvalidState):
		code = http.StatusConflict
	}

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal error"
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}
