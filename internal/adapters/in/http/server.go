// Package http exposes the order workflow over a JSON API.
// It coordinates between HTTP handlers and application use cases; the acting
// account arrives pre-authenticated in the X-Account-ID header, resolved by
// the auth collaborator in front of this service.
package http

import (
	"errors"
	"net/http"

	"wastehaul/internal/core/application/usecases/commands"
	"wastehaul/internal/core/application/usecases/queries"
	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/core/domain/model/order"
	"wastehaul/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const accountIDHeader = "X-Account-ID"

// Server handles the order API. It coordinates between HTTP handlers and
// application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	claimOrderHandler       commands.ClaimOrderCommandHandler
	rejectDispatchHandler   commands.RejectDispatchCommandHandler
	assignDriverHandler     commands.AssignDriverCommandHandler
	progressOrderHandler    commands.ProgressOrderCommandHandler
	confirmDepartureHandler commands.ConfirmDepartureCommandHandler
	weighOrderHandler       commands.WeighOrderCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler

	// Query handlers
	getVisibleOrdersHandler queries.GetVisibleOrdersQueryHandler
	getOrderHandler         queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	rejectDispatchHandler commands.RejectDispatchCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	progressOrderHandler commands.ProgressOrderCommandHandler,
	confirmDepartureHandler commands.ConfirmDepartureCommandHandler,
	weighOrderHandler commands.WeighOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getVisibleOrdersHandler queries.GetVisibleOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		claimOrderHandler:       claimOrderHandler,
		rejectDispatchHandler:   rejectDispatchHandler,
		assignDriverHandler:     assignDriverHandler,
		progressOrderHandler:    progressOrderHandler,
		confirmDepartureHandler: confirmDepartureHandler,
		weighOrderHandler:       weighOrderHandler,
		cancelOrderHandler:      cancelOrderHandler,
		getVisibleOrdersHandler: getVisibleOrdersHandler,
		getOrderHandler:         getOrderHandler,
	}
}

// RegisterRoutes attaches the API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:orderID", s.GetOrder)
	api.POST("/orders/:orderID/claim", s.ClaimOrder)
	api.POST("/orders/:orderID/reject", s.RejectDispatch)
	api.POST("/orders/:orderID/assign-driver", s.AssignDriver)
	api.POST("/orders/:orderID/progress", s.ProgressOrder)
	api.POST("/orders/:orderID/confirm-departure", s.ConfirmDeparture)
	api.POST("/orders/:orderID/weigh", s.WeighOrder)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)
}

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderRequest is the body of POST /orders.
type NewOrderRequest struct {
	Address        string `json:"address"`
	WasteType      string `json:"waste_type"`
	DeclaredVolume int    `json:"declared_volume"`
	Remarks        string `json:"remarks"`
}

// NewOrderResponse returns the identifier of the created order.
type NewOrderResponse struct {
	ID string `json:"id"`
}

// OrderResponse is the JSON projection of one order.
type OrderResponse struct {
	ID                   string `json:"id"`
	RequesterID          string `json:"requester_id"`
	Address              string `json:"address"`
	WasteType            string `json:"waste_type"`
	DeclaredVolume       int    `json:"declared_volume"`
	Status               string `json:"status"`
	EstimatedChargeCents int64  `json:"estimated_charge_cents"`
	FinalChargeCents     *int64 `json:"final_charge_cents,omitempty"`
	CreatedAt            string `json:"created_at"`
}

// ClaimRequest is the body of POST /orders/:orderID/claim and reject.
type ClaimRequest struct {
	TransportOrgID string `json:"transport_org_id"`
}

// AssignDriverRequest is the body of POST /orders/:orderID/assign-driver.
type AssignDriverRequest struct {
	DriverID  string `json:"driver_id"`
	VehicleID string `json:"vehicle_id"`
}

// ProgressRequest is the body of POST /orders/:orderID/progress.
type ProgressRequest struct {
	Target    string   `json:"target"`
	PhotoRefs []string `json:"photo_refs"`
}

// WeighRequest is the body of POST /orders/:orderID/weigh.
type WeighRequest struct {
	ActualVolume int `json:"actual_volume"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request NewOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		actorID,
		request.Address,
		order.WasteType(request.WasteType),
		request.DeclaredVolume,
		request.Remarks,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, NewOrderResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetVisibleOrdersQuery(actorID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := s.getVisibleOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:orderID.
func (s *Server) GetOrder(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, actorID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(found))
}

// ClaimOrder handles POST /api/v1/orders/:orderID/claim.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	actorID, orderID, err := actorAndOrder(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request ClaimRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	transportOrgID, err := kernel.UUIDFromString(request.TransportOrgID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, actorID, transportOrgID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.claimOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectDispatch handles POST /api/v1/orders/:orderID/reject.
func (s *Server) RejectDispatch(ctx echo.Context) error {
	actorID, orderID, err := actorAndOrder(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request ClaimRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	transportOrgID, err := kernel.UUIDFromString(request.TransportOrgID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewRejectDispatchCommand(orderID, actorID, transportOrgID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.rejectDispatchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDriver handles POST /api/v1/orders/:orderID/assign-driver.
func (s *Server) AssignDriver(ctx echo.Context) error {
	actorID, orderID, err := actorAndOrder(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request AssignDriverRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	driverID, err := kernel.UUIDFromString(request.DriverID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	vehicleID, err := kernel.UUIDFromString(request.VehicleID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, actorID, driverID, vehicleID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ProgressOrder handles POST /api/v1/orders/:orderID/progress.
func (s *Server) ProgressOrder(ctx echo.Context) error {
	actorID, orderID, err := actorAndOrder(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request ProgressRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	target, err := order.StatusFromString(request.Target)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewProgressOrderCommand(orderID, actorID, target, request.PhotoRefs)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.progressOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmDeparture handles POST /api/v1/orders/:orderID/confirm-departure.
func (s *Server) ConfirmDeparture(ctx echo.Context) error {
	actorID, orderID, err := actorAndOrder(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewConfirmDepartureCommand(orderID, actorID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.confirmDepartureHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// WeighOrder handles POST /api/v1/orders/:orderID/weigh.
func (s *Server) WeighOrder(ctx echo.Context) error {
	actorID, orderID, err := actorAndOrder(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request WeighRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewWeighOrderCommand(orderID, actorID, request.ActualVolume)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.weighOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actorID, orderID, err := actorAndOrder(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actorID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func actorFromHeader(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(accountIDHeader)
	if raw == "" {
		return kernel.UUID{}, errs.NewUnauthorizedError("missing account header")
	}
	return kernel.UUIDFromString(raw)
}

func orderIDFromPath(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("orderID"))
}

func actorAndOrder(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return actorID, orderID, nil
}

func toOrderResponse(o queries.OrderResponse) OrderResponse {
	return OrderResponse{
		ID:                   o.ID.String(),
		RequesterID:          o.RequesterID.String(),
		Address:              o.Address,
		WasteType:            o.WasteType,
		DeclaredVolume:       o.DeclaredVolume,
		Status:               o.Status,
		EstimatedChargeCents: o.EstimatedChargeCents,
		FinalChargeCents:     o.FinalChargeCents,
		CreatedAt:            o.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// errorResponse maps domain error kinds to HTTP statuses. Conflict-class
// failures (illegal transition, busy resource, lost optimistic race,
// terminal order) all map to 409 so clients re-read and retry.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrResourceBusy),
		errors.Is(err, errs.ErrConcurrentModification),
		errors.Is(err, errs.ErrAlreadyTerminal):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrNoCandidateAvailable):
		code = http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrCollaboratorUnavailable):
		code = http.StatusBadGateway
	case errors.Is(err, errs.ErrEvidenceRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
