package http

import (
	"errors"
	"net/http"
	"strings"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
//
// Admin endpoints require the admin role; rider endpoints require the
// rider role and resolve the acting rider from the JWT principal.
type Server struct {
	// Command handlers
	requestTransitionHandler commands.RequestOrderTransitionCommandHandler
	assignRiderHandler       commands.AssignRiderCommandHandler
	acceptAssignmentHandler  commands.AcceptAssignmentCommandHandler
	rejectAssignmentHandler  commands.RejectAssignmentCommandHandler
	updateAssignmentHandler  commands.UpdateAssignmentStatusCommandHandler

	// Query handlers
	getOrdersHandler          queries.GetOrdersQueryHandler
	getActiveRidersHandler    queries.GetActiveRidersQueryHandler
	findRidersByZoneHandler   queries.FindRidersByZoneQueryHandler
	getOrderAssignmentHandler queries.GetOrderAssignmentQueryHandler

	// Rider endpoints act on behalf of the rider bound to the JWT user.
	riderRepo ports.RiderRepository
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	requestTransitionHandler commands.RequestOrderTransitionCommandHandler,
	assignRiderHandler commands.AssignRiderCommandHandler,
	acceptAssignmentHandler commands.AcceptAssignmentCommandHandler,
	rejectAssignmentHandler commands.RejectAssignmentCommandHandler,
	updateAssignmentHandler commands.UpdateAssignmentStatusCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getActiveRidersHandler queries.GetActiveRidersQueryHandler,
	findRidersByZoneHandler queries.FindRidersByZoneQueryHandler,
	getOrderAssignmentHandler queries.GetOrderAssignmentQueryHandler,
	riderRepo ports.RiderRepository,
) *Server {
	return &Server{
		requestTransitionHandler:  requestTransitionHandler,
		assignRiderHandler:        assignRiderHandler,
		acceptAssignmentHandler:   acceptAssignmentHandler,
		rejectAssignmentHandler:   rejectAssignmentHandler,
		updateAssignmentHandler:   updateAssignmentHandler,
		getOrdersHandler:          getOrdersHandler,
		getActiveRidersHandler:    getActiveRidersHandler,
		findRidersByZoneHandler:   findRidersByZoneHandler,
		getOrderAssignmentHandler: getOrderAssignmentHandler,
		riderRepo:                 riderRepo,
	}
}

// GetAdminOrders handles GET /admin/orders - lists all orders with display status.
func (s *Server) GetAdminOrders(ctx echo.Context) error {
	if !requireRole(ctx, RoleAdmin) {
		return nil
	}

	query := queries.NewGetOrdersQuery()

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	data := make([]servers.Order, len(orders))
	for i, o := range orders {
		data[i] = servers.Order{
			Id:              o.ID,
			SecureId:        o.SecureID,
			CustomerName:    o.CustomerName,
			CustomerEmail:   o.CustomerEmail,
			TotalPrice:      o.TotalPrice,
			ItemCount:       o.ItemCount,
			ShippingAddress: o.ShippingAddress,
			Status:          o.Status,
			StatusDisplay:   o.StatusDisplay,
			StatusBadge:     o.StatusBadge,
			CourierService:  o.CourierService,
			TrackingId:      o.TrackingID,
		}
	}

	return ctx.JSON(http.StatusOK, servers.OrderList{Data: data})
}

// UpdateOrderStatus handles PUT /admin/orders/{orderId}/status - requests
// a status transition, with shipping details when the target is Shipped.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId int64) error {
	if !requireRole(ctx, RoleAdmin) {
		return nil
	}

	var request servers.StatusUpdateRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse(http.StatusBadRequest, "Invalid request body"))
	}

	orderID, err := parseID(orderId, "order id")
	if err != nil {
		return writeError(ctx, err)
	}

	// Rider id zero means "not supplied"; the validator reports it when
	// the target transition actually needs one.
	shipping := services.ShippingDetails{
		CourierService:    request.CourierService,
		TrackingID:        request.TrackingId,
		EstimatedDelivery: request.EstimatedDelivery,
		Notes:             request.DeliveryNotes,
	}
	if request.RiderId > 0 {
		riderID, idErr := parseID(request.RiderId, "rider id")
		if idErr != nil {
			return writeError(ctx, idErr)
		}
		shipping.RiderID = riderID
	}

	cmd, err := commands.NewRequestOrderTransitionCommand(orderID, request.Status, shipping)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.requestTransitionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Confirmation{
		Message: "Order status updated to " + request.Status,
	})
}

// AssignRider handles POST /admin/orders/{orderId}/assign-rider - binds a
// rider to the order without touching the order status.
func (s *Server) AssignRider(ctx echo.Context, orderId int64) error {
	if !requireRole(ctx, RoleAdmin) {
		return nil
	}

	var request servers.AssignRiderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse(http.StatusBadRequest, "Invalid request body"))
	}

	orderID, err := parseID(orderId, "order id")
	if err != nil {
		return writeError(ctx, err)
	}

	riderID, err := parseID(request.RiderId, "rider id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAssignRiderCommand(orderID, riderID, request.DeliveryNotes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.assignRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Confirmation{
		Message: "Rider assigned to the order",
	})
}

// GetOrderDeliveryAssignment handles GET /admin/orders/{orderId}/delivery-assignment.
func (s *Server) GetOrderDeliveryAssignment(ctx echo.Context, orderId int64) error {
	if !requireRole(ctx, RoleAdmin) {
		return nil
	}

	orderID, err := parseID(orderId, "order id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderAssignmentQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	detail, err := s.getOrderAssignmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.DeliveryAssignment{
		Id:                detail.ID,
		OrderId:           detail.OrderID,
		RiderId:           detail.RiderID,
		RiderName:         detail.RiderName,
		RiderPhone:        detail.RiderPhone,
		Status:            detail.Status,
		StatusBadge:       detail.StatusBadge,
		AssignedAt:        detail.AssignedAt,
		AcceptedAt:        detail.AcceptedAt,
		RejectedAt:        detail.RejectedAt,
		EstimatedDelivery: detail.EstimatedDelivery,
		ActualDelivery:    detail.ActualDelivery,
		DeliveryNotes:     detail.DeliveryNotes,
		RejectionReason:   detail.RejectionReason,
	})
}

// GetActiveRiders handles GET /admin/riders/active.
func (s *Server) GetActiveRiders(ctx echo.Context) error {
	if !requireRole(ctx, RoleAdmin) {
		return nil
	}

	query := queries.NewGetActiveRidersQuery()

	riders, err := s.getActiveRidersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.RiderList{Riders: riderList(riders)})
}

// FindRidersByZone handles GET /admin/riders/zone/{zone}.
func (s *Server) FindRidersByZone(ctx echo.Context, zone string) error {
	if !requireRole(ctx, RoleAdmin) {
		return nil
	}

	query, err := queries.NewFindRidersByZoneQuery(zone)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.findRidersByZoneHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.ZoneSearchResult{
		Riders:        riderList(result.Riders),
		Source:        result.Source,
		NoRidersFound: result.NoRidersFound,
	})
}

// AcceptDelivery handles POST /riders/deliveries/{assignmentId}/accept.
func (s *Server) AcceptDelivery(ctx echo.Context, assignmentId int64) error {
	riderID, ok := s.actingRiderID(ctx)
	if !ok {
		return nil
	}

	var request servers.AcceptDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse(http.StatusBadRequest, "Invalid request body"))
	}

	assignmentID, err := parseID(assignmentId, "assignment id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAcceptAssignmentCommand(assignmentID, riderID, request.EstimatedDelivery)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.acceptAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectDelivery handles POST /riders/deliveries/{assignmentId}/reject.
func (s *Server) RejectDelivery(ctx echo.Context, assignmentId int64) error {
	riderID, ok := s.actingRiderID(ctx)
	if !ok {
		return nil
	}

	var request servers.RejectDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse(http.StatusBadRequest, "Invalid request body"))
	}

	assignmentID, err := parseID(assignmentId, "assignment id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRejectAssignmentCommand(assignmentID, riderID, request.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.rejectAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDeliveryStatus handles PUT /riders/deliveries/{assignmentId}/status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context, assignmentId int64) error {
	riderID, ok := s.actingRiderID(ctx)
	if !ok {
		return nil
	}

	var request servers.DeliveryStatusUpdateRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse(http.StatusBadRequest, "Invalid request body"))
	}

	assignmentID, err := parseID(assignmentId, "assignment id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateAssignmentStatusCommand(assignmentID, riderID, request.Status, request.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// actingRiderID resolves the rider aggregate bound to the authenticated
// user. Riders act only on their own assignments; ownership of the
// specific assignment is enforced by the command handlers.
func (s *Server) actingRiderID(ctx echo.Context) (kernel.ID, bool) {
	principal := principalFrom(ctx)
	if principal == nil {
		_ = ctx.JSON(http.StatusUnauthorized, errorResponse(http.StatusUnauthorized, "authentication required"))
		return kernel.ID{}, false
	}
	if principal.Role != RoleRider {
		_ = ctx.JSON(http.StatusForbidden, errorResponse(http.StatusForbidden, "rider access required"))
		return kernel.ID{}, false
	}

	userID, err := kernel.NewID(principal.UserID)
	if err != nil {
		_ = writeError(ctx, err)
		return kernel.ID{}, false
	}

	deliveryRider, err := s.riderRepo.GetByUserID(ctx.Request().Context(), userID)
	if err != nil {
		_ = ctx.JSON(http.StatusForbidden, errorResponse(http.StatusForbidden, "no rider profile for this account"))
		return kernel.ID{}, false
	}

	return deliveryRider.ID(), true
}

// parseID wraps a raw numeric identifier into a kernel ID, reporting an
// invalid-value error that classifies as 400.
func parseID(value int64, paramName string) (kernel.ID, error) {
	id, err := kernel.NewID(value)
	if err != nil {
		return kernel.ID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return id, nil
}

func riderList(riders []queries.RiderSummary) []servers.Rider {
	response := make([]servers.Rider, len(riders))
	for i, r := range riders {
		response[i] = servers.Rider{
			Id:              r.ID,
			Name:            r.Name,
			Phone:           r.Phone,
			VehicleType:     r.VehicleType,
			VehicleNumber:   r.VehicleNumber,
			Zones:           r.Zones,
			TotalDeliveries: r.TotalDeliveries,
		}
	}
	return response
}

// requireRole writes a 401/403 response and reports false when the
// authenticated principal does not carry the wanted role.
func requireRole(ctx echo.Context, role string) bool {
	principal := principalFrom(ctx)
	if principal == nil {
		_ = ctx.JSON(http.StatusUnauthorized, errorResponse(http.StatusUnauthorized, "authentication required"))
		return false
	}
	if principal.Role != role {
		_ = ctx.JSON(http.StatusForbidden, errorResponse(http.StatusForbidden, "insufficient permissions"))
		return false
	}
	return true
}

// writeError maps application errors onto the HTTP error taxonomy:
// validation rejections are 400 with every message surfaced, ownership
// violations 403, missing objects 404, illegal transitions and state
// conflicts 409 and everything else a generic 500.
func writeError(ctx echo.Context, err error) error {
	var validation *services.ValidationError
	if errors.As(err, &validation) {
		return ctx.JSON(http.StatusBadRequest, errorResponse(http.StatusBadRequest, validationMessage(validation)))
	}

	switch {
	case errors.Is(err, commands.ErrNotAssignmentOwner):
		return ctx.JSON(http.StatusForbidden, errorResponse(http.StatusForbidden, err.Error()))
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, commands.ErrOrderNotFound),
		errors.Is(err, commands.ErrRiderNotFound),
		errors.Is(err, commands.ErrAssignmentNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse(http.StatusNotFound, err.Error()))
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, commands.ErrAssignmentInProgress),
		errors.Is(err, commands.ErrRiderNotActive):
		return ctx.JSON(http.StatusConflict, errorResponse(http.StatusConflict, err.Error()))
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, errorResponse(http.StatusBadRequest, err.Error()))
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse(http.StatusInternalServerError, err.Error()))
	}
}

// validationMessage renders an aggregated shipping validation failure,
// substituting friendlier texts for the two most common rejections.
func validationMessage(validation *services.ValidationError) string {
	messages := validation.Messages()
	rendered := make([]string, 0, len(messages))

	for _, message := range messages {
		switch message {
		case "a delivery rider must be selected":
			rendered = append(rendered, "Please select a delivery rider before marking the order as shipped")
		case "courier service is required", "tracking ID is required":
			rendered = append(rendered, "Courier service and tracking ID are required to ship an order")
		default:
			rendered = append(rendered, message)
		}
	}

	// The courier/tracking substitution can appear twice when both
	// fields are missing.
	deduped := rendered[:0]
	for _, message := range rendered {
		if len(deduped) == 0 || deduped[len(deduped)-1] != message {
			deduped = append(deduped, message)
		}
	}

	return strings.Join(deduped, "; ")
}

func errorResponse(code int, message string) servers.Error {
	return servers.Error{Code: code, Message: message}
}
