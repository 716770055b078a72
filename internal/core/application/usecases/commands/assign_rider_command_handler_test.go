package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignRiderCommandHandler_Handle_CreatesAssignment(t *testing.T) {
	ctx := t.Context()
	testOrder := approvedOrder(t, 1001)
	boundRider := activeRider(t, 3, "karim")
	cmd, err := commands.NewAssignRiderCommand(testOrder.ID(), boundRider.ID(), "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Get", ctx, boundRider.ID()).Return(boundRider, nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("GetByOrderID", ctx, testOrder.ID()).Return(nil, errs.ErrObjectNotFound).Once(),
		assignmentRepo.On("NextID", ctx).Return(mustID(t, 7), nil).Once(),
		assignmentRepo.On("Add", ctx, mock.MatchedBy(func(a *assignment.Assignment) bool {
			return a.Status() == assignment.Pending && a.RiderID().IsEqual(boundRider.ID())
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewAssignRiderCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Approved, testOrder.Status(), "binding a rider must not change order status")
	assignmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignRiderCommandHandler_Handle_RecordsDeliveryNotes(t *testing.T) {
	ctx := t.Context()
	testOrder := approvedOrder(t, 1001)
	boundRider := activeRider(t, 3, "karim")
	cmd, err := commands.NewAssignRiderCommand(testOrder.ID(), boundRider.ID(), "Fragile, handle with care")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Get", ctx, boundRider.ID()).Return(boundRider, nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("GetByOrderID", ctx, testOrder.ID()).Return(nil, errs.ErrObjectNotFound).Once(),
		assignmentRepo.On("NextID", ctx).Return(mustID(t, 7), nil).Once(),
		assignmentRepo.On("Add", ctx, mock.MatchedBy(func(a *assignment.Assignment) bool {
			return a.DeliveryNotes() == "Fragile, handle with care"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewAssignRiderCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assignmentRepo.AssertExpectations(t)
}

func TestAssignRiderCommandHandler_Handle_RebindsPendingAssignment(t *testing.T) {
	ctx := t.Context()
	testOrder := approvedOrder(t, 1001)
	newRider := activeRider(t, 8, "salma")
	existing := pendingAssignment(t, 7, 1001, 3) // bound to another rider
	cmd, err := commands.NewAssignRiderCommand(testOrder.ID(), newRider.ID(), "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Get", ctx, newRider.ID()).Return(newRider, nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("GetByOrderID", ctx, testOrder.ID()).Return(existing, nil).Once(),
		assignmentRepo.On("Update", ctx, mock.MatchedBy(func(a *assignment.Assignment) bool {
			return a.Status() == assignment.Cancelled
		})).Return(nil).Once(),
		assignmentRepo.On("NextID", ctx).Return(mustID(t, 9), nil).Once(),
		assignmentRepo.On("Add", ctx, mock.MatchedBy(func(a *assignment.Assignment) bool {
			return a.Status() == assignment.Pending && a.RiderID().IsEqual(newRider.ID())
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewAssignRiderCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assignmentRepo.AssertExpectations(t)
}

func TestAssignRiderCommandHandler_Handle_SameRiderIsANoOp(t *testing.T) {
	ctx := t.Context()
	testOrder := approvedOrder(t, 1001)
	boundRider := activeRider(t, 3, "karim")
	existing := pendingAssignment(t, 7, 1001, 3)
	cmd, err := commands.NewAssignRiderCommand(testOrder.ID(), boundRider.ID(), "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Get", ctx, boundRider.ID()).Return(boundRider, nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("GetByOrderID", ctx, testOrder.ID()).Return(existing, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewAssignRiderCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assignmentRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	assignmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAssignRiderCommandHandler_Handle_InactiveRider(t *testing.T) {
	ctx := t.Context()
	testOrder := approvedOrder(t, 1001)
	inactive := activeRider(t, 3, "karim")
	inactive.Deactivate()
	cmd, err := commands.NewAssignRiderCommand(testOrder.ID(), inactive.ID(), "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Get", ctx, inactive.ID()).Return(inactive, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewAssignRiderCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrRiderNotActive)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAssignRiderCommandHandler_Handle_AcceptedAssignmentCannotBeRebound(t *testing.T) {
	ctx := t.Context()
	testOrder := approvedOrder(t, 1001)
	newRider := activeRider(t, 8, "salma")
	existing := pendingAssignment(t, 7, 1001, 3)
	require.NoError(t, existing.Accept(""))
	cmd, err := commands.NewAssignRiderCommand(testOrder.ID(), newRider.ID(), "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Get", ctx, newRider.ID()).Return(newRider, nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("GetByOrderID", ctx, testOrder.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewAssignRiderCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAssignmentInProgress)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
