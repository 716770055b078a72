// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RiderRepoFactory provides access to the rider repository within a transaction.
	RiderRepoFactory interface {
		RiderRepository() ports.RiderRepository
	}

	// AssignmentRepoFactory provides access to the assignment repository within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// AssignmentUoW manages transactions for assignment-only operations.
	// Used by the rider accept/reject commands, which never touch the
	// parent order or the rider aggregate.
	AssignmentUoW interface {
		TxManager
		AssignmentRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// RiderAssignmentUoW manages transactions spanning the assignment and
	// rider aggregates. Used by the rider-side status update, where a
	// delivered assignment also increments the rider's delivery counter.
	RiderAssignmentUoW interface {
		TxManager
		AssignmentRepoFactory
		RiderRepoFactory
	}

	// RiderAssignmentUoWFactory creates new rider/assignment unit of work instances.
	RiderAssignmentUoWFactory interface {
		Create() RiderAssignmentUoW
	}

	// OrderAssignmentUoW manages transactions spanning the order and
	// assignment aggregates. Used by the delivery reconciliation command,
	// which advances shipped orders whose assignment was delivered.
	OrderAssignmentUoW interface {
		TxManager
		OrderRepoFactory
		AssignmentRepoFactory
	}

	// OrderAssignmentUoWFactory creates new order/assignment unit of work instances.
	OrderAssignmentUoWFactory interface {
		Create() OrderAssignmentUoW
	}

	// UoW manages transactions across all three aggregates. Used by the
	// admin-side commands that change the order and bind riders in one
	// atomic step.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   assignmentRepo := uow.AssignmentRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		RiderRepoFactory
		AssignmentRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
