package cmd

import (
	"log/slog"

	"fulfillment/internal/adapters/out/kafka"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	var publisher ports.EventPublisher
	if configs.KafkaHost != "" {
		publisher = kafka.NewStatusEventPublisher(configs.KafkaHost, configs.KafkaOrderChangedTopic)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateRequestOrderTransitionCommandHandler() commands.RequestOrderTransitionCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestOrderTransitionCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignRiderCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptAssignmentCommandHandler() commands.AcceptAssignmentCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptAssignmentCommandHandler(f)
}

func (c *CompositionRoot) CreateRejectAssignmentCommandHandler() commands.RejectAssignmentCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectAssignmentCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateAssignmentStatusCommandHandler() commands.UpdateAssignmentStatusCommandHandler {
	var f commands.RiderAssignmentUoWFactory = FuncRiderAssignmentUoWFactory(func() commands.RiderAssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateAssignmentStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteDeliveredOrdersCommandHandler() commands.CompleteDeliveredOrdersCommandHandler {
	var f commands.OrderAssignmentUoWFactory = FuncOrderAssignmentUoWFactory(func() commands.OrderAssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveredOrdersCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveRidersQueryHandler() queries.GetActiveRidersQueryHandler {
	return queries.NewGetActiveRidersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindRidersByZoneQueryHandler() queries.FindRidersByZoneQueryHandler {
	return queries.NewFindRidersByZoneQueryHandler(c.CreateRiderRepository(), c.logger)
}

func (c *CompositionRoot) CreateGetOrderAssignmentQueryHandler() queries.GetOrderAssignmentQueryHandler {
	return queries.NewGetOrderAssignmentQueryHandler(c.gormDB)
}

// CreateRiderRepository returns a rider repository outside any transaction,
// for read-only lookups such as resolving the rider behind a JWT principal.
func (c *CompositionRoot) CreateRiderRepository() ports.RiderRepository {
	return c.uowFactory.Create().RiderRepository()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncRiderAssignmentUoWFactory func() commands.RiderAssignmentUoW

func (f FuncRiderAssignmentUoWFactory) Create() commands.RiderAssignmentUoW {
	return f()
}

type FuncOrderAssignmentUoWFactory func() commands.OrderAssignmentUoW

func (f FuncOrderAssignmentUoWFactory) Create() commands.OrderAssignmentUoW {
	return f()
}
