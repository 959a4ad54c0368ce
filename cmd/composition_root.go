package cmd

import (
	"log/slog"
	"math/rand"
	"time"

	"wastehaul/internal/adapters/out/paymentclient"
	"wastehaul/internal/adapters/out/postgres"
	"wastehaul/internal/core/application/usecases/commands"
	"wastehaul/internal/core/application/usecases/queries"
	"wastehaul/internal/core/domain/services"
	"wastehaul/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	dispatcher services.Dispatcher
	settlement services.Settlement
	gateway    *paymentclient.Client
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	policy, err := services.NewRandomPolicy(rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		return CompositionRoot{}, err
	}
	dispatcher, err := services.NewDispatcher(policy)
	if err != nil {
		return CompositionRoot{}, err
	}
	gateway, err := paymentclient.NewClient(config.PaymentServiceURL, 10*time.Second)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		dispatcher: dispatcher,
		settlement: services.NewSettlement(),
		gateway:    gateway,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.settlement)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRejectDispatchCommandHandler() commands.RejectDispatchCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectDispatchCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.FleetUoWFactory = FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateProgressOrderCommandHandler() commands.ProgressOrderCommandHandler {
	var f commands.FleetUoWFactory = FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProgressOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmDepartureCommandHandler() commands.ConfirmDepartureCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmDepartureCommandHandler(f)
}

func (c *CompositionRoot) CreateWeighOrderCommandHandler() commands.WeighOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewWeighOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchOrderCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateSettleOrdersCommandHandler() commands.SettleOrdersCommandHandler {
	var f commands.SettlementUoWFactory = FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSettleOrdersCommandHandler(f, c.settlement)
}

func (c *CompositionRoot) CreateDeliverPaymentsCommandHandler() commands.DeliverPaymentsCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeliverPaymentsCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateGetVisibleOrdersQueryHandler() queries.GetVisibleOrdersQueryHandler {
	return queries.NewGetVisibleOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateDispatchOrderCommandHandler(),
		c.CreateSettleOrdersCommandHandler(),
		c.CreateDeliverPaymentsCommandHandler(),
		logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncFleetUoWFactory func() commands.FleetUoW

func (f FuncFleetUoWFactory) Create() commands.FleetUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncSettlementUoWFactory func() commands.SettlementUoW

func (f FuncSettlementUoWFactory) Create() commands.SettlementUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
