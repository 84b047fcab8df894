package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	httpadapter "deliverysystem/internal/adapters/in/http"
	"deliverysystem/internal/adapters/out/memory"
	"deliverysystem/internal/adapters/out/notification"
	"deliverysystem/internal/adapters/out/postgres"
	"deliverysystem/internal/config"
	"deliverysystem/internal/core/application/usecases/commands"
	"deliverysystem/internal/core/application/usecases/queries"
	"deliverysystem/internal/core/domain/model/courier"
	"deliverysystem/internal/core/ports"
	"deliverysystem/internal/jobs"
	"deliverysystem/internal/pkg/keylock"
)

// CompositionRoot owns the shared infrastructure and builds every handler.
type CompositionRoot struct {
	cfg        Config
	logger     *slog.Logger
	uowFactory ports.UnitOfWorkFactory
	settings   *config.Store
	locker     *keylock.Locker
	notifier   ports.Notifier
	couriers   *courier.FactoryProvider
	closers    []func() error
}

// NewCompositionRoot opens the configured storage and notification sender.
// Close releases them.
func NewCompositionRoot(cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	settings, err := config.NewStore(cfg.Settings)
	if err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	c := &CompositionRoot{
		cfg:      cfg,
		logger:   logger,
		settings: settings,
		locker:   keylock.New(),
		couriers: courier.NewDefaultFactoryProvider(),
	}

	if err := c.openStorage(); err != nil {
		return nil, errors.Join(err, c.Close())
	}
	if err := c.openNotifier(); err != nil {
		return nil, errors.Join(err, c.Close())
	}

	logger.Info("composition root ready",
		"storage", cfg.Storage,
		"notifier", cfg.Notifier,
		"settings", settings.Snapshot().String(),
	)
	return c, nil
}

func (c *CompositionRoot) openStorage() error {
	switch c.cfg.Storage {
	case StoragePostgres:
		db, err := postgres.Open(postgres.DSN(
			c.cfg.DBHost, c.cfg.DBPort, c.cfg.DBUser, c.cfg.DBPassword, c.cfg.DBName, c.cfg.DBSslMode,
		))
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("get sql.DB: %w", err)
		}
		c.closers = append(c.closers, sqlDB.Close)
		if err := postgres.Migrate(db); err != nil {
			return err
		}
		c.uowFactory = postgres.NewGormUnitOfWorkFactory(db)
	default:
		c.uowFactory = memory.NewUnitOfWorkFactory(memory.NewStore())
	}
	return nil
}

func (c *CompositionRoot) openNotifier() error {
	var formatter notification.Formatter = notification.NewPlainTextFormatter(c.settings)
	if c.cfg.NotifyFormat == FormatHTML {
		formatter = notification.NewHTMLFormatter(c.settings)
	}

	var sender notification.Sender = notification.NewConsoleSender(c.logger)
	if c.cfg.Notifier == NotifierAMQP {
		conn, err := notification.Dial(c.cfg.AMQPURL)
		if err != nil {
			return err
		}
		c.closers = append(c.closers, conn.Close)
		sender = notification.NewAMQPSender(conn, c.cfg.AMQPExchange)
	}

	c.notifier = notification.NewNotifier(formatter, sender)
	return nil
}

// Close releases connections in reverse order of opening.
func (c *CompositionRoot) Close() error {
	var err error
	for i := len(c.closers) - 1; i >= 0; i-- {
		err = errors.Join(err, c.closers[i]())
	}
	c.closers = nil
	return err
}

// Settings returns the shared business settings store.
func (c *CompositionRoot) Settings() *config.Store {
	return c.settings
}

func (c *CompositionRoot) uows() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) repositories() queries.RepositoriesFactory {
	return FuncRepositoriesFactory(func() queries.Repositories {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCourierCommandHandler(f, c.couriers)
}

func (c *CompositionRoot) orderUoWs() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWs(), c.settings, c.notifier)
}

func (c *CompositionRoot) CreateCloneOrderCommandHandler() commands.CloneOrderCommandHandler {
	return commands.NewCloneOrderCommandHandler(c.orderUoWs(), c.notifier)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWs(), c.notifier, c.locker)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	return commands.NewAssignCourierCommandHandler(c.uows(), c.settings, c.notifier, c.locker)
}

func (c *CompositionRoot) CreateAutoAssignCourierCommandHandler() commands.AutoAssignCourierCommandHandler {
	return commands.NewAutoAssignCourierCommandHandler(c.uows(), c.notifier, c.locker, c.cfg.AutoAssignDistanceKm)
}

func (c *CompositionRoot) CreateChangeDeliveryStatusCommandHandler() commands.ChangeDeliveryStatusCommandHandler {
	return commands.NewChangeDeliveryStatusCommandHandler(c.uows(), c.notifier, c.locker, c.logger)
}

func (c *CompositionRoot) CreateReleaseIdleCouriersCommandHandler() commands.ReleaseIdleCouriersCommandHandler {
	return commands.NewReleaseIdleCouriersCommandHandler(c.uows(), c.locker, c.logger)
}

func (c *CompositionRoot) CreateUpdateSettingsCommandHandler() commands.UpdateSettingsCommandHandler {
	return commands.NewUpdateSettingsCommandHandler(c.settings, c.logger)
}

// CreateHTTPServer wires every use case into the REST API.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	repos := c.repositories()
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateCustomer:       c.CreateCreateCustomerCommandHandler(),
		CreateCourier:        c.CreateCreateCourierCommandHandler(),
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		CloneOrder:           c.CreateCloneOrderCommandHandler(),
		ChangeOrderStatus:    c.CreateChangeOrderStatusCommandHandler(),
		AssignCourier:        c.CreateAssignCourierCommandHandler(),
		AutoAssignCourier:    c.CreateAutoAssignCourierCommandHandler(),
		ChangeDeliveryStatus: c.CreateChangeDeliveryStatusCommandHandler(),
		UpdateSettings:       c.CreateUpdateSettingsCommandHandler(),
		GetByID:              queries.NewGetByIDQueryHandler(repos),
		GetAllCustomers:      queries.NewGetAllCustomersQueryHandler(repos),
		GetAllCouriers:       queries.NewGetAllCouriersQueryHandler(repos),
		FindAvailableCourier: queries.NewFindAvailableCourierQueryHandler(repos),
		GetOrders:            queries.NewGetOrdersQueryHandler(repos),
		GetUncompletedOrders: queries.NewGetUncompletedOrdersQueryHandler(repos),
		GetDeliveries:        queries.NewGetDeliveriesQueryHandler(repos),
		GetSettings:          queries.NewGetSettingsQueryHandler(c.settings),
	}, c.logger)
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateAutoAssignCourierCommandHandler(),
		c.CreateReleaseIdleCouriersCommandHandler(),
		c.logger,
	)
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncRepositoriesFactory func() queries.Repositories

func (f FuncRepositoriesFactory) Create() queries.Repositories {
	return f()
}
