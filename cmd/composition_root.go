package cmd

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/adapters/out/postgres"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/adapters/out/postgres/revenuerepo"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/application/usecases/commands"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/application/usecases/queries"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/domain/services"
	"github.com/Asadullah-Imran/ghorer-khabar-sub002/internal/core/ports"

	"gorm.io/gorm"
)

const defaultStalePendingAfter = 30 * time.Minute

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	admission  *services.AdmissionService
	publisher  ports.NotificationPublisher
	recorder   ports.RevenueRecorder
	staleAfter time.Duration
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		admission:  services.NewAdmissionService(parseFloat(config.MinAdvanceHours), time.Local, nil),
		publisher:  publisher,
		recorder:   revenuerepo.NewGormRevenueRecorder(gormDB, nil),
		staleAfter: parseStaleAfter(config.StalePendingAfterMins),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateValidateOrderCommandHandler() commands.ValidateOrderCommandHandler {
	uow := c.uowFactory.Create()
	return commands.NewValidateOrderCommandHandler(
		c.admission,
		uow.KitchenRepository(),
		uow.MenuItemRepository(),
		uow.OrderRepository(),
	)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.AdmissionUoWFactory = FuncAdmissionUoWFactory(func() commands.AdmissionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.admission, c.publisher, nil, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.recorder, c.publisher, nil, c.logger)
}

func (c *CompositionRoot) CreateNotifyStalePendingCommandHandler() commands.NotifyStalePendingCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewNotifyStalePendingCommandHandler(f, c.publisher, c.staleAfter, nil, c.logger)
}

func (c *CompositionRoot) CreateGetSlotAvailabilityQueryHandler() queries.GetSlotAvailabilityQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetSlotAvailabilityQueryHandler(
		c.admission,
		uow.KitchenRepository(),
		uow.MenuItemRepository(),
		uow.OrderRepository(),
	)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

type FuncAdmissionUoWFactory func() commands.AdmissionUoW

func (f FuncAdmissionUoWFactory) Create() commands.AdmissionUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// parseFloat returns 0 on a missing or malformed value; the admission
// service substitutes its default in that case.
func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseStaleAfter(s string) time.Duration {
	mins, err := strconv.Atoi(s)
	if err != nil || mins <= 0 {
		return defaultStalePendingAfter
	}
	return time.Duration(mins) * time.Minute
}
