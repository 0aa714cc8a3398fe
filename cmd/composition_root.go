package cmd

import (
	"log/slog"

	httpin "github.com/Ramos-Maykol/project/internal/adapters/in/http"
	"github.com/Ramos-Maykol/project/internal/adapters/out/postgres"
	"github.com/Ramos-Maykol/project/internal/adapters/out/postgres/historyrepo"
	"github.com/Ramos-Maykol/project/internal/adapters/out/postgres/productrepo"
	"github.com/Ramos-Maykol/project/internal/adapters/out/redis/productcache"
	"github.com/Ramos-Maykol/project/internal/core/application/usecases/commands"
	"github.com/Ramos-Maykol/project/internal/core/application/usecases/queries"
	"github.com/Ramos-Maykol/project/internal/core/domain/services"
	"github.com/Ramos-Maykol/project/internal/core/ports"
	"github.com/Ramos-Maykol/project/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	estimator  *services.DurationEstimator
	scheduler  services.DeliveryScheduler
	catalog    ports.ProductTypeRepository
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, redisClient *redis.Client, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		estimator:  services.NewDurationEstimator(logger),
		scheduler:  services.NewDeliveryScheduler(),
		catalog: productcache.NewCachedProductTypeRepository(
			productrepo.NewGormProductTypeRepository(gormDB), redisClient, logger),
		logger: logger,
	}
}

// cachingUoW swaps the transaction-bound product catalog for the Redis-backed
// one. The catalog is read-only inside commands, so reading it outside the
// transaction is safe.
type cachingUoW struct {
	ports.UnitOfWork
	catalog ports.ProductTypeRepository
}

func (u cachingUoW) ProductTypeRepository() ports.ProductTypeRepository {
	return u.catalog
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return cachingUoW{UnitOfWork: c.uowFactory.Create(), catalog: c.catalog}
	})
	return commands.NewCreateOrderCommandHandler(f, c.estimator, c.scheduler)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.CreateTrainModelCommandHandler(), c.logger)
}

func (c *CompositionRoot) CreateTrainModelCommandHandler() commands.TrainModelCommandHandler {
	return commands.NewTrainModelCommandHandler(historyrepo.NewGormTrainingDataReader(c.gormDB), c.estimator)
}

func (c *CompositionRoot) CreateEstimateDeliveryQueryHandler() queries.EstimateDeliveryQueryHandler {
	return queries.NewEstimateDeliveryQueryHandler(c.gormDB, c.estimator, c.scheduler)
}

func (c *CompositionRoot) CreateGetProductionQueueQueryHandler() queries.GetProductionQueueQueryHandler {
	return queries.NewGetProductionQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductTypesQueryHandler() queries.GetProductTypesQueryHandler {
	return queries.NewGetProductTypesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetModelStatsQueryHandler() queries.GetModelStatsQueryHandler {
	return queries.NewGetModelStatsQueryHandler(c.estimator)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateTrainModelCommandHandler(), c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateTrainModelCommandHandler(),
		c.CreateEstimateDeliveryQueryHandler(),
		c.CreateGetProductionQueueQueryHandler(),
		c.CreateGetProductTypesQueryHandler(),
		c.CreateGetModelStatsQueryHandler(),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
