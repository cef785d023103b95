package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/fastygo/dashboard/api/handler"
	"github.com/fastygo/dashboard/internal/config"
	"github.com/fastygo/dashboard/internal/infrastructure/kv"
	"github.com/fastygo/dashboard/internal/infrastructure/monitor"
	mongoInfra "github.com/fastygo/dashboard/internal/infrastructure/mongo"
	pgInfra "github.com/fastygo/dashboard/internal/infrastructure/postgres"
	redisInfra "github.com/fastygo/dashboard/internal/infrastructure/redis"
	"github.com/fastygo/dashboard/internal/middleware"
	"github.com/fastygo/dashboard/internal/router"
	"github.com/fastygo/dashboard/internal/services"
	"github.com/fastygo/dashboard/internal/services/lifecycle"
	"github.com/fastygo/dashboard/pkg/httpcontext"
	"github.com/fastygo/dashboard/pkg/logger"
	"github.com/fastygo/dashboard/repository"
	boltRepo "github.com/fastygo/dashboard/repository/bolt"
	"github.com/fastygo/dashboard/repository/memory"
	mongoRepo "github.com/fastygo/dashboard/repository/mongo"
	pgRepo "github.com/fastygo/dashboard/repository/postgres"
	"github.com/fastygo/dashboard/repository/records"
	redisRepo "github.com/fastygo/dashboard/repository/redis"
	"github.com/fastygo/dashboard/usecase/dashboard"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		AppName:     cfg.AppName,
		Environment: cfg.Environment,
		Level:       cfg.Logger.Level,
		Encoding:    cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	loc, err := cfg.Location()
	if err != nil {
		zapLogger.Fatal("invalid DASHBOARD_TIMEZONE", zap.String("timezone", cfg.Dashboard.Timezone), zap.Error(err))
	}

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	recordStore, err := openRecordStore(appCtx, cfg, manager, zapLogger)
	if err != nil {
		zapLogger.Fatal("storage unavailable", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}

	store := dashboard.New(records.NewDashboardRepository(recordStore), zapLogger, dashboard.Config{
		Location:    loc,
		StatsPeriod: cfg.Dashboard.StatsPeriod,
	})
	if err := store.Load(appCtx); err != nil {
		zapLogger.Fatal("failed to load dashboard data", zap.Error(err))
	}
	manager.Register("dashboard_store", func(ctx context.Context) error {
		return store.Persist(ctx)
	})

	mon := monitor.New(recordStore, cfg.Storage.Driver, store, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	flusher := services.NewFlusher(store, mon, zapLogger, services.FlusherConfig{
		Interval: cfg.Storage.FlushInterval,
	})
	flusher.Start()
	manager.Register("flusher", func(ctx context.Context) error {
		flusher.Stop(ctx)
		return nil
	})

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Booking:   apiHandler.NewBookingHandler(store, ctxAdapter, zapLogger),
		Employee:  apiHandler.NewEmployeeHandler(store, ctxAdapter, zapLogger),
		Analytics: apiHandler.NewAnalyticsHandler(store, ctxAdapter, zapLogger),
		Report:    apiHandler.NewReportHandler(store, ctxAdapter, zapLogger),
		Health:    apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	r := router.New(handlers)
	cors := middleware.CORS(cfg.HTTP.AllowOrigins)

	server := &fasthttp.Server{
		Handler:      cors(r.Handler),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Concurrency:  cfg.HTTP.MaxConn,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started",
			zap.String("address", cfg.Address()),
			zap.String("storage", cfg.Storage.Driver))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.ShutdownWithContext(ctx)
	})

	if err := manager.Wait(appCtx); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}

// openRecordStore connects the configured driver and registers its shutdown hook.
func openRecordStore(ctx context.Context, cfg *config.Config, manager *lifecycle.Manager, zapLogger *zap.Logger) (repository.RecordStore, error) {
	switch cfg.Storage.Driver {
	case config.DriverRedis:
		client, err := redisInfra.NewClient(ctx, cfg.Redis, zapLogger)
		if err != nil {
			return nil, err
		}
		manager.Register("redis", func(ctx context.Context) error {
			return client.Close()
		})
		return redisRepo.NewRecordRepository(client, cfg.Redis.Prefix), nil

	case config.DriverPostgres:
		if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
			return nil, err
		}
		pool, err := pgInfra.NewPool(ctx, cfg.Database, zapLogger)
		if err != nil {
			return nil, err
		}
		manager.Register("postgres", func(ctx context.Context) error {
			pgInfra.Close(pool, zapLogger)
			return nil
		})
		return pgRepo.NewRecordRepository(pool), nil

	case config.DriverMongo:
		client, err := mongoInfra.NewClient(ctx, cfg.Mongo, zapLogger)
		if err != nil {
			return nil, err
		}
		manager.Register("mongo", client.Close)
		return mongoRepo.NewRecordRepository(client.Database(), cfg.Mongo.Collection), nil

	case config.DriverMemory:
		zapLogger.Warn("memory storage selected, changes are lost on restart")
		return memory.NewRecordStore(), nil

	default:
		kvStore, err := kv.Open(cfg.Storage.BoltPath, cfg.Storage.BoltBucket)
		if err != nil {
			return nil, err
		}
		zapLogger.Info("opened bolt store", zap.String("path", kvStore.Path()))
		manager.Register("bolt", func(ctx context.Context) error {
			return kvStore.Close()
		})
		return boltRepo.NewRecordRepository(kvStore), nil
	}
}
