// Package server assembles the application: configuration, database,
// cache, storage, queue workers, scheduler, event listeners and the
// HTTP route table, then runs the listener until shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/controllers"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/gateway"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/graph"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/jobs"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/models"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/repositories"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/routes"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/services"
	"github.com/sengaryogesh394-ai/digiaddaworld/config"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/cache"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/database"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/event"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/logger"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/metrics"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/middleware"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/queue"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/reqid"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/router"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/schedule"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/storage"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/workerpool"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/ws"
)

const (
	queueWorkers    = 4
	aiPoolSize      = 2
	aiPoolQueue     = 8
	pendingSaleAge  = 24 * time.Hour
	sweepInterval   = 15 * time.Minute
	shutdownTimeout = 10 * time.Second
)

// Start boots everything and blocks until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("server: load config: %w", err)
	}

	setupAuditLog()

	if err := database.Connect(); err != nil {
		return fmt.Errorf("server: database: %w", err)
	}
	if err := cache.Connect(); err != nil {
		logger.Warn("server: redis unavailable, caching disabled", "error", err)
	}
	setupStorage()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Background machinery.
	jobs.Register()
	queue.UseDB(database.DB)
	if cache.RDB != nil {
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
	}
	queue.StartWorkers(ctx, queueWorkers)

	pool := workerpool.New(aiPoolSize, aiPoolQueue)
	defer pool.Close()

	hub := ws.NewHub()

	ctrl, stats, payments, err := buildControllers(pool, hub)
	if err != nil {
		return err
	}

	wireListeners(hub)
	startScheduler(ctx, stats, payments)

	// HTTP surface.
	r := router.New()
	r.Use(
		metrics.Middleware(),
		reqid.Middleware(),
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(300, time.Minute),
	)
	routes.Register(r, ctrl)
	r.HandleFunc("/metrics", metrics.Handler())
	mountLocalStorage(r)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server: listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("server: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// RouteTable builds the route table without starting anything, for the
// route:list command.
func RouteTable() ([]router.RouteInfo, error) {
	pool := workerpool.New(1, 1)
	defer pool.Close()

	ctrl, _, _, err := buildControllers(pool, ws.NewHub())
	if err != nil {
		return nil, err
	}

	r := router.New()
	routes.Register(r, ctrl)
	return r.Routes(), nil
}

// buildControllers wires repositories, services and controllers.
func buildControllers(pool *workerpool.Pool, hub *ws.Hub) (routes.Controllers, *services.StatsService, *services.PaymentService, error) {
	db := database.DB

	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	blogRepo := repositories.NewBlogRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	saleRepo := repositories.NewSaleRepository(db)

	var payGW services.PaymentGateway
	if gw, err := gateway.NewClient(); err != nil {
		logger.Warn("server: payment gateway disabled", "error", err)
	} else {
		payGW = gw
	}

	var aiGW services.AIGateway
	if ai, err := gateway.NewAIClient(); err != nil {
		logger.Warn("server: generative AI disabled", "error", err)
	} else {
		aiGW = ai
	}

	authSvc := services.NewAuthService(userRepo)
	userSvc := services.NewUserService(userRepo)
	productSvc := services.NewProductService(productRepo)
	blogSvc := services.NewBlogService(blogRepo)
	orderSvc := services.NewOrderService(orderRepo, productRepo)
	paymentSvc := services.NewPaymentService(saleRepo, productRepo, payGW)
	statsSvc := services.NewStatsService(userRepo, productRepo, orderRepo, blogRepo, saleRepo)
	aiSvc := services.NewAIService(aiGW, pool, productSvc)

	schema, err := graph.NewSchema(productSvc, blogSvc)
	if err != nil {
		return routes.Controllers{}, nil, nil, fmt.Errorf("server: graphql schema: %w", err)
	}

	return routes.Controllers{
		Auth:     controllers.NewAuthController(authSvc),
		Products: controllers.NewProductController(productSvc),
		Blogs:    controllers.NewBlogController(blogSvc),
		Orders:   controllers.NewOrderController(orderSvc),
		Payments: controllers.NewPaymentController(paymentSvc),
		Users:    controllers.NewUserController(userSvc),
		Stats:    controllers.NewStatsController(statsSvc),
		AI:       controllers.NewAIController(aiSvc),
		Media:    controllers.NewMediaController(),
		Hub:      hub,
		Schema:   schema,
	}, statsSvc, paymentSvc, nil
}

// wireListeners connects domain events to the admin live feed and the
// confirmation mail job.
func wireListeners(hub *ws.Hub) {
	event.Listen(services.EventOrderCreated, func(payload interface{}) {
		hub.Broadcast(services.EventOrderCreated, payload)
	})
	event.Listen(services.EventOrderStatusChanged, func(payload interface{}) {
		hub.Broadcast(services.EventOrderStatusChanged, payload)
	})
	event.Listen(services.EventPaymentSucceeded, func(payload interface{}) {
		hub.Broadcast(services.EventPaymentSucceeded, payload)
		if sale, ok := payload.(*models.Sale); ok {
			if err := queue.Dispatch(jobs.ConfirmationMailJob{SaleID: sale.ID}); err != nil {
				logger.Error("server: queue confirmation mail", "sale_id", sale.ID, "error", err)
			}
		}
	})
}

// startScheduler runs the daily stats snapshot and the orphaned
// pending-sale sweep. The sweep observes and reports only.
func startScheduler(ctx context.Context, stats *services.StatsService, payments *services.PaymentService) {
	s := schedule.New()
	s.Daily("stats-snapshot", func(context.Context) error {
		return stats.Refresh()
	})
	s.Every(sweepInterval, "pending-sale-sweep", func(context.Context) error {
		_, err := payments.SweepPending(pendingSaleAge)
		return err
	})
	s.Start(ctx)
}

// setupAuditLog fans log records out to MongoDB when a sink is
// configured.
func setupAuditLog() {
	uri := config.MongoLogURI()
	if uri == "" {
		return
	}
	h, err := logger.NewMongoHandler(uri, config.MongoLogDatabase(), config.MongoLogCollection())
	if err != nil {
		logger.Warn("server: mongo audit sink unavailable", "error", err)
		return
	}
	logger.UseHandler(logger.NewMultiHandler(logger.L.Handler(), h))
}

// setupStorage registers the local disk and, when a bucket is
// configured, the S3 disk, then selects the default.
func setupStorage() {
	local, err := storage.NewLocalDisk(config.StorageLocalRoot(), config.StorageURL())
	if err != nil {
		logger.Error("server: local storage", "error", err)
	} else {
		storage.RegisterDisk("local", local)
	}

	if config.StorageS3Bucket() != "" {
		s3Disk, err := storage.NewS3Disk(context.Background(), storage.S3Config{
			Region:    config.StorageS3Region(),
			Bucket:    config.StorageS3Bucket(),
			AccessKey: config.StorageS3Key(),
			SecretKey: config.StorageS3Secret(),
			Endpoint:  config.StorageS3Endpoint(),
			PublicURL: config.StorageS3URL(),
		})
		if err != nil {
			logger.Error("server: s3 storage", "error", err)
		} else {
			storage.RegisterDisk("s3", s3Disk)
		}
	}

	if err := storage.SetDefault(config.StorageDefault()); err != nil {
		logger.Warn("server: storage default", "error", err)
	}
}

// mountLocalStorage serves the local disk publicly under /storage/.
func mountLocalStorage(r *router.Router) {
	disk, err := storage.DiskByName("local")
	if err != nil {
		return
	}
	local, ok := disk.(*storage.LocalDisk)
	if !ok {
		return
	}
	fs := http.StripPrefix("/storage/", http.FileServer(http.Dir(local.Root())))
	r.HandleFunc("/storage/*", fs.ServeHTTP)
}
