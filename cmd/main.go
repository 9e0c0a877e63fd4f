package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	cartapp "github.com/muhammadheryan/marketplace/application/cart"
	catalogapp "github.com/muhammadheryan/marketplace/application/catalog"
	deliveryapp "github.com/muhammadheryan/marketplace/application/delivery"
	invoiceapp "github.com/muhammadheryan/marketplace/application/invoice"
	notificationapp "github.com/muhammadheryan/marketplace/application/notification"
	orderapp "github.com/muhammadheryan/marketplace/application/order"
	userapp "github.com/muhammadheryan/marketplace/application/user"
	"github.com/muhammadheryan/marketplace/cmd/config"
	"github.com/muhammadheryan/marketplace/cmd/database"
	redisclient "github.com/muhammadheryan/marketplace/cmd/redis"
	_ "github.com/muhammadheryan/marketplace/docs"
	cartrepo "github.com/muhammadheryan/marketplace/repository/cart"
	deliveryrepo "github.com/muhammadheryan/marketplace/repository/delivery"
	invoicerepo "github.com/muhammadheryan/marketplace/repository/invoice"
	notificationrepo "github.com/muhammadheryan/marketplace/repository/notification"
	orderrepo "github.com/muhammadheryan/marketplace/repository/order"
	productrepo "github.com/muhammadheryan/marketplace/repository/product"
	ratelimitrepo "github.com/muhammadheryan/marketplace/repository/ratelimit"
	redisrepo "github.com/muhammadheryan/marketplace/repository/redis"
	stockrepo "github.com/muhammadheryan/marketplace/repository/stock"
	txrepo "github.com/muhammadheryan/marketplace/repository/tx"
	userrepo "github.com/muhammadheryan/marketplace/repository/user"
	"github.com/muhammadheryan/marketplace/thirdparty/rabbitmq"
	"github.com/muhammadheryan/marketplace/transport"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"github.com/muhammadheryan/marketplace/utils/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// @title Marketplace API
// @version 1.0
// @description Multi-vendor marketplace with per-seller invoices and delivery confirmation.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app := &cli.App{
		Name:  "marketplace",
		Usage: "multi-vendor marketplace backend",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: serve,
			},
			{
				Name:      "migrate",
				Usage:     "apply database migrations",
				ArgsUsage: "[up|down|status|version|redo|reset]",
				Action:    migrate,
			},
			{
				Name:   "notifier",
				Usage:  "consume notification events and store them through the internal API",
				Action: notifier,
			},
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads configuration and initializes the global logger.
func setup() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, nil
}

func serve(c *cli.Context) (err error) {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	db, err := database.Open(ctx, cfg)
	if err != nil {
		logger.Error("err connect db", zap.Error(err))
		return err
	}
	defer func() { err = multierr.Append(err, db.Close()) }()

	redisClient, err := redisclient.New(ctx, cfg)
	if err != nil {
		logger.Error("err connect redis", zap.Error(err))
		return err
	}
	defer func() { err = multierr.Append(err, redisClient.Close()) }()

	// Notifications and OTP delivery degrade to log-only when the broker is down.
	var publisher rabbitmq.MessagePublisher
	if p, perr := rabbitmq.NewPublisher(cfg.GetAMQPURL()); perr != nil {
		logger.Warn("rabbitmq unavailable, events will only be logged", zap.Error(perr))
	} else {
		publisher = p
		defer func() { err = multierr.Append(err, p.Close()) }()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	// Initialize repositories
	txRepo := txrepo.NewTxRepository(db)
	userRepo := userrepo.NewUserRepository(db)
	productRepo := productrepo.NewProductRepository(db)
	stockRepo := stockrepo.NewStockRepository(db)
	cartRepo := cartrepo.NewCartRepository(db)
	orderRepo := orderrepo.NewOrderRepository(db)
	invoiceRepo := invoicerepo.NewInvoiceRepository(db)
	deliveryRepo := deliveryrepo.NewDeliveryRepository(db)
	notificationRepo := notificationrepo.NewNotificationRepository(db)
	redisRepo := redisrepo.NewRepository(redisClient)
	limiter := ratelimitrepo.NewRateLimiter(redisRepo)

	// Initialize application layers
	notify := notificationapp.NewNotifier(publisher)
	handler := transport.NewTransport(&transport.RestHandler{
		UserApp:         userapp.NewUserApp(cfg, txRepo, userRepo, redisRepo, limiter, publisher),
		CatalogApp:      catalogapp.NewCatalogApp(txRepo, productRepo, stockRepo, notify),
		CartApp:         cartapp.NewCartApp(txRepo, cartRepo, productRepo),
		OrderApp:        orderapp.NewOrderApp(cfg, txRepo, cartRepo, stockRepo, orderRepo, invoiceRepo, deliveryRepo, notify, m),
		InvoiceApp:      invoiceapp.NewInvoiceApp(txRepo, invoiceRepo, deliveryRepo, orderRepo, notify),
		DeliveryApp:     deliveryapp.NewDeliveryApp(txRepo, deliveryRepo, invoiceRepo, orderRepo, notify, m),
		NotificationApp: notificationapp.NewNotificationApp(notificationRepo),
		HealthChecks: map[string]transport.HealthCheck{
			"mysql": db.PingContext,
			"redis": redisRepo.Ping,
		},
	}, transport.Options{
		Metrics:        m,
		Gatherer:       registry,
		InternalAPIKey: cfg.Internal.APIKey,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("failed server", zap.Error(err))
		return err
	}
	return nil
}

func migrate(c *cli.Context) (err error) {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	command := "up"
	var args []string
	if c.NArg() > 0 {
		command = c.Args().First()
		args = c.Args().Tail()
	}

	db, err := database.Open(c.Context, cfg)
	if err != nil {
		logger.Error("err connect db", zap.Error(err))
		return err
	}
	defer func() { err = multierr.Append(err, db.Close()) }()

	logger.Info("Running migrations", zap.String("command", command))
	return database.Migrate(c.Context, db, command, args...)
}

func notifier(c *cli.Context) (err error) {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer, err := rabbitmq.NewConsumer(cfg.GetAMQPURL(), cfg.RabbitMQ.APIURL, cfg.Internal.APIKey)
	if err != nil {
		logger.Error("err connect rabbitmq", zap.Error(err))
		return err
	}
	defer func() { err = multierr.Append(err, consumer.Close()) }()

	logger.Info("Notifier running", zap.String("api_url", cfg.RabbitMQ.APIURL))
	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
