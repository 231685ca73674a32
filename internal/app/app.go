package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"schedule-service/internal/config"
	"schedule-service/internal/db"
	"schedule-service/internal/events"
	"schedule-service/internal/logger"
	"schedule-service/internal/schema"
	"schedule-service/internal/telemetry"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
)

type App struct {
	config       *config.Config
	db           *bun.DB
	telemetry    *telemetry.Telemetry
	emitter      *events.Emitter
	server       *http.Server
	grpcServer   *grpc.Server
	healthServer *health.Server
	logger       *slog.Logger
}

func New(ctx context.Context) (*App, error) {
	slogLogger := logger.New(logger.Options{
		Service:     ServiceName,
		Version:     Version,
		Environment: os.Getenv("ENV"),
	})

	// Set as default logger so slog.Info() uses the same handler
	slog.SetDefault(slogLogger)

	slogLogger.Info("initializing application")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	slogLogger.Info("config loaded", "env", cfg.Env)

	tel, err := telemetry.Init(ctx, cfg.Telemetry, ServiceName, Version, slogLogger)
	if err != nil {
		return nil, err
	}

	database, err := db.New(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.RunMigrations(ctx, database, schema.Models()...); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := tel.Metrics.Database.RegisterDB(database.DB, otel.Meter(ServiceName)); err != nil {
		slogLogger.Warn("failed to register database pool metrics", "error", err)
	}

	publisher, err := events.NewPublisher(cfg.Events, slogLogger)
	if err != nil {
		// Events are best effort; the API keeps working without them.
		slogLogger.Warn("failed to initialize events publisher", "driver", cfg.Events.Driver, "error", err)
		publisher = events.Noop{}
	} else {
		slogLogger.Info("events publisher initialized", "driver", cfg.Events.Driver, "destination", publisher.Destination())
	}
	emitter := events.NewEmitter(publisher, slogLogger, tel.Metrics)

	router := NewRouter(database, tel.Metrics, emitter, cfg.Server.CORSOrigins, slogLogger)
	grpcServer, healthServer := newGrpcServer()

	app := &App{
		config:    cfg,
		db:        database,
		telemetry: tel,
		emitter:   emitter,
		server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
			WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
			IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		},
		grpcServer:   grpcServer,
		healthServer: healthServer,
		logger:       slogLogger,
	}

	slogLogger.Info("application initialized successfully")

	return app, nil
}

// Run serves HTTP and gRPC until one of them fails or Shutdown is called.
func (a *App) Run() error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%s", a.config.Grpc.Port))
	if err != nil {
		return fmt.Errorf("failed to listen on gRPC port: %w", err)
	}

	errCh := make(chan error, 2)

	go func() {
		a.logger.Info("gRPC server starting", "port", a.config.Grpc.Port)
		errCh <- a.grpcServer.Serve(lis)
	}()

	go func() {
		a.logger.Info("server starting", "port", a.config.Server.Port)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	return <-errCh
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("shutting down servers")

	a.healthServer.Shutdown()

	var errs []error
	if err := a.server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	a.grpcServer.GracefulStop()

	if err := a.emitter.Close(); err != nil {
		errs = append(errs, fmt.Errorf("events close: %w", err))
	}
	if err := a.telemetry.Shutdown(ctx, a.logger); err != nil {
		errs = append(errs, err)
	}
	db.Close(a.db)

	return errors.Join(errs...)
}
