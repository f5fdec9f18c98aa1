package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hellotutor/internal/adapter/inbound/api"
	"hellotutor/internal/application/common/logging"
	"hellotutor/internal/application/recovery"
	"hellotutor/internal/application/service"
	"hellotutor/internal/config"
	"hellotutor/internal/domain/failure"
	"hellotutor/internal/version"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

// ServiceFactory creates and wires the service instances for the server.
type ServiceFactory struct {
	config *config.Config
	logger logging.Logger
}

// NewServiceFactory creates a new ServiceFactory.
func NewServiceFactory(cfg *config.Config, logger logging.Logger) *ServiceFactory {
	return &ServiceFactory{
		config: cfg,
		logger: logger,
	}
}

// CreateErrorFactory creates the shared error factory with its classifier.
func (sf *ServiceFactory) CreateErrorFactory() *failure.Factory {
	classifier := failure.NewClassifier(sf.logger)
	return failure.NewFactory(classifier, sf.logger,
		failure.WithVerboseCreation(sf.config.Diagnostics.VerboseErrorCreation))
}

// CreateErrorHandler creates an error handler instance.
func (sf *ServiceFactory) CreateErrorHandler(factory *failure.Factory) api.ErrorHandler {
	return api.NewDefaultErrorHandler(factory, sf.logger, api.FormatOptions{
		Educational: sf.config.Diagnostics.EducationalEnabled(),
		Environment: sf.config.Diagnostics.Environment,
	})
}

// CreateCoordinator creates the process recovery coordinator.
func (sf *ServiceFactory) CreateCoordinator(factory *failure.Factory) *recovery.Coordinator {
	return recovery.NewCoordinator(factory, sf.logger,
		recovery.WithGraceDelay(sf.config.Diagnostics.ExitGraceDelay))
}

// CreateServer creates a fully configured server instance.
func (sf *ServiceFactory) CreateServer(factory *failure.Factory) *api.Server {
	errorHandler := sf.CreateErrorHandler(factory)

	greetingService := service.NewGreetingService(factory, sf.logger)
	healthService := service.NewHealthService(version.Get().Version)

	helloHandler := api.NewHelloHandler(greetingService, errorHandler, sf.logger)
	healthHandler := api.NewHealthHandler(healthService, errorHandler)

	routes := api.NewRouteRegistry()
	routes.RegisterAPIRoutes(helloHandler, healthHandler)

	handler := routes.Handler()
	if sf.shouldEnableDefaultMiddleware() {
		handler = api.Chain(handler,
			api.NewRecoveryMiddleware(errorHandler, sf.logger),
			api.NewLoggingMiddleware(sf.logger),
		)
	}

	return api.NewServer(sf.config, handler, sf.logger)
}

// shouldEnableDefaultMiddleware determines if default middleware should be enabled.
func (sf *ServiceFactory) shouldEnableDefaultMiddleware() bool {
	if sf.config.API.EnableDefaultMiddleware == nil {
		return true
	}
	return *sf.config.API.EnableDefaultMiddleware
}

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP greeting server",
	Long: `Start the HTTP server that provides the tutorial greeting endpoints.

The server provides endpoints for:
- GET /hello and GET /hello/{name}
- GET /health

Configuration is loaded from config files and environment variables.`,
	Run: runServer,
}

func runServer(_ *cobra.Command, _ []string) {
	cfg := GetConfig()

	logger, err := buildLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	logger = logger.WithComponent("serve")

	// Metrics pipeline for the logging instruments.
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(resource.NewSchemaless(
			attribute.String("service.name", "hellotutor"),
			attribute.String("service.version", version.Get().Version),
		)),
	)
	otel.SetMeterProvider(meterProvider)

	logger.StartTimer("bootstrap")

	factoryBuilder := NewServiceFactory(cfg, logger)
	errorFactory := factoryBuilder.CreateErrorFactory()
	coordinator := factoryBuilder.CreateCoordinator(errorFactory)
	server := factoryBuilder.CreateServer(errorFactory)

	bootstrapDuration := logger.EndTimer("bootstrap")
	logger.LogPerformance(context.Background(), "bootstrap", bootstrapDuration, nil)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting server", logging.Fields{
		"addr":        cfg.API.Addr(),
		"environment": cfg.Diagnostics.Environment,
		"version":     version.Get().Version,
	})

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return server.Start(groupCtx)
	})

	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logger.Info(shutdownCtx, "Shutting down server", nil)
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		coordinator.HandleProcessError(context.Background(), err, logging.Fields{
			"operation": "serve",
		})
	}

	if err := meterProvider.Shutdown(context.Background()); err != nil {
		logger.Warn(context.Background(), "Metrics shutdown failed", logging.Fields{
			"error": err.Error(),
		})
	}

	logger.Info(context.Background(), "Server stopped", nil)
}

func buildLogger(cfg *config.Config) (logging.Logger, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	return logging.New(logging.Config{
		Level:          level,
		Format:         cfg.Log.Format,
		TutorialPrefix: cfg.Log.TutorialPrefix,
	})
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
