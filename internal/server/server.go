package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"bank-statement-generator/internal/config"
	"bank-statement-generator/internal/handlers"
	"bank-statement-generator/internal/middleware"
	"bank-statement-generator/internal/services"
	"bank-statement-generator/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server is the HTTP API around the statement generator
type Server struct {
	cfg         *config.Config
	echo        *echo.Echo
	health      *handlers.HealthCheckHandler
	rateLimiter *middleware.RateLimiter
}

// New builds the echo instance and registers all routes.
// A nil gatherer serves the default Prometheus registry on /metrics.
func New(
	cfg *config.Config,
	statementService services.StatementServiceInterface,
	exportService services.ExportServiceInterface,
	gatherer prometheus.Gatherer,
) *Server {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validation.GetValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	s := &Server{
		cfg:    cfg,
		echo:   e,
		health: handlers.NewHealthCheckHandler(),
		rateLimiter: middleware.NewRateLimiter(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}),
	}

	e.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.PanicRecovery(),
		middleware.Metrics(),
		middleware.SecurityHeaders(cfg.IsProduction()),
		middleware.CORS(cfg.Server.CORSAllowOrigins),
	)

	e.GET("/health", s.health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	statementHandler := handlers.NewStatementHandler(statementService, exportService)
	api := e.Group("/api/v1", s.rateLimiter.Middleware())
	api.POST("/statements/generate", statementHandler.GenerateStatements)
	api.POST("/statements/export/:format", statementHandler.ExportStatements)
	api.GET("/statements/defaults", statementHandler.GetDefaultAccounts)

	return s
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then drains and shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	address := s.cfg.Server.Address()

	limiterCtx, stopLimiter := context.WithCancel(ctx)
	defer stopLimiter()
	go s.rateLimiter.Run(limiterCtx)

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "address", address, "environment", s.cfg.Server.Environment)
		if err := s.echo.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.health.Drain()
	slog.Info("server shutting down", "timeout", s.cfg.Server.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
