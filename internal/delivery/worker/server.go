// Package worker provides the kitchen display delivery: a headless echo
// server that keeps the live-queue poller running and serves the board.
package worker

import (
	"context"
	"log/slog"
	"net"
	"strconv"

	"crave/config"
	"crave/internal/delivery"
	"crave/internal/delivery/middleware"
	"crave/internal/delivery/worker/handler"
	"crave/internal/domain/lifecycle"
	"crave/internal/usecase"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
	queue  usecase.QueueUsecase
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Queue        usecase.QueueUsecase
	BoardHandler *handler.BoardHandler
}

// NewServer creates the kitchen display server
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true

	// Set up middleware in correct order
	// 1. Recover middleware first (to catch panics early)
	e.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	e.Use(requestIDMiddleware.Process)

	// 3. Logger middleware
	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	e.Use(loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// Board endpoints
	e.GET("/board", params.BoardHandler.Board)
	e.POST("/board/refresh", params.BoardHandler.Refresh)
	e.POST("/board/orders/:id/advance", params.BoardHandler.Advance)

	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
		queue:  params.Queue,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve starts the queue poller, then the board HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	if err := s.queue.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start queue poller")
	}

	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting kitchen display server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// stop gracefully shuts down the poller and the server
func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down kitchen display server")
	s.queue.Stop()

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
