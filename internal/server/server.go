package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DjordjeVuckovic/hydro-api/internal/apperr"
	mw "github.com/DjordjeVuckovic/hydro-api/pkg/middleware"
	pkgserver "github.com/DjordjeVuckovic/hydro-api/pkg/server"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	GracefulShutdownTimeout = 10 * time.Second
)

type Server struct {
	Echo *echo.Echo

	cfg      *Config
	checkers []pkgserver.HealthChecker

	ctx      context.Context
	stop     context.CancelFunc
	shutdown chan struct{}
}

type healthStatus struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func New(cfg *Config, checkers ...pkgserver.HealthChecker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.DisableHTTP2 = !cfg.UseHttp2

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	return &Server{
		Echo:     e,
		cfg:      cfg,
		checkers: checkers,
		ctx:      ctx,
		stop:     stop,
		shutdown: make(chan struct{}),
	}
}

// Context is cancelled when the process receives an interrupt.
func (s *Server) Context() context.Context {
	return s.ctx
}

// ShutdownSignal is closed once the server has stopped accepting requests.
func (s *Server) ShutdownSignal() <-chan struct{} {
	return s.shutdown
}

// AddHealthCheckers registers checkers reported by the health endpoint.
func (s *Server) AddHealthCheckers(checkers ...pkgserver.HealthChecker) *Server {
	s.checkers = append(s.checkers, checkers...)
	return s
}

func (s *Server) SetupMiddlewares() *Server {
	s.Echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	s.Echo.Use(mw.Logger())
	s.Echo.Use(middleware.Recover())
	s.Echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.cfg.CorsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodPatch, http.MethodDelete},
	}))
	return s
}

func (s *Server) SetupErrorHandler() *Server {
	s.Echo.HTTPErrorHandler = apperr.GlobalErrorHandler()
	return s
}

func (s *Server) SetupHealthChecks(path string) *Server {
	s.Echo.GET(path, func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), s.cfg.HealthTimeout)
		defer cancel()

		status := healthStatus{Status: "ok", Checks: make(map[string]string, len(s.checkers))}
		for _, hc := range s.checkers {
			if hc.Healthy(ctx) {
				status.Checks[hc.Name()] = "ok"
				continue
			}
			status.Status = "unavailable"
			status.Checks[hc.Name()] = "unavailable"
		}

		if status.Status != "ok" {
			return c.JSON(http.StatusServiceUnavailable, status)
		}
		return c.JSON(http.StatusOK, status)
	})
	return s
}

func (s *Server) SetupOpenApi(path string) *Server {
	s.Echo.GET(path, echoSwagger.WrapHandler)
	return s
}

func (s *Server) Start() error {
	defer s.stop()

	errCh := make(chan error, 1)
	go func() {
		if err := s.Echo.Start(":" + s.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		close(s.shutdown)
		return err
	case <-s.ctx.Done():
	}

	slog.Info("Shutting down the server")
	close(s.shutdown)

	ctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
	defer cancel()

	if err := s.Echo.Shutdown(ctx); err != nil {
		slog.Error("Failed to shut down the server", "error", err)
		return err
	}
	return nil
}
