// Package api exposes the HTTP surface: parsing, intent dispatch, momentum
// reads and recomputes, trend summaries, and settings.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"momentum/internal/coach"
	"momentum/internal/intent"
	"momentum/internal/momentum"
	"momentum/internal/router"
	"momentum/internal/store"
	"momentum/internal/trend"
)

// #region server

// Config holds the listener settings.
type Config struct {
	Host string
	Port int
}

// Server wires the application packages behind echo handlers.
type Server struct {
	echo   *echo.Echo
	store  *store.Store
	engine *momentum.Engine
	router *router.Router
	trend  *trend.Reporter
	coach  *coach.Coach
	logger *zap.Logger
	config Config
}

// NewServer builds the HTTP server. The logger is required; handlers log
// request outcomes through it.
func NewServer(s *store.Store, engine *momentum.Engine, rt *router.Router,
	reporter *trend.Reporter, c *coach.Coach, logger *zap.Logger, cfg Config) (*Server, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ec echo.Context) error {
			start := time.Now()
			err := next(ec)
			logger.Info("http request",
				zap.String("method", ec.Request().Method),
				zap.String("uri", ec.Request().RequestURI),
				zap.Int("status", ec.Response().Status),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", ec.Response().Header().Get(echo.HeaderXRequestID)),
			)
			return err
		}
	})

	srv := &Server{
		echo: e, store: s, engine: engine, router: rt,
		trend: reporter, coach: c, logger: logger, config: cfg,
	}
	srv.registerRoutes()
	return srv, nil
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)

	v1 := s.echo.Group("/api/v1")
	v1.POST("/parse", s.handleParse)
	v1.POST("/intents", s.handleIntent)
	v1.GET("/momentum/:date", s.handleGetMomentum)
	v1.POST("/momentum/:date/recompute", s.handleRecompute)
	v1.GET("/momentum/:date/weakest", s.handleWeakest)
	v1.GET("/momentum/:date/digest", s.handleDigest)
	v1.GET("/trend/weekly", s.handleWeeklyTrend)
	v1.GET("/settings", s.handleGetSettings)
	v1.PUT("/settings", s.handlePutSettings)
}

// Start begins serving. Blocks until the listener closes.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.logger.Info("starting http server", zap.String("addr", addr))
	return s.echo.Start(addr)
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}

// ServeHTTP lets tests drive the server without a listener.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// #endregion

// #region bodies

// IntentRequest is the body for POST /api/v1/parse and POST /api/v1/intents.
type IntentRequest struct {
	Text      string `json:"text"`
	Date      string `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
	Confirmed bool   `json:"confirmed,omitempty"`
}

// IntentResponse is the body for POST /api/v1/intents.
type IntentResponse struct {
	Intent intent.Intent `json:"intent"`
	Result router.Result `json:"result"`
}

// WeakestResponse is the body for GET /api/v1/momentum/:date/weakest.
type WeakestResponse struct {
	Date     string            `json:"date"`
	Category momentum.Category `json:"category"`
	Score    int               `json:"score"`
}

// DigestResponse is the body for GET /api/v1/momentum/:date/digest.
type DigestResponse struct {
	Date   string `json:"date"`
	Digest string `json:"digest"`
}

// HealthResponse is the body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// #endregion

// #region handlers

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// handleParse classifies without persisting anything.
func (s *Server) handleParse(c echo.Context) error {
	var req IntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text field is required")
	}
	return c.JSON(http.StatusOK, intent.Parse(req.Text))
}

// handleIntent parses, dispatches through the confirmation gate, and returns
// both the classification and the routing outcome.
func (s *Server) handleIntent(c echo.Context) error {
	var req IntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text field is required")
	}
	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if err := validDate(date); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	it := intent.Parse(req.Text)
	res, err := s.router.Dispatch(c.Request().Context(), date, it, req.Confirmed)
	if err != nil {
		s.logger.Error("dispatch failed", zap.String("domain", string(it.Domain)), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "dispatch failed")
	}
	return c.JSON(http.StatusOK, IntentResponse{Intent: it, Result: res})
}

func (s *Server) handleGetMomentum(c echo.Context) error {
	date := c.Param("date")
	if err := validDate(date); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	snap, found, err := s.store.GetSnapshot(c.Request().Context(), date)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "snapshot read failed")
	}
	if !found {
		return echo.NewHTTPError(http.StatusNotFound, "no snapshot for date")
	}
	return c.JSON(http.StatusOK, snap)
}

func (s *Server) handleRecompute(c echo.Context) error {
	date := c.Param("date")
	if err := validDate(date); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	snap, err := s.engine.Compute(c.Request().Context(), date)
	if err != nil {
		s.logger.Error("recompute failed", zap.String("date", date), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "recompute failed")
	}
	return c.JSON(http.StatusOK, snap)
}

func (s *Server) handleWeakest(c echo.Context) error {
	date := c.Param("date")
	if err := validDate(date); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	snap, found, err := s.store.GetSnapshot(c.Request().Context(), date)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "snapshot read failed")
	}
	if !found {
		return echo.NewHTTPError(http.StatusNotFound, "no snapshot for date")
	}
	cat := momentum.WeakestLink(snap.Breakdown)
	return c.JSON(http.StatusOK, WeakestResponse{
		Date: date, Category: cat, Score: snap.Breakdown.Value(cat),
	})
}

func (s *Server) handleDigest(c echo.Context) error {
	date := c.Param("date")
	if err := validDate(date); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	snap, found, err := s.store.GetSnapshot(ctx, date)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "snapshot read failed")
	}
	if !found {
		return echo.NewHTTPError(http.StatusNotFound, "no snapshot for date")
	}
	sum, err := s.trend.Weekly(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "trend read failed")
	}
	return c.JSON(http.StatusOK, DigestResponse{
		Date: date, Digest: s.coach.Digest(ctx, snap, sum),
	})
}

func (s *Server) handleWeeklyTrend(c echo.Context) error {
	sum, err := s.trend.Weekly(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "trend read failed")
	}
	return c.JSON(http.StatusOK, sum)
}

func (s *Server) handleGetSettings(c echo.Context) error {
	settings, err := s.store.Settings(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "settings read failed")
	}
	return c.JSON(http.StatusOK, settings)
}

func (s *Server) handlePutSettings(c echo.Context) error {
	var settings momentum.Settings
	if err := c.Bind(&settings); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid settings body")
	}
	if err := s.store.SaveSettings(c.Request().Context(), settings); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "settings write failed")
	}
	return c.JSON(http.StatusOK, settings)
}

// #endregion

// #region helpers

func validDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD")
	}
	return nil
}

// #endregion
