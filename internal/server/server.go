package server

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/cloud-ru/loan-calculator-go/internal/config"
	"github.com/cloud-ru/loan-calculator-go/internal/logging"
	"github.com/cloud-ru/loan-calculator-go/internal/tools"
)

// New собирает HTTP сервер с API кредитного калькулятора
func New(cfg *config.Config, registry map[string]tools.ToolHandler, logger *zap.Logger) *echo.Echo {
	logger = logging.OrNop(logger)
	h := &handler{tools: registry, logger: logger}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())
	if cfg != nil && cfg.MaxBodySize != "" {
		e.Use(middleware.BodyLimit(cfg.MaxBodySize))
	}

	e.GET("/health", h.health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/loan")
	api.GET("", h.docs)
	api.POST("", h.tool(tools.ToolLoanCalculate))
	api.POST("/validate", h.tool(tools.ToolLoanValidate))
	api.POST("/overpayment", h.tool(tools.ToolLoanOverpayment))
	api.POST("/compare", h.tool(tools.ToolCompareLoans))
	api.POST("/schedule.csv", h.scheduleCSV)

	return e
}

// requestLogger пишет каждый запрос в zap
func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				logger.Error("request failed", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Info("request", fields...)
			return nil
		},
	})
}
