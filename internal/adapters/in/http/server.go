// Package http exposes the use cases over a JSON REST API built on echo.
// Handlers translate requests into commands and queries, and translate
// domain errors into status codes in one place (see errors.go).
package http

import (
	"context"
	"log/slog"
	"net/http"

	_ "deliverysystem/internal/adapters/in/http/docs"
	"deliverysystem/internal/core/application/usecases/commands"
	"deliverysystem/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers groups every use case the API calls.
type Handlers struct {
	CreateCustomer       commands.CreateCustomerCommandHandler
	CreateCourier        commands.CreateCourierCommandHandler
	CreateOrder          commands.CreateOrderCommandHandler
	CloneOrder           commands.CloneOrderCommandHandler
	ChangeOrderStatus    commands.ChangeOrderStatusCommandHandler
	AssignCourier        commands.AssignCourierCommandHandler
	AutoAssignCourier    commands.AutoAssignCourierCommandHandler
	ChangeDeliveryStatus commands.ChangeDeliveryStatusCommandHandler
	UpdateSettings       commands.UpdateSettingsCommandHandler
	GetByID              queries.GetByIDQueryHandler
	GetAllCustomers      queries.GetAllCustomersQueryHandler
	GetAllCouriers       queries.GetAllCouriersQueryHandler
	FindAvailableCourier queries.FindAvailableCourierQueryHandler
	GetOrders            queries.GetOrdersQueryHandler
	GetUncompletedOrders queries.GetUncompletedOrdersQueryHandler
	GetDeliveries        queries.GetDeliveriesQueryHandler
	GetSettings          queries.GetSettingsQueryHandler
}

// Server implements the REST endpoints on top of the application handlers.
type Server struct {
	h      Handlers
	logger *slog.Logger
	echo   *echo.Echo
}

// NewServer builds the echo instance with validation, request logging,
// panic recovery and every route registered.
func NewServer(h Handlers, logger *slog.Logger) *Server {
	s := &Server{
		h:      h,
		logger: logger.With("component", "http"),
		echo:   echo.New(),
	}

	e := s.echo
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = s.handleError
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			switch {
			case v.Status >= http.StatusInternalServerError:
				level = slog.LevelError
			case v.Status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			s.logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	}))

	s.registerRoutes()
	return s
}

// Handler returns the root http.Handler, for httptest and custom listeners.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on address until Shutdown is called.
func (s *Server) Start(address string) error {
	s.logger.Info("starting HTTP server", "address", address)
	return s.echo.Start(address)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.Health)
	s.echo.GET("/swagger/*", echoSwagger.WrapHandler)

	api := s.echo.Group("/api")

	api.GET("/customers", s.GetCustomers)
	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers/:id", s.GetCustomer)
	api.GET("/customers/:id/orders", s.GetCustomerOrders)

	api.GET("/couriers", s.GetCouriers)
	api.POST("/couriers", s.CreateCourier)
	api.GET("/couriers/match", s.FindAvailableCourier)
	api.GET("/couriers/:id", s.GetCourier)
	api.GET("/couriers/:id/deliveries", s.GetCourierDeliveries)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/:id/deliveries", s.GetOrderDeliveries)
	api.POST("/orders/:id/clone", s.CloneOrder)
	api.POST("/orders/:id/:action", s.ChangeOrderStatus)

	api.GET("/deliveries", s.GetDeliveries)
	api.POST("/deliveries", s.AssignCourier)
	api.GET("/deliveries/active", s.GetActiveDeliveries)
	api.POST("/deliveries/auto", s.AutoAssignCourier)
	api.GET("/deliveries/:id", s.GetDelivery)
	api.POST("/deliveries/:id/:action", s.ChangeDeliveryStatus)

	api.GET("/config", s.GetSettings)
	api.PUT("/config", s.UpdateSettings)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}
