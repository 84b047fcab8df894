package http

import (
	"net/http"

	"deliverysystem/internal/core/application/usecases/commands"
	"deliverysystem/internal/core/application/usecases/queries"
	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type OrderItemRequest struct {
	ProductName string          `json:"product_name" validate:"required"`
	Quantity    int             `json:"quantity" validate:"gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	WeightKg    decimal.Decimal `json:"weight_kg"`
}

// CreateOrderRequest places an order. An empty priority means Normal.
type CreateOrderRequest struct {
	CustomerID    string             `json:"customer_id" validate:"required,uuid"`
	Priority      string             `json:"priority"`
	DeliveryNotes string             `json:"delivery_notes"`
	Items         []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

var orderActions = map[string]order.Status{
	"confirm":  order.Confirmed,
	"process":  order.Processing,
	"ready":    order.ReadyForDelivery,
	"dispatch": order.InDelivery,
	"deliver":  order.Delivered,
	"cancel":   order.Cancelled,
}

// GetOrders handles GET /api/orders.
func (s *Server) GetOrders(c echo.Context) error {
	orders, err := s.h.GetOrders.Handle(c.Request().Context(), queries.NewGetOrdersQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(orders, toOrderDTO))
}

// GetActiveOrders handles GET /api/orders/active: orders that are neither
// delivered nor cancelled, oldest first.
func (s *Server) GetActiveOrders(c echo.Context) error {
	orders, err := s.h.GetUncompletedOrders.Handle(c.Request().Context(), queries.NewGetUncompletedOrdersQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(orders, toOrderDTO))
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return err
	}

	priority := order.UnknownPriority
	if req.Priority != "" {
		if priority, err = order.ParsePriority(req.Priority); err != nil {
			return err
		}
	}

	items := make([]commands.OrderItemParams, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.OrderItemParams{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			WeightKg:    item.WeightKg,
		})
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id, customerID, items, priority, req.DeliveryNotes)
	if err != nil {
		return err
	}
	if err := s.h.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondOrder(c, http.StatusCreated, id)
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return s.respondOrder(c, http.StatusOK, id)
}

// CloneOrder handles POST /api/orders/:id/clone and returns the new order.
func (s *Server) CloneOrder(c echo.Context) error {
	sourceID, err := pathID(c)
	if err != nil {
		return err
	}

	cloneID := kernel.NewUUID()
	cmd, err := commands.NewCloneOrderCommand(sourceID, cloneID)
	if err != nil {
		return err
	}
	if err := s.h.CloneOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondOrder(c, http.StatusCreated, cloneID)
}

// ChangeOrderStatus handles POST /api/orders/:id/{confirm,process,ready,dispatch,deliver,cancel}.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	target, ok := orderActions[c.Param("action")]
	if !ok {
		return echo.ErrNotFound
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, target)
	if err != nil {
		return err
	}
	if err := s.h.ChangeOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondOrder(c, http.StatusOK, id)
}

// GetOrderDeliveries handles GET /api/orders/:id/deliveries.
func (s *Server) GetOrderDeliveries(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderDeliveriesQuery(id)
	if err != nil {
		return err
	}
	return s.respondDeliveries(c, query)
}

func (s *Server) respondOrder(c echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}
	resp, err := s.h.GetByID.Order(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(status, toOrderDTO(resp))
}
