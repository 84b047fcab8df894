package http

import (
	"errors"
	"net/http"

	"deliverysystem/internal/core/application/usecases/commands"
	"deliverysystem/internal/core/application/usecases/queries"
	"deliverysystem/internal/core/domain/model/delivery"
	"deliverysystem/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type AssignCourierRequest struct {
	OrderID    string          `json:"order_id" validate:"required,uuid"`
	CourierID  string          `json:"courier_id" validate:"required,uuid"`
	DistanceKm decimal.Decimal `json:"distance_km"`
}

var deliveryActions = map[string]delivery.Status{
	"pickup":  delivery.PickedUp,
	"transit": delivery.InTransit,
	"deliver": delivery.Delivered,
	"fail":    delivery.Failed,
}

// GetDeliveries handles GET /api/deliveries.
func (s *Server) GetDeliveries(c echo.Context) error {
	return s.respondDeliveries(c, queries.NewGetAllDeliveriesQuery())
}

// GetActiveDeliveries handles GET /api/deliveries/active.
func (s *Server) GetActiveDeliveries(c echo.Context) error {
	return s.respondDeliveries(c, queries.NewGetActiveDeliveriesQuery())
}

// AssignCourier handles POST /api/deliveries and returns the new delivery.
func (s *Server) AssignCourier(c echo.Context) error {
	var req AssignCourierRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return err
	}
	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAssignCourierCommand(orderID, courierID, req.DistanceKm)
	if err != nil {
		return err
	}
	if err := s.h.AssignCourier.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondActiveDelivery(c, orderID)
}

// AutoAssignCourier handles POST /api/deliveries/auto: the oldest order
// ready for delivery gets the first courier that can take it. Returns 204
// when no order is waiting.
func (s *Server) AutoAssignCourier(c echo.Context) error {
	err := s.h.AutoAssignCourier.Handle(c.Request().Context(), commands.NewAutoAssignCourierCommand())
	switch {
	case errors.Is(err, commands.ErrNoOrderFound):
		return c.NoContent(http.StatusNoContent)
	case errors.Is(err, commands.ErrNoFreeCouriersFound):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case err != nil:
		return err
	}

	deliveries, err := s.h.GetDeliveries.Handle(c.Request().Context(), queries.NewGetActiveDeliveriesQuery())
	if err != nil {
		return err
	}
	if len(deliveries) == 0 {
		return c.NoContent(http.StatusCreated)
	}
	return c.JSON(http.StatusCreated, toDeliveryDTO(latest(deliveries)))
}

// GetDelivery handles GET /api/deliveries/:id.
func (s *Server) GetDelivery(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return s.respondDelivery(c, id)
}

// ChangeDeliveryStatus handles POST /api/deliveries/:id/{pickup,transit,deliver,fail}.
func (s *Server) ChangeDeliveryStatus(c echo.Context) error {
	target, ok := deliveryActions[c.Param("action")]
	if !ok {
		return echo.ErrNotFound
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeDeliveryStatusCommand(id, target)
	if err != nil {
		return err
	}
	if err := s.h.ChangeDeliveryStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondDelivery(c, id)
}

func (s *Server) respondDelivery(c echo.Context, id kernel.UUID) error {
	query, err := queries.NewGetDeliveryQuery(id)
	if err != nil {
		return err
	}
	resp, err := s.h.GetByID.Delivery(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDeliveryDTO(resp))
}

func (s *Server) respondActiveDelivery(c echo.Context, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderDeliveriesQuery(orderID)
	if err != nil {
		return err
	}
	deliveries, err := s.h.GetDeliveries.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	if len(deliveries) == 0 {
		return echo.NewHTTPError(http.StatusInternalServerError, "assigned delivery not found")
	}
	return c.JSON(http.StatusCreated, toDeliveryDTO(latest(deliveries)))
}

func (s *Server) respondDeliveries(c echo.Context, query queries.GetDeliveriesQuery) error {
	deliveries, err := s.h.GetDeliveries.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(deliveries, toDeliveryDTO))
}

// latest picks the most recently assigned delivery; ties go to the later entry.
func latest(deliveries []queries.DeliveryResponse) queries.DeliveryResponse {
	last := deliveries[0]
	for _, d := range deliveries[1:] {
		if !d.AssignedAt.Before(last.AssignedAt) {
			last = d
		}
	}
	return last
}
