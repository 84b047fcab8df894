package http

import (
	"net/http"
	"strconv"

	"deliverysystem/internal/core/application/usecases/commands"
	"deliverysystem/internal/core/application/usecases/queries"
	"deliverysystem/internal/core/domain/model/courier"
	"deliverysystem/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CreateCourierRequest registers a courier. LicensePlate is required for
// cars and MaxFlightRangeKm for drones; the courier factory enforces both.
type CreateCourierRequest struct {
	Name             string           `json:"name" validate:"required"`
	Phone            string           `json:"phone" validate:"required"`
	Vehicle          string           `json:"vehicle" validate:"required"`
	LicensePlate     string           `json:"license_plate"`
	MaxFlightRangeKm *decimal.Decimal `json:"max_flight_range_km"`
}

// GetCouriers handles GET /api/couriers; ?available=true lists only free couriers.
func (s *Server) GetCouriers(c echo.Context) error {
	onlyAvailable := false
	if raw := c.QueryParam("available"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return badRequest("available must be a boolean")
		}
		onlyAvailable = v
	}

	couriers, err := s.h.GetAllCouriers.Handle(c.Request().Context(), queries.NewGetAllCouriersQuery(onlyAvailable))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(couriers, toCourierDTO))
}

// CreateCourier handles POST /api/couriers.
func (s *Server) CreateCourier(c echo.Context) error {
	var req CreateCourierRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	kind, err := courier.ParseVehicleKind(req.Vehicle)
	if err != nil {
		return err
	}

	params := courier.CreationParams{
		Name:         req.Name,
		Phone:        req.Phone,
		LicensePlate: req.LicensePlate,
	}
	if req.MaxFlightRangeKm != nil {
		params.MaxFlightRangeKm = decimal.NewNullDecimal(*req.MaxFlightRangeKm)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateCourierCommand(id, kind, params)
	if err != nil {
		return err
	}
	if err := s.h.CreateCourier.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondCourier(c, http.StatusCreated, id)
}

// GetCourier handles GET /api/couriers/:id.
func (s *Server) GetCourier(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return s.respondCourier(c, http.StatusOK, id)
}

// FindAvailableCourier handles GET /api/couriers/match?weight_kg=N and
// returns the first available courier able to carry the weight.
func (s *Server) FindAvailableCourier(c echo.Context) error {
	weight, err := decimal.NewFromString(c.QueryParam("weight_kg"))
	if err != nil {
		return badRequest("weight_kg must be a number")
	}

	query, err := queries.NewFindAvailableCourierQuery(weight)
	if err != nil {
		return err
	}
	resp, err := s.h.FindAvailableCourier.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCourierDTO(resp))
}

// GetCourierDeliveries handles GET /api/couriers/:id/deliveries.
func (s *Server) GetCourierDeliveries(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCourierDeliveriesQuery(id)
	if err != nil {
		return err
	}
	return s.respondDeliveries(c, query)
}

func (s *Server) respondCourier(c echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetCourierQuery(id)
	if err != nil {
		return err
	}
	resp, err := s.h.GetByID.Courier(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(status, toCourierDTO(resp))
}
