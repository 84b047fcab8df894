package http

import (
	"net/http"

	"deliverysystem/internal/config"
	"deliverysystem/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// UpdateSettingsRequest changes only the fields that are present.
type UpdateSettingsRequest struct {
	MaxDeliveryDistanceKm *decimal.Decimal `json:"max_delivery_distance_km"`
	DefaultCurrency       *string          `json:"default_currency"`
	MaxOrderItems         *int             `json:"max_order_items"`
	SystemName            *string          `json:"system_name"`
}

// GetSettings handles GET /api/config.
func (s *Server) GetSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, toSettingsDTO(s.h.GetSettings.Handle()))
}

// UpdateSettings handles PUT /api/config. All present fields are applied
// together or, if any is invalid, none of them.
func (s *Server) UpdateSettings(c echo.Context) error {
	var req UpdateSettingsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateSettingsCommand(config.Update{
		MaxDeliveryDistanceKm: req.MaxDeliveryDistanceKm,
		DefaultCurrency:       req.DefaultCurrency,
		MaxOrderItems:         req.MaxOrderItems,
		SystemName:            req.SystemName,
	})
	if err != nil {
		return err
	}
	if err := s.h.UpdateSettings.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toSettingsDTO(s.h.GetSettings.Handle()))
}
