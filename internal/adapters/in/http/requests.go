package http

import (
	"deliverysystem/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return badRequest("invalid request body")
	}
	return c.Validate(req)
}

func pathID(c echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return kernel.UUID{}, badRequest("invalid id: " + c.Param("id"))
	}
	return id, nil
}
