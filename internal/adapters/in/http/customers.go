package http

import (
	"net/http"

	"deliverysystem/internal/core/application/usecases/commands"
	"deliverysystem/internal/core/application/usecases/queries"
	"deliverysystem/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type CreateCustomerRequest struct {
	Name    string     `json:"name" validate:"required"`
	Email   string     `json:"email" validate:"required,email"`
	Phone   string     `json:"phone" validate:"required"`
	Address AddressDTO `json:"address" validate:"required"`
}

// GetCustomers handles GET /api/customers.
func (s *Server) GetCustomers(c echo.Context) error {
	customers, err := s.h.GetAllCustomers.Handle(c.Request().Context(), queries.NewGetAllCustomersQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(customers, toCustomerDTO))
}

// CreateCustomer handles POST /api/customers and returns the stored customer.
func (s *Server) CreateCustomer(c echo.Context) error {
	var req CreateCustomerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	address, err := kernel.NewAddress(req.Address.Street, req.Address.City, req.Address.PostalCode, req.Address.Country)
	if err != nil {
		return err
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(id, req.Name, req.Email, req.Phone, address)
	if err != nil {
		return err
	}
	if err := s.h.CreateCustomer.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondCustomer(c, http.StatusCreated, id)
}

// GetCustomer handles GET /api/customers/:id.
func (s *Server) GetCustomer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return s.respondCustomer(c, http.StatusOK, id)
}

// GetCustomerOrders handles GET /api/customers/:id/orders.
func (s *Server) GetCustomerOrders(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := s.customer(c, id); err != nil {
		return err
	}

	query, err := queries.NewGetCustomerOrdersQuery(id)
	if err != nil {
		return err
	}
	orders, err := s.h.GetOrders.Handle(ctx, query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(orders, toOrderDTO))
}

func (s *Server) customer(c echo.Context, id kernel.UUID) (queries.CustomerResponse, error) {
	query, err := queries.NewGetCustomerQuery(id)
	if err != nil {
		return queries.CustomerResponse{}, err
	}
	return s.h.GetByID.Customer(c.Request().Context(), query)
}

func (s *Server) respondCustomer(c echo.Context, status int, id kernel.UUID) error {
	resp, err := s.customer(c, id)
	if err != nil {
		return err
	}
	return c.JSON(status, toCustomerDTO(resp))
}
