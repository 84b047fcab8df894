package queries

import (
	"errors"

	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery or NewGetCustomerOrdersQuery constructor",
)

// GetOrdersQuery lists every order, or the orders of one customer.
type GetOrdersQuery struct {
	customerID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

func NewGetCustomerOrdersQuery(customerID kernel.UUID) (GetOrdersQuery, error) {
	if err := validateID("customerID", customerID); err != nil {
		return GetOrdersQuery{}, err
	}
	return GetOrdersQuery{
		customerID: &customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer filter, if any.
func (q GetOrdersQuery) CustomerID() (kernel.UUID, bool) {
	if q.customerID == nil {
		return kernel.UUID{}, false
	}
	return *q.customerID, true
}
