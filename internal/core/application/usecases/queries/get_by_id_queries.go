package queries

import (
	"errors"

	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/pkg/errs"
	"deliverysystem/internal/pkg/guard"
)

var (
	ErrGetCustomerQueryIsNotConstructed = errors.New("GetCustomerQuery must be created via NewGetCustomerQuery constructor")
	ErrGetCourierQueryIsNotConstructed  = errors.New("GetCourierQuery must be created via NewGetCourierQuery constructor")
	ErrGetOrderQueryIsNotConstructed    = errors.New("GetOrderQuery must be created via NewGetOrderQuery constructor")
	ErrGetDeliveryQueryIsNotConstructed = errors.New("GetDeliveryQuery must be created via NewGetDeliveryQuery constructor")
)

// byID is the payload shared by single-aggregate lookups.
type byID struct {
	id    kernel.UUID
	guard guard.ConstructorGuard
}

func newByID(param string, id kernel.UUID) (byID, error) {
	if err := validateID(param, id); err != nil {
		return byID{}, err
	}
	return byID{id: id, guard: guard.NewConstructorGuard()}, nil
}

// GetCustomerQuery looks up one customer.
type GetCustomerQuery struct{ byID }

func NewGetCustomerQuery(id kernel.UUID) (GetCustomerQuery, error) {
	q, err := newByID("customerID", id)
	return GetCustomerQuery{q}, err
}

func (q GetCustomerQuery) CustomerID() kernel.UUID { return q.id }

func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

// GetCourierQuery looks up one courier.
type GetCourierQuery struct{ byID }

func NewGetCourierQuery(id kernel.UUID) (GetCourierQuery, error) {
	q, err := newByID("courierID", id)
	return GetCourierQuery{q}, err
}

func (q GetCourierQuery) CourierID() kernel.UUID { return q.id }

func (q GetCourierQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierQueryIsNotConstructed)
}

// GetOrderQuery looks up one order.
type GetOrderQuery struct{ byID }

func NewGetOrderQuery(id kernel.UUID) (GetOrderQuery, error) {
	q, err := newByID("orderID", id)
	return GetOrderQuery{q}, err
}

func (q GetOrderQuery) OrderID() kernel.UUID { return q.id }

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// GetDeliveryQuery looks up one delivery.
type GetDeliveryQuery struct{ byID }

func NewGetDeliveryQuery(id kernel.UUID) (GetDeliveryQuery, error) {
	q, err := newByID("deliveryID", id)
	return GetDeliveryQuery{q}, err
}

func (q GetDeliveryQuery) DeliveryID() kernel.UUID { return q.id }

func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

func validateID(param string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(param, err)
	}
	return nil
}
