package commands

import (
	"context"
	"errors"

	"deliverysystem/internal/core/domain/model/customer"
	"deliverysystem/internal/pkg/errs"
)

// CreateCustomerCommandHandler persists new customers. Email addresses are
// unique: a second customer with the same email is rejected with
// errs.ErrObjectAlreadyExists.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the customer data, checks email uniqueness and stores the customer.
func (h CreateCustomerCommandHandler) Handle(ctx context.Context, command CreateCustomerCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	c, err := customer.NewCustomer(
		command.CustomerID(),
		command.Name(),
		command.Email(),
		command.Phone(),
		command.Address(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()

	_, err = repo.GetByEmail(ctx, c.Email())
	switch {
	case err == nil:
		return errs.NewObjectAlreadyExistsError("email", c.Email())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	if err = repo.Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
