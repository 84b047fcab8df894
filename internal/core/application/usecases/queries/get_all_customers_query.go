package queries

import (
	"context"
	"errors"
	"slices"
	"strings"

	"deliverysystem/internal/pkg/guard"
)

var ErrGetAllCustomersQueryIsNotConstructed = errors.New(
	"GetAllCustomersQuery must be created via NewGetAllCustomersQuery constructor",
)

// GetAllCustomersQuery lists every customer sorted by name.
type GetAllCustomersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllCustomersQuery() GetAllCustomersQuery {
	return GetAllCustomersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCustomersQueryIsNotConstructed)
}

type GetAllCustomersQueryHandler struct {
	repos RepositoriesFactory
}

func NewGetAllCustomersQueryHandler(repos RepositoriesFactory) GetAllCustomersQueryHandler {
	return GetAllCustomersQueryHandler{repos: repos}
}

func (h GetAllCustomersQueryHandler) Handle(ctx context.Context, query GetAllCustomersQuery) ([]CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customers, err := h.repos.Create().CustomerRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := mapAll(customers, newCustomerResponse)
	slices.SortStableFunc(result, func(a, b CustomerResponse) int {
		return strings.Compare(a.Name, b.Name)
	})
	return result, nil
}
