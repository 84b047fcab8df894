package queries

import (
	"context"
	"slices"
	"strings"
)

// GetUncompletedOrdersQueryHandler lists orders still in progress, oldest first.
type GetUncompletedOrdersQueryHandler struct {
	repos RepositoriesFactory
}

func NewGetUncompletedOrdersQueryHandler(repos RepositoriesFactory) GetUncompletedOrdersQueryHandler {
	return GetUncompletedOrdersQueryHandler{repos: repos}
}

// Handle executes the query. Orders created at the same instant are ordered by id.
func (h GetUncompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.repos.Create().OrderRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		if o.Status().IsFinal() {
			continue
		}
		result = append(result, newOrderResponse(o))
	}

	slices.SortStableFunc(result, func(a, b OrderResponse) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return result, nil
}
