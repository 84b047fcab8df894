package queries

import (
	"context"
	"slices"
	"strings"

	"deliverysystem/internal/core/domain/model/courier"
)

// GetAllCouriersQueryHandler lists couriers sorted by name.
//
// Example:
//
//	handler := NewGetAllCouriersQueryHandler(repos)
//	couriers, err := handler.Handle(ctx, NewGetAllCouriersQuery(false))
//	if err != nil {
//	    log.Printf("Failed to get couriers: %v", err)
//	    return err
//	}
//	fmt.Printf("Found %d couriers\n", len(couriers))
type GetAllCouriersQueryHandler struct {
	repos RepositoriesFactory
}

func NewGetAllCouriersQueryHandler(repos RepositoriesFactory) GetAllCouriersQueryHandler {
	return GetAllCouriersQueryHandler{repos: repos}
}

// Handle executes the query. The result is never nil.
func (h GetAllCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCouriersQuery,
) ([]CourierResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	repo := h.repos.Create().CourierRepository()

	var (
		couriers []*courier.Courier
		err      error
	)
	if query.OnlyAvailable() {
		couriers, err = repo.GetAvailable(ctx)
	} else {
		couriers, err = repo.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	result := mapAll(couriers, newCourierResponse)
	slices.SortStableFunc(result, func(a, b CourierResponse) int {
		return strings.Compare(a.Name, b.Name)
	})
	return result, nil
}
