package queries

import (
	"errors"

	"deliverysystem/internal/pkg/guard"
)

var (
	ErrGetAllCouriersQueryIsNotConstructed = errors.New(
		"GetAllCouriersQuery must be created via NewGetAllCouriersQuery constructor",
	)
)

// GetAllCouriersQuery retrieves couriers for monitoring and dispatching,
// optionally only the available ones.
//
// Example:
//
//	query := NewGetAllCouriersQuery(true)
//	couriers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve couriers: %w", err)
//	}
//	for _, c := range couriers {
//	    fmt.Printf("%s (%s) can carry %skg\n", c.Name, c.Kind, c.MaxWeightKg)
//	}
type GetAllCouriersQuery struct {
	onlyAvailable bool

	guard guard.ConstructorGuard
}

// NewGetAllCouriersQuery creates a query to retrieve couriers. With
// onlyAvailable set, reserved couriers are left out.
func NewGetAllCouriersQuery(onlyAvailable bool) GetAllCouriersQuery {
	return GetAllCouriersQuery{
		onlyAvailable: onlyAvailable,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllCouriersQueryIsNotConstructed if validation fails.
func (q GetAllCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCouriersQueryIsNotConstructed)
}

func (q GetAllCouriersQuery) OnlyAvailable() bool {
	return q.onlyAvailable
}
