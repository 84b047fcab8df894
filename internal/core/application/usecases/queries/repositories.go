// Package queries contains read operations for retrieving system state.
// Queries return read models built from the aggregates; they never write.
package queries

import "deliverysystem/internal/core/ports"

type (
	// Repositories is the read side of a unit of work. Queries use it
	// without Begin, so every call sees committed state only.
	Repositories interface {
		CustomerRepository() ports.CustomerRepository
		CourierRepository() ports.CourierRepository
		OrderRepository() ports.OrderRepository
		DeliveryRepository() ports.DeliveryRepository
	}

	// RepositoriesFactory creates a fresh set of repositories per query.
	RepositoriesFactory interface {
		Create() Repositories
	}
)
