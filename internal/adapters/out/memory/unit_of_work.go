// Package memory is the default storage adapter: a process-local store of
// aggregate snapshots behind the repository and unit of work ports.
//
// Values are copied through the aggregates' Restore constructors on every
// read and write, so an entity handed out by a repository can be mutated
// freely until it is passed back to Update.
//
// Writes made after Begin are staged and become visible to other units of
// work only on Commit, all at once. Without Begin every write is applied
// immediately, as with the postgres adapter.
//
// Example:
//
//	store := memory.NewStore()
//	factory := memory.NewUnitOfWorkFactory(store)
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package memory

import (
	"context"
	"errors"

	"deliverysystem/internal/core/domain/model/courier"
	"deliverysystem/internal/core/domain/model/customer"
	"deliverysystem/internal/core/domain/model/delivery"
	"deliverysystem/internal/core/domain/model/order"
	"deliverysystem/internal/core/ports"
)

// ErrInvalidTransaction is returned by Commit and Rollback without an active transaction.
var ErrInvalidTransaction = errors.New("invalid transaction")

// UnitOfWorkFactory creates units of work over one shared Store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory for store. A nil store gets a fresh one.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	if store == nil {
		store = NewStore()
	}
	return &UnitOfWorkFactory{store: store}
}

// Create returns a new unit of work with no active transaction.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork is not safe for concurrent use; create one per operation.
type UnitOfWork struct {
	store *Store
	tx    *changeset
}

// Begin starts staging writes. Calling it again while a transaction is open does nothing.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.tx == nil {
		uow.tx = newChangeset()
	}
	return nil
}

// Commit applies every staged write. If any of them conflicts with the
// committed state nothing is applied and the transaction is closed anyway.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return ErrInvalidTransaction
	}

	cs := uow.tx
	uow.tx = nil
	return uow.store.commit(cs)
}

// Rollback discards the staged writes.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return ErrInvalidTransaction
	}

	uow.tx = nil
	return nil
}

func (uow *UnitOfWork) CustomerRepository() ports.CustomerRepository {
	return &CustomerRepository{items: collection[*customer.Customer]{
		uow:    uow,
		entity: customers,
		table:  func(s *Store) *table[*customer.Customer] { return &s.customers },
		staged: func(cs *changeset) *staged[*customer.Customer] { return &cs.customers },
	}}
}

func (uow *UnitOfWork) CourierRepository() ports.CourierRepository {
	return &CourierRepository{items: collection[*courier.Courier]{
		uow:    uow,
		entity: couriers,
		table:  func(s *Store) *table[*courier.Courier] { return &s.couriers },
		staged: func(cs *changeset) *staged[*courier.Courier] { return &cs.couriers },
	}}
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{items: collection[*order.Order]{
		uow:    uow,
		entity: orders,
		table:  func(s *Store) *table[*order.Order] { return &s.orders },
		staged: func(cs *changeset) *staged[*order.Order] { return &cs.orders },
	}}
}

func (uow *UnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return &DeliveryRepository{items: collection[*delivery.Delivery]{
		uow:    uow,
		entity: deliveries,
		table:  func(s *Store) *table[*delivery.Delivery] { return &s.deliveries },
		staged: func(cs *changeset) *staged[*delivery.Delivery] { return &cs.deliveries },
	}}
}
