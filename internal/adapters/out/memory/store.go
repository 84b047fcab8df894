package memory

import (
	"sync"

	"deliverysystem/internal/core/domain/model/courier"
	"deliverysystem/internal/core/domain/model/customer"
	"deliverysystem/internal/core/domain/model/delivery"
	"deliverysystem/internal/core/domain/model/order"
)

// Store is the process-local database shared by every unit of work.
// Readers take the read lock; a commit takes the write lock once and
// applies all staged writes of the transaction.
type Store struct {
	mu  sync.RWMutex
	seq uint64

	customers  table[*customer.Customer]
	couriers   table[*courier.Courier]
	orders     table[*order.Order]
	deliveries table[*delivery.Delivery]
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		customers:  newTable[*customer.Customer](),
		couriers:   newTable[*courier.Courier](),
		orders:     newTable[*order.Order](),
		deliveries: newTable[*delivery.Delivery](),
	}
}

// changeset is the staged part of one transaction.
type changeset struct {
	customers  staged[*customer.Customer]
	couriers   staged[*courier.Courier]
	orders     staged[*order.Order]
	deliveries staged[*delivery.Delivery]
}

func newChangeset() *changeset {
	return &changeset{
		customers:  newStaged[*customer.Customer](),
		couriers:   newStaged[*courier.Courier](),
		orders:     newStaged[*order.Order](),
		deliveries: newStaged[*delivery.Delivery](),
	}
}

// commit validates every staged write and applies them all, or none.
func (s *Store) commit(cs *changeset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.customers.check(customers, cs.customers.ops); err != nil {
		return err
	}
	if err := s.couriers.check(couriers, cs.couriers.ops); err != nil {
		return err
	}
	if err := s.orders.check(orders, cs.orders.ops); err != nil {
		return err
	}
	if err := s.deliveries.check(deliveries, cs.deliveries.ops); err != nil {
		return err
	}

	s.customers.apply(cs.customers.ops, s.nextSeq)
	s.couriers.apply(cs.couriers.ops, s.nextSeq)
	s.orders.apply(cs.orders.ops, s.nextSeq)
	s.deliveries.apply(cs.deliveries.ops, s.nextSeq)
	return nil
}

func (s *Store) nextSeq() uint64 {
	s.seq++
	return s.seq
}
