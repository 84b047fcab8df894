package memory

import (
	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/pkg/errs"
)

// collection implements the repository operations shared by every
// aggregate kind on top of one table of the store.
type collection[T any] struct {
	uow    *UnitOfWork
	entity entity[T]
	table  func(*Store) *table[T]
	staged func(*changeset) *staged[T]
}

func (c collection[T]) add(v T) error {
	return c.write(opAdd, v)
}

func (c collection[T]) update(v T) error {
	return c.write(opUpdate, v)
}

func (c collection[T]) delete(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	var zero T
	return c.stage(op[T]{kind: opDelete, id: id.String(), value: zero})
}

func (c collection[T]) get(id kernel.UUID) (T, error) {
	var zero T
	if err := id.Validate(); err != nil {
		return zero, err
	}

	key := id.String()
	if cs := c.uow.tx; cs != nil {
		if row, ok := c.staged(cs).rows[key]; ok {
			if row.deleted {
				return zero, errs.NewObjectNotFoundError(c.entity.name, key)
			}
			return c.entity.copy(row.value)
		}
	}

	st := c.uow.store
	st.mu.RLock()
	r, ok := c.table(st).rows[key]
	st.mu.RUnlock()
	if !ok {
		return zero, errs.NewObjectNotFoundError(c.entity.name, key)
	}

	return c.entity.copy(r.value)
}

// list returns copies of the visible values accepted by keep, in insertion order.
func (c collection[T]) list(keep func(T) bool) ([]T, error) {
	var s *staged[T]
	if cs := c.uow.tx; cs != nil {
		s = c.staged(cs)
	}

	st := c.uow.store
	st.mu.RLock()
	values := c.table(st).view(s, keep)
	st.mu.RUnlock()

	out := make([]T, 0, len(values))
	for _, v := range values {
		cp, err := c.entity.copy(v)
		if err != nil {
			return nil, err
		}
		out = append(out, cp)
	}
	return out, nil
}

func (c collection[T]) write(kind opKind, v T) error {
	if err := c.entity.valid(v); err != nil {
		return err
	}

	cp, err := c.entity.copy(v)
	if err != nil {
		return err
	}

	return c.stage(op[T]{kind: kind, id: c.entity.id(v).String(), value: cp})
}

// stage records o in the open transaction, or commits it on its own when
// Begin was not called.
func (c collection[T]) stage(o op[T]) error {
	cs := c.uow.tx
	if cs == nil {
		cs = newChangeset()
		c.staged(cs).record(o)
		return c.uow.store.commit(cs)
	}

	exists := c.exists(o.id)
	switch {
	case o.kind == opAdd && exists:
		return errs.NewObjectAlreadyExistsError(c.entity.name, o.id)
	case o.kind != opAdd && !exists:
		return errs.NewObjectNotFoundError(c.entity.name, o.id)
	}

	c.staged(cs).record(o)
	return nil
}

func (c collection[T]) exists(key string) bool {
	if cs := c.uow.tx; cs != nil {
		if row, ok := c.staged(cs).rows[key]; ok {
			return !row.deleted
		}
	}

	st := c.uow.store
	st.mu.RLock()
	defer st.mu.RUnlock()
	_, ok := c.table(st).rows[key]
	return ok
}
