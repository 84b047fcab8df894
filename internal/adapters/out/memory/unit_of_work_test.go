package memory_test

import (
	"testing"

	"deliverysystem/internal/adapters/out/memory"
	"deliverysystem/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWork_WithoutBeginWritesImmediately(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())
	c := newCustomer(t, "ana@example.com")

	require.NoError(t, factory.Create().CustomerRepository().Add(ctx, c))

	got, err := factory.Create().CustomerRepository().Get(ctx, c.ID())
	require.NoError(t, err)
	assert.True(t, c.IsEqual(got))
}

func TestUnitOfWork_CommitPublishesStagedWrites(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewUnitOfWorkFactory(nil)
	c := newCustomer(t, "ana@example.com")

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.CustomerRepository().Add(ctx, c))

	// visible inside the transaction
	_, err := uow.CustomerRepository().Get(ctx, c.ID())
	require.NoError(t, err)

	// invisible outside until commit
	_, err = factory.Create().CustomerRepository().Get(ctx, c.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	require.NoError(t, uow.Commit(ctx))

	_, err = factory.Create().CustomerRepository().Get(ctx, c.ID())
	require.NoError(t, err)
}

func TestUnitOfWork_Rollback(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewUnitOfWorkFactory(nil)
	c := newCustomer(t, "ana@example.com")

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.CustomerRepository().Add(ctx, c))
	require.NoError(t, uow.Rollback(ctx))

	_, err := factory.Create().CustomerRepository().Get(ctx, c.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	require.ErrorIs(t, uow.Rollback(ctx), memory.ErrInvalidTransaction)
	require.ErrorIs(t, uow.Commit(ctx), memory.ErrInvalidTransaction)
}

func TestUnitOfWork_ConflictingCommitAppliesNothing(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewUnitOfWorkFactory(nil)
	c := newCustomer(t, "ana@example.com")
	bike := newBike(t)

	first := factory.Create()
	second := factory.Create()
	require.NoError(t, first.Begin(ctx))
	require.NoError(t, second.Begin(ctx))

	require.NoError(t, first.CustomerRepository().Add(ctx, c))
	require.NoError(t, second.CourierRepository().Add(ctx, bike))
	require.NoError(t, second.CustomerRepository().Add(ctx, c))

	require.NoError(t, first.Commit(ctx))
	require.ErrorIs(t, second.Commit(ctx), errs.ErrObjectAlreadyExists)

	_, err := factory.Create().CourierRepository().Get(ctx, bike.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUnitOfWork_StagedDeleteAndReAdd(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewUnitOfWorkFactory(nil)
	bike := newBike(t)
	require.NoError(t, factory.Create().CourierRepository().Add(ctx, bike))

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	repo := uow.CourierRepository()

	require.NoError(t, repo.Delete(ctx, bike.ID()))
	_, err := repo.Get(ctx, bike.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, repo.Add(ctx, bike))
	require.NoError(t, uow.Commit(ctx))

	all, err = factory.Create().CourierRepository().GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
