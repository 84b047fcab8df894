package commands_test

import (
	"testing"

	"deliverysystem/internal/core/application/usecases/commands"
	"deliverysystem/internal/core/domain/model/courier"
	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateCourierCommand_ValidInput(t *testing.T) {
	// Arrange
	id := kernel.NewUUID()
	params := courier.CreationParams{Name: "Ion", Phone: "+37369000000", LicensePlate: "C AB 123"}

	// Act
	cmd, err := commands.NewCreateCourierCommand(id, courier.Car, params)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, id, cmd.CourierID())
	assert.Equal(t, courier.Car, cmd.Kind())
	assert.Equal(t, params, cmd.Params())
	require.NoError(t, cmd.Validate())
}

func TestNewCreateCourierCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCreateCourierCommand(kernel.UUID{}, courier.UnknownVehicle, courier.CreationParams{})

	require.Error(t, err)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateCourierCommand_ZeroValueIsNotConstructed(t *testing.T) {
	var cmd commands.CreateCourierCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateCourierCommandIsNotConstructed)
}
