package courier

import (
	"fmt"
	"strings"

	"deliverysystem/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// VehicleKind is the discriminator of a courier. It fixes the courier's
// carrying capacity and the rate used to estimate delivery time.
type VehicleKind int

const (
	// UnknownVehicle catches uninitialized VehicleKind values.
	UnknownVehicle VehicleKind = iota
	Bike
	Car
	Drone
)

// vehicleSpec is the per-kind row of the capacity and speed table.
type vehicleSpec struct {
	maxWeightKg  decimal.Decimal
	minutesPerKm decimal.Decimal
}

func getVehicleSpecs() map[VehicleKind]vehicleSpec {
	return map[VehicleKind]vehicleSpec{
		Bike:  {maxWeightKg: decimal.NewFromInt(5), minutesPerKm: decimal.NewFromInt(3)},
		Car:   {maxWeightKg: decimal.NewFromInt(50), minutesPerKm: decimal.RequireFromString("1.5")},
		Drone: {maxWeightKg: decimal.NewFromInt(2), minutesPerKm: decimal.NewFromInt(2)},
	}
}

func getVehicleKindStrings() map[VehicleKind]string {
	return map[VehicleKind]string{
		UnknownVehicle: "Unknown",
		Bike:           "Bike",
		Car:            "Car",
		Drone:          "Drone",
	}
}

// String returns "Bike", "Car", "Drone" or "Unknown".
func (k VehicleKind) String() string {
	if s, ok := getVehicleKindStrings()[k]; ok {
		return s
	}
	return "Unknown"
}

// Validate accepts only kinds present in the vehicle table.
func (k VehicleKind) Validate() error {
	if _, ok := getVehicleSpecs()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("vehicle", fmt.Errorf("%d is not a supported vehicle kind", k))
	}
	return nil
}

// MaxWeightKg returns the carrying capacity of the kind, zero for unknown kinds.
func (k VehicleKind) MaxWeightKg() decimal.Decimal {
	return getVehicleSpecs()[k].maxWeightKg
}

// MinutesPerKm returns the travel rate of the kind, zero for unknown kinds.
func (k VehicleKind) MinutesPerKm() decimal.Decimal {
	return getVehicleSpecs()[k].minutesPerKm
}

// ParseVehicleKind maps a case-insensitive name to a VehicleKind.
// "bicycle" is accepted as an alias of Bike.
func ParseVehicleKind(s string) (VehicleKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bike", "bicycle":
		return Bike, nil
	case "car":
		return Car, nil
	case "drone":
		return Drone, nil
	default:
		return UnknownVehicle, errs.NewValueIsInvalidErrorWithCause("vehicle", fmt.Errorf("unknown vehicle kind %q", s))
	}
}
