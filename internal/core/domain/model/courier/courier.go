package courier

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/pkg/errs"
	"deliverysystem/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Domain errors for courier operations.
var (
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via a courier constructor")
	// ErrDistanceIsNegative is returned when a delivery time is requested for a negative distance.
	ErrDistanceIsNegative = errs.NewValueIsOutOfRangeError("distanceKm", "negative", 0, "unbounded")
)

// Courier represents an agent that transports orders.
// It is an aggregate root tagged by VehicleKind: the kind decides the
// carrying capacity and the delivery-time rate, and selects the payload
// that is meaningful for it (license plate for Car, flight range for Drone).
//
// Business rules:
//   - Courier must have a valid UUID, non-blank name and phone
//   - Car couriers carry a non-blank license plate
//   - Drone couriers carry a positive max flight range and refuse longer trips
//   - A new courier is available; availability changes only through
//     SetAvailable and SetUnavailable
//   - Kind and capacity never change after construction
//
// Example usage:
//
//	c, err := courier.NewBikeCourier(kernel.NewUUID(), "Ion", "+37360000000")
//	if err != nil {
//	    // Handle construction error
//	}
//	eta, _ := c.CalculateDeliveryTime(decimal.NewFromInt(10)) // 30m0s
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// phone is the contact number of the courier
	phone string
	// available is false while the courier is reserved by an active delivery
	available bool
	// kind selects the capacity and speed row of the vehicle table
	kind VehicleKind
	// licensePlate is set for Car couriers only
	licensePlate string
	// maxFlightRangeKm is set for Drone couriers only
	maxFlightRangeKm decimal.Decimal
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewBikeCourier creates an available Bike courier (5 kg, 3 min/km).
func NewBikeCourier(id kernel.UUID, name, phone string) (*Courier, error) {
	return newCourier(id, Bike, name, phone, true, func(*Courier) error { return nil })
}

// NewCarCourier creates an available Car courier (50 kg, 1.5 min/km).
//
// Parameters:
//   - id: Unique identifier for the courier
//   - name, phone: Contact data (must be non-blank)
//   - licensePlate: Vehicle registration (must be non-blank)
//
// Returns:
//   - *Courier: A courier ready to be assigned
//   - error: Joined validation errors for every invalid parameter
func NewCarCourier(id kernel.UUID, name, phone, licensePlate string) (*Courier, error) {
	return newCourier(id, Car, name, phone, true, func(c *Courier) error {
		return c.setLicensePlate(licensePlate)
	})
}

// NewDroneCourier creates an available Drone courier (2 kg, 2 min/km).
// maxFlightRangeKm must be positive; CalculateDeliveryTime refuses any
// distance beyond it.
func NewDroneCourier(id kernel.UUID, name, phone string, maxFlightRangeKm decimal.Decimal) (*Courier, error) {
	return newCourier(id, Drone, name, phone, true, func(c *Courier) error {
		return c.setMaxFlightRange(maxFlightRangeKm)
	})
}

// RestoreCourier reconstructs a Courier from persistent storage, keeping
// its availability flag. Only the payload matching kind is applied: the
// license plate is ignored for non-Car couriers and the flight range for
// non-Drone couriers.
//
// Returns:
//   - *Courier: Restored courier aggregate
//   - error: Validation error if kind is unknown or any field is invalid
func RestoreCourier(
	id kernel.UUID,
	kind VehicleKind,
	name string,
	phone string,
	available bool,
	licensePlate string,
	maxFlightRangeKm decimal.Decimal,
) (*Courier, error) {
	return newCourier(id, kind, name, phone, available, func(c *Courier) error {
		switch kind {
		case Car:
			return c.setLicensePlate(licensePlate)
		case Drone:
			return c.setMaxFlightRange(maxFlightRangeKm)
		default:
			return nil
		}
	})
}

func newCourier(
	id kernel.UUID,
	kind VehicleKind,
	name, phone string,
	available bool,
	setPayload func(*Courier) error,
) (*Courier, error) {
	c := &Courier{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setKind(kind),
		c.SetName(name),
		c.SetPhone(phone),
		setPayload(c),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// IsEqual compares two couriers by identity.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate checks that the courier was built by one of its constructors.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

func (c *Courier) ID() kernel.UUID {
	return c.id
}

func (c *Courier) Name() string {
	return c.name
}

func (c *Courier) Phone() string {
	return c.phone
}

func (c *Courier) Kind() VehicleKind {
	return c.kind
}

// IsAvailable reports whether the courier can be picked for a new delivery.
func (c *Courier) IsAvailable() bool {
	return c.available
}

// MaxWeightKg returns the carrying capacity fixed by the vehicle kind.
func (c *Courier) MaxWeightKg() decimal.Decimal {
	return c.kind.MaxWeightKg()
}

// LicensePlate returns the plate of a Car courier, empty for other kinds.
func (c *Courier) LicensePlate() string {
	return c.licensePlate
}

// MaxFlightRangeKm returns the range of a Drone courier, zero for other kinds.
func (c *Courier) MaxFlightRangeKm() decimal.Decimal {
	return c.maxFlightRangeKm
}

// SetName replaces the courier's name.
func (c *Courier) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

// SetPhone replaces the courier's phone.
func (c *Courier) SetPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

// SetAvailable releases the courier back to the pool.
func (c *Courier) SetAvailable() {
	c.available = true
}

// SetUnavailable reserves the courier for a delivery.
func (c *Courier) SetUnavailable() {
	c.available = false
}

// CanCarry reports whether weightKg fits the courier's capacity (inclusive).
func (c *Courier) CanCarry(weightKg decimal.Decimal) bool {
	return weightKg.LessThanOrEqual(c.MaxWeightKg())
}

// CalculateDeliveryTime estimates how long the courier needs for distanceKm:
// distance multiplied by the per-km rate of the vehicle kind.
//
// Parameters:
//   - distanceKm: trip length, must not be negative
//
// Returns:
//   - time.Duration: estimated travel time
//   - error: ErrDistanceIsNegative for a negative distance, or a
//     PolicyViolationError when a drone is asked to fly beyond its range
//
// Example:
//
//	drone, _ := courier.NewDroneCourier(id, "D-1", "+373", decimal.NewFromInt(5))
//	_, err := drone.CalculateDeliveryTime(decimal.NewFromInt(10)) // policy violation
//	eta, _ := drone.CalculateDeliveryTime(decimal.NewFromInt(4))  // 8m0s
func (c *Courier) CalculateDeliveryTime(distanceKm decimal.Decimal) (time.Duration, error) {
	if distanceKm.IsNegative() {
		return 0, ErrDistanceIsNegative
	}
	if c.kind == Drone && distanceKm.GreaterThan(c.maxFlightRangeKm) {
		return 0, errs.NewPolicyViolationError("drone flight range",
			fmt.Sprintf("distance %skm exceeds max flight range of %skm", distanceKm, c.maxFlightRangeKm))
	}

	minutes := distanceKm.Mul(c.kind.MinutesPerKm())
	return time.Duration(minutes.Mul(decimal.NewFromInt(int64(time.Minute))).IntPart()), nil
}

func (c *Courier) String() string {
	return fmt.Sprintf("%s courier %s, max weight %skg, available: %t", c.kind, c.name, c.MaxWeightKg(), c.available)
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setKind(kind VehicleKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}

func (c *Courier) setLicensePlate(licensePlate string) error {
	if strings.TrimSpace(licensePlate) == "" {
		return errs.NewValueIsRequiredError("licensePlate")
	}
	c.licensePlate = licensePlate
	return nil
}

func (c *Courier) setMaxFlightRange(maxFlightRangeKm decimal.Decimal) error {
	if !maxFlightRangeKm.IsPositive() {
		return errs.NewValueIsOutOfRangeError("maxFlightRangeKm", maxFlightRangeKm, "greater than 0", "unbounded")
	}
	c.maxFlightRangeKm = maxFlightRangeKm
	return nil
}
