package courier

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CreationParams carries the generic input for building any courier kind.
// Fields that do not apply to the requested kind are ignored.
type CreationParams struct {
	Name             string
	Phone            string
	LicensePlate     string
	MaxFlightRangeKm decimal.NullDecimal
}

// CreateFunc builds a courier of one kind from already screened params.
type CreateFunc func(id kernel.UUID, params CreationParams) (*Courier, error)

// Factory builds couriers of a single vehicle kind.
type Factory interface {
	Kind() VehicleKind
	// CreateAndValidate rejects a blank name or phone before delegating to
	// the kind-specific constructor.
	CreateAndValidate(id kernel.UUID, params CreationParams) (*Courier, error)
}

type kindFactory struct {
	kind   VehicleKind
	create CreateFunc
}

// NewFactory wraps create with the shared name and phone checks.
func NewFactory(kind VehicleKind, create CreateFunc) Factory {
	return kindFactory{kind: kind, create: create}
}

// NewBikeFactory returns the factory for Bike couriers.
func NewBikeFactory() Factory {
	return NewFactory(Bike, func(id kernel.UUID, p CreationParams) (*Courier, error) {
		return NewBikeCourier(id, p.Name, p.Phone)
	})
}

// NewCarFactory returns the factory for Car couriers. A license plate is required.
func NewCarFactory() Factory {
	return NewFactory(Car, func(id kernel.UUID, p CreationParams) (*Courier, error) {
		if strings.TrimSpace(p.LicensePlate) == "" {
			return nil, errs.NewValueIsRequiredErrorWithCause("licensePlate",
				fmt.Errorf("license plate is required for car couriers"))
		}
		return NewCarCourier(id, p.Name, p.Phone, p.LicensePlate)
	})
}

// NewDroneFactory returns the factory for Drone couriers. A positive flight range is required.
func NewDroneFactory() Factory {
	return NewFactory(Drone, func(id kernel.UUID, p CreationParams) (*Courier, error) {
		if !p.MaxFlightRangeKm.Valid || !p.MaxFlightRangeKm.Decimal.IsPositive() {
			return nil, errs.NewValueIsRequiredErrorWithCause("maxFlightRangeKm",
				fmt.Errorf("a positive max flight range is required for drone couriers"))
		}
		return NewDroneCourier(id, p.Name, p.Phone, p.MaxFlightRangeKm.Decimal)
	})
}

func (f kindFactory) Kind() VehicleKind {
	return f.kind
}

func (f kindFactory) CreateAndValidate(id kernel.UUID, params CreationParams) (*Courier, error) {
	if strings.TrimSpace(params.Name) == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if strings.TrimSpace(params.Phone) == "" {
		return nil, errs.NewValueIsRequiredError("phone")
	}
	return f.create(id, params)
}

// FactoryProvider maps vehicle kinds to factories. New kinds are added with
// Register without touching the existing factories. It is safe for
// concurrent use.
type FactoryProvider struct {
	mu        sync.RWMutex
	factories map[VehicleKind]Factory
}

// NewFactoryProvider returns a provider with no factories registered.
func NewFactoryProvider() *FactoryProvider {
	return &FactoryProvider{factories: make(map[VehicleKind]Factory)}
}

// NewDefaultFactoryProvider returns a provider with Bike, Car and Drone registered.
func NewDefaultFactoryProvider() *FactoryProvider {
	p := NewFactoryProvider()
	for _, f := range []Factory{NewBikeFactory(), NewCarFactory(), NewDroneFactory()} {
		p.Register(f.Kind(), f)
	}
	return p
}

// Register adds or replaces the factory for kind.
func (p *FactoryProvider) Register(kind VehicleKind, factory Factory) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.factories[kind] = factory
}

// Factory returns the factory registered for kind.
// Unregistered kinds fail with a ValueIsInvalidError.
func (p *FactoryProvider) Factory(kind VehicleKind) (Factory, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	f, ok := p.factories[kind]
	if !ok {
		return nil, errs.NewValueIsInvalidErrorWithCause("vehicle",
			fmt.Errorf("no factory registered for vehicle kind %s", kind))
	}
	return f, nil
}

// SupportedKinds lists the registered kinds in ascending order.
func (p *FactoryProvider) SupportedKinds() []VehicleKind {
	p.mu.RLock()
	defer p.mu.RUnlock()

	kinds := make([]VehicleKind, 0, len(p.factories))
	for k := range p.factories {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// Create resolves the factory for kind and builds a courier with it.
func (p *FactoryProvider) Create(kind VehicleKind, id kernel.UUID, params CreationParams) (*Courier, error) {
	f, err := p.Factory(kind)
	if err != nil {
		return nil, err
	}
	return f.CreateAndValidate(id, params)
}
