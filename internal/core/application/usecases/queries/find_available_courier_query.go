package queries

import (
	"errors"

	"deliverysystem/internal/pkg/errs"
	"deliverysystem/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrFindAvailableCourierQueryIsNotConstructed = errors.New(
	"FindAvailableCourierQuery must be created via NewFindAvailableCourierQuery constructor",
)

// FindAvailableCourierQuery asks for a courier that is free and can carry weightKg.
type FindAvailableCourierQuery struct {
	weightKg decimal.Decimal

	guard guard.ConstructorGuard
}

func NewFindAvailableCourierQuery(weightKg decimal.Decimal) (FindAvailableCourierQuery, error) {
	if weightKg.IsNegative() {
		return FindAvailableCourierQuery{}, errs.NewValueIsOutOfRangeError("weightKg", weightKg, 0, "unbounded")
	}
	return FindAvailableCourierQuery{
		weightKg: weightKg,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q FindAvailableCourierQuery) Validate() error {
	return q.guard.Validate(ErrFindAvailableCourierQueryIsNotConstructed)
}

func (q FindAvailableCourierQuery) WeightKg() decimal.Decimal {
	return q.weightKg
}
