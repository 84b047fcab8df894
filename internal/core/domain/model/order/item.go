package order

import (
	"errors"
	"fmt"
	"strings"

	"deliverysystem/internal/pkg/errs"
	"deliverysystem/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when a zero-value Item is used.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is an order line: a product, how many of it, its unit price and unit
// weight. Items are immutable; an order refers to them by pointer so a
// shallow clone can share them.
type Item struct {
	productName string
	quantity    int
	unitPrice   decimal.Decimal
	weightKg    decimal.Decimal
	guard       guard.ConstructorGuard
}

// NewItem validates the line and returns it.
//
// Parameters:
//   - productName: non-blank
//   - quantity: greater than zero
//   - unitPrice: zero or more
//   - weightKg: weight of one unit, zero or more
//
// Returns:
//   - *Item: the immutable line
//   - error: joined validation errors, no item is returned
func NewItem(productName string, quantity int, unitPrice, weightKg decimal.Decimal) (*Item, error) {
	var errList []error
	if strings.TrimSpace(productName) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("productName"))
	}
	if quantity <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded"))
	}
	if unitPrice.IsNegative() {
		errList = append(errList, errs.NewValueIsOutOfRangeError("unitPrice", unitPrice, 0, "unbounded"))
	}
	if weightKg.IsNegative() {
		errList = append(errList, errs.NewValueIsOutOfRangeError("weightKg", weightKg, 0, "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Item{
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice,
		weightKg:    weightKg,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the item was built by NewItem.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ProductName() string {
	return i.productName
}

func (i *Item) Quantity() int {
	return i.quantity
}

func (i *Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

func (i *Item) WeightKg() decimal.Decimal {
	return i.weightKg
}

// TotalPrice is quantity × unit price.
func (i *Item) TotalPrice() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// TotalWeight is quantity × unit weight.
func (i *Item) TotalWeight() decimal.Decimal {
	return i.weightKg.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// Copy returns an equal item with its own identity.
func (i *Item) Copy() *Item {
	c := *i
	return &c
}

func (i *Item) String() string {
	return fmt.Sprintf("%s x%d @ %s (weight: %skg)", i.productName, i.quantity, i.unitPrice, i.weightKg)
}
