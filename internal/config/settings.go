// Package config holds the business settings shared by every use case:
// delivery distance limit, currency, order size limit and system name.
//
// A single Store is created by the composition root and handed to the
// handlers that need it. Readers take a Snapshot; writers go through the
// validating setters, which are serialized.
package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"deliverysystem/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	DefaultMaxDeliveryDistanceKm = 100
	DefaultCurrency              = "MDL"
	DefaultMaxOrderItems         = 50
	DefaultSystemName            = "Delivery Management System"
)

// Settings is an immutable copy of the business settings.
type Settings struct {
	MaxDeliveryDistanceKm decimal.Decimal
	DefaultCurrency       string
	MaxOrderItems         int
	SystemName            string
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		MaxDeliveryDistanceKm: decimal.NewFromInt(DefaultMaxDeliveryDistanceKm),
		DefaultCurrency:       DefaultCurrency,
		MaxOrderItems:         DefaultMaxOrderItems,
		SystemName:            DefaultSystemName,
	}
}

// Validate checks every field and joins the failures.
func (s Settings) Validate() error {
	return errors.Join(
		validateMaxDeliveryDistance(s.MaxDeliveryDistanceKm),
		validateCurrency(s.DefaultCurrency),
		validateMaxOrderItems(s.MaxOrderItems),
		validateSystemName(s.SystemName),
	)
}

func (s Settings) String() string {
	return fmt.Sprintf("[%s] max distance: %skm, currency: %s, max items: %d",
		s.SystemName, s.MaxDeliveryDistanceKm, s.DefaultCurrency, s.MaxOrderItems)
}

// Update lists the fields to change; nil fields are left as they are.
type Update struct {
	MaxDeliveryDistanceKm *decimal.Decimal
	DefaultCurrency       *string
	MaxOrderItems         *int
	SystemName            *string
}

// Store guards the current Settings. It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	settings Settings
}

// NewStore validates initial and returns a store holding it.
func NewStore(initial Settings) (*Store, error) {
	if err := initial.Validate(); err != nil {
		return nil, err
	}
	return &Store{settings: initial}, nil
}

// NewDefaultStore returns a store holding DefaultSettings.
func NewDefaultStore() *Store {
	return &Store{settings: DefaultSettings()}
}

// Snapshot returns a consistent copy of all settings.
func (s *Store) Snapshot() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// SetMaxDeliveryDistance requires a positive distance.
func (s *Store) SetMaxDeliveryDistance(km decimal.Decimal) error {
	return s.Apply(Update{MaxDeliveryDistanceKm: &km})
}

// SetDefaultCurrency requires a non-blank currency code.
func (s *Store) SetDefaultCurrency(currency string) error {
	return s.Apply(Update{DefaultCurrency: &currency})
}

// SetMaxOrderItems requires a positive limit.
func (s *Store) SetMaxOrderItems(maxItems int) error {
	return s.Apply(Update{MaxOrderItems: &maxItems})
}

// SetSystemName requires a non-blank name.
func (s *Store) SetSystemName(name string) error {
	return s.Apply(Update{SystemName: &name})
}

// Apply validates every field of u and applies them together, or none of
// them when any is invalid.
func (s *Store) Apply(u Update) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.settings
	if u.MaxDeliveryDistanceKm != nil {
		next.MaxDeliveryDistanceKm = *u.MaxDeliveryDistanceKm
	}
	if u.DefaultCurrency != nil {
		next.DefaultCurrency = *u.DefaultCurrency
	}
	if u.MaxOrderItems != nil {
		next.MaxOrderItems = *u.MaxOrderItems
	}
	if u.SystemName != nil {
		next.SystemName = *u.SystemName
	}

	if err := next.Validate(); err != nil {
		return err
	}
	s.settings = next
	return nil
}

func validateMaxDeliveryDistance(km decimal.Decimal) error {
	if !km.IsPositive() {
		return errs.NewValueIsOutOfRangeError("maxDeliveryDistanceKm", km, "greater than 0", "unbounded")
	}
	return nil
}

func validateCurrency(currency string) error {
	if strings.TrimSpace(currency) == "" {
		return errs.NewValueIsRequiredError("defaultCurrency")
	}
	return nil
}

func validateMaxOrderItems(maxItems int) error {
	if maxItems <= 0 {
		return errs.NewValueIsOutOfRangeError("maxOrderItems", maxItems, 1, "unbounded")
	}
	return nil
}

func validateSystemName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("systemName")
	}
	return nil
}
