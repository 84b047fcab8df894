// Package kernel holds the value objects shared by every aggregate of the
// delivery system.
//
// The package includes:
//   - UUID: the identifier of customers, couriers, orders and deliveries
//   - Address: the postal address attached to a customer
//
// Both are immutable and reject their zero values through Validate, so an
// aggregate can check a value it received before storing it.
package kernel
