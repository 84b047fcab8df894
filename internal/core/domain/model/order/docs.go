// Package order contains the Order aggregate, its line items, and the
// builder and director used to assemble orders.
//
// The package includes:
//   - Order: the aggregate root with items, priority, notes and status
//   - Item: an immutable order line with derived totals
//   - Status: the order state machine
//   - Priority: Economy, Normal or Express
//   - Builder and Director: fluent and preset construction
//
// Key business rules:
//   - Items and priority can change only while the order is Created
//   - Created -> Confirmed | Cancelled, Confirmed -> Processing | Cancelled,
//     Processing -> ReadyForDelivery | Cancelled,
//     ReadyForDelivery -> InDelivery, InDelivery -> Delivered
//   - Clone shares items with the original; DeepCopy rebuilds them
package order
