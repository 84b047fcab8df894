// Package delivery contains the Delivery aggregate: the record of one
// courier carrying one order, with its own status lifecycle.
//
// Pending -> Assigned -> PickedUp -> InTransit -> Delivered, and any status
// except Delivered may move to Failed. A delivery in Pending, Assigned,
// PickedUp or InTransit is active and keeps its courier reserved.
package delivery
