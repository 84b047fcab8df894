// Package courier contains the Courier aggregate and the factories that build it.
//
// A courier is tagged by VehicleKind. The kind selects a row of the vehicle
// table:
//
//	kind   max weight   rate
//	Bike   5 kg         3 min/km
//	Car    50 kg        1.5 min/km
//	Drone  2 kg         2 min/km
//
// Car couriers additionally carry a license plate and Drone couriers a max
// flight range; a drone refuses trips longer than its range with a policy
// violation.
//
// Couriers are created through a FactoryProvider, which maps a kind to a
// Factory. Every factory checks the shared contact data before running the
// kind-specific constructor, and new kinds can be registered without
// changing the existing factories.
//
// Availability is the reservation flag: the assignment workflow sets it to
// false while a delivery is active and back to true when the delivery ends.
package courier
