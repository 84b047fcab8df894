// Package services provides domain services that apply business rules
// spanning several aggregates of the delivery system.
//
// The package includes:
//   - OrderDispatcher: the matching rules between a ready order and a
//     courier (distance limit, readiness, availability, capacity), creation
//     of the Assigned delivery, and courier reservation
//
// Domain services are pure: they never load or store aggregates.
package services
