// Package customer contains the Customer aggregate: the person who places
// orders and receives notifications about them.
//
// A customer has no lifecycle of its own. Its contact data can be changed
// through validating setters; every setter rejects blank values and the
// email setter also requires an "@".
package customer
