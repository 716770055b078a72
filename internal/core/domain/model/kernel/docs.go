// Package kernel provides core domain primitives used throughout the
// fulfillment domain model.
//
// The package includes:
//   - ID: a numeric entity key for orders, riders and assignments
//   - SecureID: an opaque public-facing token distinct from the numeric key
//   - Zone: a free-text delivery-zone label matched by substring
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
