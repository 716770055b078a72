// Package services provides domain services that orchestrate business rules
// across multiple domain entities in the fulfillment system. It implements
// logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - ShippingValidator: validates shipping details for the Shipped
//     transition, aggregating every failure into one ValidationError
//   - RiderMatcher: filters a rider snapshot by delivery location using
//     case-insensitive zone substring matching
//
// Both services are pure: they take snapshots as input and never touch
// repositories, which keeps them trivially testable and reusable between
// the command path and the query fallback path.
package services
