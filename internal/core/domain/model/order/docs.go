// Package order contains the Order aggregate and its status state machine.
//
// An order is created by checkout with status Pending and advances
// monotonically through the happy path Pending -> Approved -> Shipped ->
// Delivered, with Cancelled reachable from any non-terminal state. Delivered
// and Cancelled are terminal; no component may regress an order out of them.
//
// The package also owns the two status vocabularies the storefront uses: the
// lowercase wire tokens persisted by the backend and the capitalized display
// labels shown to administrators, including the deliberate lossy collapse of
// the "Processing" display label onto the pending wire value.
package order
