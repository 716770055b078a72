// Package assignment contains the Assignment aggregate: the binding of one
// order to one rider for delivery, with a sub-lifecycle of its own
// (pending, accepted, rejected, picked_up, in_transit, delivered,
// cancelled) that progresses independently of the parent order's status.
package assignment
