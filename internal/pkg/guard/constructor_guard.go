// Package guard provides the constructor guard pattern used by domain objects
// and commands to detect zero-value instances that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a
// nil validation error and the guarded object was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects, entities and commands are only
// created through their designated constructor functions. Embedding a guard
// in a struct makes zero-value instances detectable: the internal flag is
// only set by NewConstructorGuard, so a struct literal or zero value fails
// validation.
//
// Example:
//
//	type AcceptAssignmentCommand struct {
//	    assignmentID kernel.ID
//	    guard        guard.ConstructorGuard
//	}
//
//	func NewAcceptAssignmentCommand(id kernel.ID) (AcceptAssignmentCommand, error) {
//	    ...
//	    return AcceptAssignmentCommand{assignmentID: id, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c AcceptAssignmentCommand) Validate() error {
//	    return c.guard.Validate(ErrAcceptAssignmentCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it inside the object's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
