package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// ErrIDIsNotConstructed indicates that an ID was not properly initialized
// through NewID. This error is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID")

// ID is a value object representing the numeric key of an entity
// (order, rider, assignment). The backend assigns keys starting from 1,
// so zero and negative values are invalid; the zero value of ID fails
// validation, which catches uninitialized identifiers.
//
// ID is immutable and safe for concurrent use.
//
// Example:
//
//	orderID, err := kernel.NewID(1001)
//	if err != nil {
//	    // handle invalid key
//	}
//	fmt.Println(orderID) // "1001"
type ID struct {
	value int64
}

// NewID creates an ID from a numeric key. The key must be positive.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not a positive identifier", value))
	}
	return ID{value: value}, nil
}

// Validate checks that the ID was constructed via NewID.
// The zero value is invalid.
func (i ID) Validate() error {
	if i.value <= 0 {
		return ErrIDIsNotConstructed
	}
	return nil
}

// Int64 returns the underlying numeric key.
func (i ID) Int64() int64 {
	return i.value
}

// String returns the decimal representation of the key.
func (i ID) String() string {
	return fmt.Sprintf("%d", i.value)
}

// IsEqual compares two IDs by value.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}
