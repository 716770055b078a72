package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrSecureIDIsNotConstructed indicates that a SecureID was not properly
// initialized through one of the constructor functions. This error is
// returned when validating a zero-value SecureID.
var ErrSecureIDIsNotConstructed = errs.NewValueIsRequiredError(
	"SecureID must be created via NewSecureID, SecureIDFromString, or SecureIDFromBytes")

// SecureID is a value object representing the opaque public-facing token of
// an entity (secure_order_id, secure_assignment_id). It is distinct from the
// numeric ID: the token is safe to expose in URLs and customer-facing views,
// while the numeric key stays internal.
//
// The zero value of SecureID is invalid and must be constructed using one of
// the provided factory functions: NewSecureID, SecureIDFromString, or
// SecureIDFromBytes.
//
// SecureID is immutable and thread-safe, making it suitable for concurrent use.
//
// Example usage:
//
//	// Mint a new token for a freshly created assignment
//	token := kernel.NewSecureID()
//
//	// Reconstruct from its string representation
//	token, err := kernel.SecureIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    // handle error
//	}
type SecureID struct {
	id uuid.UUID
}

// NewSecureID mints a new random token (UUID version 4).
// This is the primary way to create public tokens for new entities.
func NewSecureID() SecureID {
	return SecureID{
		id: uuid.New(),
	}
}

// SecureIDFromString parses a SecureID from its string representation.
// Returns an error if the string is not a valid token. This function is
// typically used when reconstructing entities from persistence or when
// parsing tokens received from callers.
//
// Example:
//
//	token, err := kernel.SecureIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    return fmt.Errorf("invalid secure order id: %w", err)
//	}
func SecureIDFromString(s string) (SecureID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return SecureID{}, fmt.Errorf("invalid secure id format: %w", err)
	}
	return SecureID{id: id}, nil
}

// SecureIDFromBytes creates a SecureID from a 16-byte slice. Useful when
// tokens are stored as binary data in databases.
func SecureIDFromBytes(b []byte) (SecureID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return SecureID{}, fmt.Errorf("invalid secure id format: %w", err)
	}
	newID := SecureID{id: id}
	if err = newID.Validate(); err != nil {
		return SecureID{}, err
	}

	return newID, nil
}

// String returns the standard string representation of the token,
// "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx".
func (s SecureID) String() string {
	return s.id.String()
}

// Bytes returns the underlying uuid.UUID value. For a byte slice
// representation, use Bytes()[:].
func (s SecureID) Bytes() uuid.UUID {
	return s.id
}

// IsEqual compares two SecureIDs for equality.
func (s SecureID) IsEqual(other SecureID) bool {
	return s.id == other.id
}

// Validate checks if the SecureID is properly constructed.
// Returns ErrSecureIDIsNotConstructed for the zero value.
func (s SecureID) Validate() error {
	if s.id == uuid.Nil {
		return ErrSecureIDIsNotConstructed
	}
	return nil
}
