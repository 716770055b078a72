package kernel

import (
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrZoneIsNotConstructed is returned when attempting to use an improperly
// initialized Zone. Zones must be created using NewZone to ensure validity.
var ErrZoneIsNotConstructed = errs.NewValueIsRequiredError(
	"zone must be created via NewZone constructor")

// ErrZoneLabelIsRequired is returned when the zone label is empty or
// consists only of whitespace.
var ErrZoneLabelIsRequired = errs.NewValueIsRequiredError("zone label")

// Zone represents a free-text delivery-zone label declared by a rider,
// e.g. "Dhaka", "Gulshan", "Mirpur-10". Zones are not geocoded; a delivery
// location matches a zone by case-insensitive substring containment.
//
// Zone is an immutable value object. The zero value is invalid and will
// fail validation - use NewZone to create instances.
//
// Example:
//
//	zone, err := kernel.NewZone("Gulshan")
//	if err != nil {
//	    // handle validation error
//	}
//	zone.Matches("gulshan 2") // true
type Zone struct { //nolint:recvcheck //using for validation
	label string
	guard guard.ConstructorGuard
}

// NewZone creates a Zone from a free-text label. Leading and trailing
// whitespace is trimmed; the trimmed label must be non-empty.
func NewZone(label string) (Zone, error) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return Zone{}, ErrZoneLabelIsRequired
	}

	return Zone{
		label: trimmed,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Zone was properly constructed via NewZone.
// The zero value of Zone is invalid and will fail this validation.
func (z Zone) Validate() error {
	return z.guard.Validate(ErrZoneIsNotConstructed)
}

// Label returns the zone label as declared by the rider.
func (z Zone) Label() string {
	return z.label
}

// String returns the zone label. Implements fmt.Stringer.
func (z Zone) String() string {
	return z.label
}

// Matches reports whether the given delivery location falls inside this zone.
// A location matches when the zone label contains it as a case-insensitive
// substring: a rider declaring "Gulshan 1, Dhaka" serves the location
// "Gulshan". A blank location matches nothing; callers treat blank searches
// as "no filter" before reaching here.
func (z Zone) Matches(location string) bool {
	loc := strings.ToLower(strings.TrimSpace(location))
	if loc == "" {
		return false
	}

	return strings.Contains(strings.ToLower(z.label), loc)
}

// IsEqual compares two zones by label, ignoring case. Used to keep a rider's
// zone set free of duplicates at the point of addition.
func (z Zone) IsEqual(other Zone) bool {
	return strings.EqualFold(z.label, other.label)
}
