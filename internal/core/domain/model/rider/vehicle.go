package rider

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// VehicleType represents the kind of vehicle a rider delivers with.
// It is a closed enum; values outside it are rejected at the point of entry.
type VehicleType int

const (
	// VehicleUnknown represents an invalid or undefined vehicle type.
	VehicleUnknown VehicleType = iota

	// VehicleBike is a bicycle or motorbike.
	VehicleBike

	// VehicleCar is a private car.
	VehicleCar

	// VehicleVan is a delivery van.
	VehicleVan

	// VehicleTruck is a truck for bulk deliveries.
	VehicleTruck
)

// getVehicleTypeNames maps each vehicle type to its wire token.
func getVehicleTypeNames() map[VehicleType]string {
	return map[VehicleType]string{
		VehicleBike:  "bike",
		VehicleCar:   "car",
		VehicleVan:   "van",
		VehicleTruck: "truck",
	}
}

// VehicleTypeFromWire converts a wire token to a VehicleType.
// Unlike order statuses, vehicle types come from rider registration forms,
// so an unrecognized token is rejected with an error.
func VehicleTypeFromWire(token string) (VehicleType, error) {
	for vt, name := range getVehicleTypeNames() {
		if name == token {
			return vt, nil
		}
	}
	return VehicleUnknown, errs.NewValueIsInvalidErrorWithCause("vehicle_type",
		fmt.Errorf("%q is not a recognized vehicle type", token))
}

// Validate checks if the VehicleType is a member of the closed enum.
func (v VehicleType) Validate() error {
	if _, ok := getVehicleTypeNames()[v]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("vehicle_type",
			fmt.Errorf("%d is not a valid vehicle type", v))
	}
	return nil
}

// WireName returns the lowercase wire token for the vehicle type.
func (v VehicleType) WireName() string {
	if name, ok := getVehicleTypeNames()[v]; ok {
		return name
	}
	return "unknown"
}

// String returns the wire token. Implements fmt.Stringer.
func (v VehicleType) String() string {
	return v.WireName()
}
