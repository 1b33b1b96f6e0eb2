package validation

import "carpool/models"

// Seat override policy bounds. The upper bound is a fixed application
// constant independent of any vehicle's true capacity: no minibus gets to
// pretend it is a 50-seat bus. Zero is valid and means "bring the vehicle
// but reserve no child seats this trip".
const (
	MinSeatOverride = 0
	MaxSeatOverride = 10
)

// EffectiveCapacity returns the seat count actually usable for one vehicle
// assignment: the override when set, else the vehicle's default capacity.
// Bounds are enforced at input time by ValidateSeatOverride, not here.
func EffectiveCapacity(a models.VehicleAssignment) int {
	if a.SeatOverride != nil {
		return *a.SeatOverride
	}
	return a.Vehicle.Capacity
}

// TotalEffectiveCapacity sums EffectiveCapacity over all assignments.
func TotalEffectiveCapacity(assignments []models.VehicleAssignment) int {
	total := 0
	for _, a := range assignments {
		total += EffectiveCapacity(a)
	}
	return total
}

// ValidateSeatOverride rejects override values outside the closed policy
// bound [MinSeatOverride, MaxSeatOverride].
func ValidateSeatOverride(value int) error {
	if value < MinSeatOverride {
		return newError(CodeNegativeOverride, "seat override must not be negative; got %d", value)
	}
	if value > MaxSeatOverride {
		return newError(CodeOverrideTooHigh, "seat override must not exceed %d; got %d", MaxSeatOverride, value)
	}
	return nil
}
