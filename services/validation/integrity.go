package validation

import (
	"context"

	"carpool/models"
)

// SlotIntegrityValidator enforces the occupancy invariant: assigned
// children never exceed total effective capacity.
type SlotIntegrityValidator struct {
	Slots SlotSource
}

// ValidateChildAssignment checks that one more child fits in the slot.
func (v *SlotIntegrityValidator) ValidateChildAssignment(ctx context.Context, childID, scheduleSlotID string) error {
	slot, err := v.Slots.GetByID(ctx, scheduleSlotID)
	if err != nil {
		return err
	}
	if slot == nil {
		return newError(CodeSlotNotFound, "schedule slot %s not found", scheduleSlotID)
	}
	if len(slot.VehicleAssignments) == 0 {
		return newError(CodeNoVehicles, "cannot assign child to slot %s: no vehicles assigned", scheduleSlotID)
	}

	capacity := TotalEffectiveCapacity(slot.VehicleAssignments)
	children := len(slot.ChildAssignments)
	if capacity <= children {
		return newError(CodeAtCapacity,
			"slot %s is at capacity: %d children assigned to %d seats", scheduleSlotID, children, capacity)
	}
	return nil
}

// ValidateSlotIntegrity is the canonical invariant check, usable both at
// write time and as a standalone consistency audit. An empty slot is
// internally consistent.
func (v *SlotIntegrityValidator) ValidateSlotIntegrity(ctx context.Context, scheduleSlotID string) (bool, error) {
	slot, err := v.Slots.GetByID(ctx, scheduleSlotID)
	if err != nil {
		return false, err
	}
	if slot == nil {
		return false, newError(CodeSlotNotFound, "schedule slot %s not found", scheduleSlotID)
	}
	if err := CheckSlotCapacity(slot); err != nil {
		return false, err
	}
	return true, nil
}

// CheckSlotCapacity applies the capacity invariant to slot state already in
// hand, so write paths can test a prospective mutation before persisting.
func CheckSlotCapacity(slot *models.ScheduleSlot) error {
	if len(slot.VehicleAssignments) == 0 && len(slot.ChildAssignments) == 0 {
		return nil
	}
	capacity := TotalEffectiveCapacity(slot.VehicleAssignments)
	children := len(slot.ChildAssignments)
	if children > capacity {
		return newError(CodeOverCapacity,
			"slot %s exceeds capacity: %d children assigned to %d seats", slot.ID, children, capacity)
	}
	return nil
}
