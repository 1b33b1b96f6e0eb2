package validation

import (
	"context"
	"time"

	"carpool/models"
)

// SlotSource is the read-only slot access the conflict and integrity
// validators need.
type SlotSource interface {
	GetByID(ctx context.Context, id string) (*models.ScheduleSlot, error)
	GetByGroupAndDatetime(ctx context.Context, groupID string, at time.Time, excludeID string) ([]models.ScheduleSlot, error)
}

// VehicleSource resolves vehicle records. A missing vehicle is not a
// conflict failure; creation order is not enforced here.
type VehicleSource interface {
	GetByID(ctx context.Context, id string) (*models.Vehicle, error)
}

// UserSource resolves driver records.
type UserSource interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// ConflictDetector detects double-booking of vehicles and drivers. Both
// checks are scoped to the same absolute instant within the same group:
// a volunteer may double-book across different groups without tripping
// these checks. That scope is deliberate, not an oversight.
type ConflictDetector struct {
	Slots    SlotSource
	Vehicles VehicleSource
	Users    UserSource
}

// ValidateVehicleAssignment rejects assigning the vehicle to the slot when
// another slot in the same group at the same instant already carries it.
func (d *ConflictDetector) ValidateVehicleAssignment(ctx context.Context, vehicleID, scheduleSlotID string) error {
	slot, err := d.Slots.GetByID(ctx, scheduleSlotID)
	if err != nil {
		return err
	}
	if slot == nil {
		return newError(CodeSlotNotFound, "schedule slot %s not found", scheduleSlotID)
	}

	// Optimistic: validate against the vehicle record if it already exists,
	// but do not require it to.
	if d.Vehicles != nil {
		if _, err := d.Vehicles.GetByID(ctx, vehicleID); err != nil {
			return err
		}
	}

	return d.VehicleFreeAt(ctx, vehicleID, slot.GroupID, slot.Datetime, slot.ID)
}

// ValidateDriverAvailability rejects assigning the driver to the slot when
// another slot in the same group at the same instant already lists them as
// a driver.
func (d *ConflictDetector) ValidateDriverAvailability(ctx context.Context, driverID, scheduleSlotID string) error {
	slot, err := d.Slots.GetByID(ctx, scheduleSlotID)
	if err != nil {
		return err
	}
	if slot == nil {
		return newError(CodeSlotNotFound, "schedule slot %s not found", scheduleSlotID)
	}

	if d.Users != nil {
		if _, err := d.Users.GetByID(ctx, driverID); err != nil {
			return err
		}
	}

	return d.DriverFreeAt(ctx, driverID, slot.GroupID, slot.Datetime, slot.ID)
}

// VehicleFreeAt checks that no other slot in the group at the given instant
// carries the vehicle. Used both for existing slots and for pre-insert
// checks during slot creation, where there is no slot id to exclude yet.
func (d *ConflictDetector) VehicleFreeAt(ctx context.Context, vehicleID, groupID string, at time.Time, excludeSlotID string) error {
	peers, err := d.Slots.GetByGroupAndDatetime(ctx, groupID, at, excludeSlotID)
	if err != nil {
		return err
	}
	for _, peer := range peers {
		for _, va := range peer.VehicleAssignments {
			if va.VehicleID == vehicleID {
				return newError(CodeVehicleConflict,
					"schedule conflicts: vehicle already assigned to slot %s at %s",
					peer.ID, at.UTC().Format(time.RFC3339))
			}
		}
	}
	return nil
}

// DriverFreeAt is the driver counterpart of VehicleFreeAt.
func (d *ConflictDetector) DriverFreeAt(ctx context.Context, driverID, groupID string, at time.Time, excludeSlotID string) error {
	if driverID == "" {
		return nil
	}
	peers, err := d.Slots.GetByGroupAndDatetime(ctx, groupID, at, excludeSlotID)
	if err != nil {
		return err
	}
	for _, peer := range peers {
		for _, va := range peer.VehicleAssignments {
			if va.DriverID == driverID {
				return newError(CodeDriverConflict,
					"schedule conflicts: driver already assigned to slot %s at %s",
					peer.ID, at.UTC().Format(time.RFC3339))
			}
		}
	}
	return nil
}
