package validation

import (
	"context"
	"testing"
	"time"

	"carpool/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotWithOccupancy(id string, children int, assignments ...models.VehicleAssignment) *models.ScheduleSlot {
	slot := &models.ScheduleSlot{
		ID:                 id,
		GroupID:            "g1",
		Datetime:           time.Date(2025, 10, 13, 7, 30, 0, 0, time.UTC),
		VehicleAssignments: assignments,
	}
	for i := 0; i < children; i++ {
		slot.ChildAssignments = append(slot.ChildAssignments, models.ChildAssignment{
			ID:      "ca" + string(rune('a'+i)),
			ChildID: "c" + string(rune('a'+i)),
		})
	}
	return slot
}

func TestValidateChildAssignment(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown slot", func(t *testing.T) {
		v := &SlotIntegrityValidator{Slots: newFakeSlotStore()}
		err := v.ValidateChildAssignment(ctx, "c1", "missing")
		require.Error(t, err)
		assert.True(t, IsCode(err, CodeSlotNotFound))
	})

	t.Run("no vehicles means no seats", func(t *testing.T) {
		v := &SlotIntegrityValidator{Slots: newFakeSlotStore(slotWithOccupancy("s1", 0))}
		err := v.ValidateChildAssignment(ctx, "c1", "s1")
		require.Error(t, err)
		assert.True(t, IsCode(err, CodeNoVehicles))
	})

	t.Run("seat available", func(t *testing.T) {
		v := &SlotIntegrityValidator{Slots: newFakeSlotStore(slotWithOccupancy("s1", 4,
			models.VehicleAssignment{ID: "a1", Vehicle: models.Vehicle{Capacity: 5}},
		))}
		require.NoError(t, v.ValidateChildAssignment(ctx, "c1", "s1"))
	})

	t.Run("full slot rejects one more child", func(t *testing.T) {
		v := &SlotIntegrityValidator{Slots: newFakeSlotStore(slotWithOccupancy("s1", 5,
			models.VehicleAssignment{ID: "a1", Vehicle: models.Vehicle{Capacity: 5}},
		))}
		err := v.ValidateChildAssignment(ctx, "c1", "s1")
		require.Error(t, err)
		assert.True(t, IsCode(err, CodeAtCapacity))
	})

	t.Run("override shrinks the seat pool", func(t *testing.T) {
		// capacity 5 vehicle overridden to 2, plus a second cap-5 vehicle: 7 seats.
		v := &SlotIntegrityValidator{Slots: newFakeSlotStore(slotWithOccupancy("s1", 6,
			models.VehicleAssignment{ID: "a1", Vehicle: models.Vehicle{Capacity: 5}, SeatOverride: intPtr(2)},
			models.VehicleAssignment{ID: "a2", Vehicle: models.Vehicle{Capacity: 5}},
		))}
		require.NoError(t, v.ValidateChildAssignment(ctx, "c1", "s1"))

		v = &SlotIntegrityValidator{Slots: newFakeSlotStore(slotWithOccupancy("s1", 7,
			models.VehicleAssignment{ID: "a1", Vehicle: models.Vehicle{Capacity: 5}, SeatOverride: intPtr(2)},
			models.VehicleAssignment{ID: "a2", Vehicle: models.Vehicle{Capacity: 5}},
		))}
		err := v.ValidateChildAssignment(ctx, "c1", "s1")
		assert.True(t, IsCode(err, CodeAtCapacity))
	})
}

func TestValidateSlotIntegrity(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown slot", func(t *testing.T) {
		v := &SlotIntegrityValidator{Slots: newFakeSlotStore()}
		ok, err := v.ValidateSlotIntegrity(ctx, "missing")
		assert.False(t, ok)
		assert.True(t, IsCode(err, CodeSlotNotFound))
	})

	t.Run("empty slot is consistent", func(t *testing.T) {
		v := &SlotIntegrityValidator{Slots: newFakeSlotStore(slotWithOccupancy("s1", 0))}
		ok, err := v.ValidateSlotIntegrity(ctx, "s1")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("occupancy at exactly capacity is consistent", func(t *testing.T) {
		v := &SlotIntegrityValidator{Slots: newFakeSlotStore(slotWithOccupancy("s1", 7,
			models.VehicleAssignment{ID: "a1", Vehicle: models.Vehicle{Capacity: 5}, SeatOverride: intPtr(2)},
			models.VehicleAssignment{ID: "a2", Vehicle: models.Vehicle{Capacity: 5}},
		))}
		ok, err := v.ValidateSlotIntegrity(ctx, "s1")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("over capacity is reported with the numbers", func(t *testing.T) {
		v := &SlotIntegrityValidator{Slots: newFakeSlotStore(slotWithOccupancy("s1", 8,
			models.VehicleAssignment{ID: "a1", Vehicle: models.Vehicle{Capacity: 5}, SeatOverride: intPtr(2)},
			models.VehicleAssignment{ID: "a2", Vehicle: models.Vehicle{Capacity: 5}},
		))}
		ok, err := v.ValidateSlotIntegrity(ctx, "s1")
		assert.False(t, ok)
		require.Error(t, err)
		assert.True(t, IsCode(err, CodeOverCapacity))
		assert.Contains(t, err.Error(), "slot s1 exceeds capacity: 8 children assigned to 7 seats")
	})
}

func TestCheckSlotCapacity(t *testing.T) {
	t.Run("children with zero vehicles is over capacity", func(t *testing.T) {
		err := CheckSlotCapacity(slotWithOccupancy("s1", 2))
		assert.True(t, IsCode(err, CodeOverCapacity))
	})

	t.Run("prospective mutation can be tested before persisting", func(t *testing.T) {
		slot := slotWithOccupancy("s1", 4,
			models.VehicleAssignment{ID: "a1", Vehicle: models.Vehicle{Capacity: 5}},
		)
		require.NoError(t, CheckSlotCapacity(slot))

		slot.VehicleAssignments[0].SeatOverride = intPtr(3)
		err := CheckSlotCapacity(slot)
		assert.True(t, IsCode(err, CodeOverCapacity))
	})
}
