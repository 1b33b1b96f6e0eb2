package validation

import (
	"context"
	"sync"
	"testing"
	"time"

	"carpool/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidationServiceDelegation(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 10, 12, 12, 0, 0, 0, time.UTC)

	slots := newFakeSlotStore(
		&models.ScheduleSlot{
			ID: "s1", GroupID: "g1",
			Datetime: time.Date(2025, 10, 13, 7, 30, 0, 0, time.UTC),
			VehicleAssignments: []models.VehicleAssignment{
				{ID: "a1", VehicleID: "v1", DriverID: "u1", Vehicle: models.Vehicle{ID: "v1", Capacity: 4}},
			},
		},
		&models.ScheduleSlot{
			ID: "s2", GroupID: "g1",
			Datetime: time.Date(2025, 10, 13, 7, 30, 0, 0, time.UTC),
		},
	)
	groups := &fakeConfigSource{configs: map[string]*models.GroupScheduleConfig{
		"g1": {Times: map[string][]string{"MONDAY": {"07:30"}}},
	}}
	svc := NewDefaultValidationService(slots, groups, nil, nil, FixedClock(now))

	require.NoError(t, svc.ValidateSlotTiming("2025-10-13T07:30:00Z"))
	require.NoError(t, svc.ValidateSlotTimingWithTimezone("2025-10-13T07:30:00Z", "UTC"))
	require.NoError(t, svc.ValidateScheduleTime(ctx, "g1", time.Date(2025, 10, 13, 7, 30, 0, 0, time.UTC), "UTC"))
	require.NoError(t, svc.ValidateSeatOverride(3))
	require.NoError(t, svc.ValidateChildAssignment(ctx, "c1", "s1"))

	ok, err := svc.ValidateSlotIntegrity(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, ok)

	// s2 shares g1's 07:30 instant, so v1 and u1 are both taken.
	err = svc.ValidateVehicleAssignment(ctx, "v1", "s2")
	assert.True(t, IsCode(err, CodeVehicleConflict))
	err = svc.ValidateDriverAvailability(ctx, "u1", "s2")
	assert.True(t, IsCode(err, CodeDriverConflict))
}

func TestNilClockDefaultsToSystemClock(t *testing.T) {
	svc := NewDefaultValidationService(newFakeSlotStore(), &fakeConfigSource{}, nil, nil, nil)
	// Far-future instant passes against the real clock.
	require.NoError(t, svc.ValidateSlotTiming("2099-01-01T00:00:00Z"))
	err := svc.ValidateSlotTiming("2001-01-01T00:00:00Z")
	assert.True(t, IsCode(err, CodePastDateTime))
}

func TestValidationIsIdempotent(t *testing.T) {
	ctx := context.Background()
	slots := newFakeSlotStore(&models.ScheduleSlot{
		ID: "s1", GroupID: "g1",
		Datetime: time.Date(2025, 10, 13, 7, 30, 0, 0, time.UTC),
		VehicleAssignments: []models.VehicleAssignment{
			{ID: "a1", VehicleID: "v1", Vehicle: models.Vehicle{Capacity: 2}},
		},
	})
	svc := NewDefaultValidationService(slots, &fakeConfigSource{}, nil, nil, nil)

	// Validation reads, never writes: repeating a check cannot change its
	// outcome or the slot's state.
	for i := 0; i < 3; i++ {
		require.NoError(t, svc.ValidateChildAssignment(ctx, "c1", "s1"))
	}
	assert.Empty(t, slots.slots["s1"].ChildAssignments)
}

// Two concurrent writers can both see the last seat as free, both pass
// validation, and both commit; the slot ends up over capacity. Writes are
// not serialized against validation, so the integrity audit is the layer
// that catches this afterwards.
func TestConcurrentChildAssignmentRace(t *testing.T) {
	ctx := context.Background()
	slot := &models.ScheduleSlot{
		ID: "s1", GroupID: "g1",
		Datetime: time.Date(2025, 10, 13, 7, 30, 0, 0, time.UTC),
		VehicleAssignments: []models.VehicleAssignment{
			{ID: "a1", VehicleID: "v1", Vehicle: models.Vehicle{Capacity: 1}},
		},
	}
	slots := newFakeSlotStore(slot)
	svc := NewDefaultValidationService(slots, &fakeConfigSource{}, nil, nil, nil)

	var mu sync.Mutex
	var passed []string

	var wg sync.WaitGroup
	for _, childID := range []string{"c1", "c2"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if err := svc.ValidateChildAssignment(ctx, id, "s1"); err == nil {
				mu.Lock()
				passed = append(passed, id)
				mu.Unlock()
			}
		}(childID)
	}
	wg.Wait()

	// Neither writer has committed yet, so both checks see one free seat.
	require.Len(t, passed, 2)

	// Both commit; the invariant is now broken and the audit check reports it.
	for _, id := range passed {
		slot.ChildAssignments = append(slot.ChildAssignments, models.ChildAssignment{ID: "ca-" + id, ChildID: id})
	}
	ok, err := svc.ValidateSlotIntegrity(ctx, "s1")
	assert.False(t, ok)
	assert.True(t, IsCode(err, CodeOverCapacity))
}
