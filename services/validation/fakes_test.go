package validation

import (
	"context"
	"time"

	"carpool/models"
)

type fakeSlotStore struct {
	slots map[string]*models.ScheduleSlot
}

func newFakeSlotStore(slots ...*models.ScheduleSlot) *fakeSlotStore {
	store := &fakeSlotStore{slots: make(map[string]*models.ScheduleSlot)}
	for _, s := range slots {
		store.slots[s.ID] = s
	}
	return store
}

func (f *fakeSlotStore) GetByID(_ context.Context, id string) (*models.ScheduleSlot, error) {
	slot, ok := f.slots[id]
	if !ok {
		return nil, nil
	}
	return slot, nil
}

func (f *fakeSlotStore) GetByGroupAndDatetime(_ context.Context, groupID string, at time.Time, excludeID string) ([]models.ScheduleSlot, error) {
	var out []models.ScheduleSlot
	for _, s := range f.slots {
		if s.ID == excludeID {
			continue
		}
		if s.GroupID == groupID && s.Datetime.Equal(at) {
			out = append(out, *s)
		}
	}
	return out, nil
}

type fakeConfigSource struct {
	configs map[string]*models.GroupScheduleConfig
}

func (f *fakeConfigSource) GetScheduleConfig(_ context.Context, groupID string) (*models.GroupScheduleConfig, error) {
	return f.configs[groupID], nil
}

type fakeVehicleStore struct {
	vehicles map[string]*models.Vehicle
}

func (f *fakeVehicleStore) GetByID(_ context.Context, id string) (*models.Vehicle, error) {
	return f.vehicles[id], nil
}

type fakeUserStore struct {
	users map[string]*models.User
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	return f.users[id], nil
}

func intPtr(v int) *int { return &v }
