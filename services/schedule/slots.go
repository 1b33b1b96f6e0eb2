package schedule

import (
	"context"
	"fmt"
	"time"

	"carpool/models"
	"carpool/services/tasks"
	"carpool/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateSlot validates the proposed trip time and vehicle, then creates the
// slot with its first vehicle assignment. A slot only ever comes into being
// because a family volunteers a vehicle for a time.
func (s *DefaultScheduleService) CreateSlot(ctx context.Context, req CreateSlotRequest) (*models.ScheduleSlot, error) {
	at, err := req.Time.Normalize()
	if err != nil {
		return nil, fmt.Errorf("invalid slot time: %w", err)
	}

	if err := s.Validator.ValidateSlotTimingWithTimezone(at.Format(time.RFC3339), req.Timezone); err != nil {
		return nil, err
	}
	if err := s.Validator.ValidateScheduleTime(ctx, req.GroupID, at, req.Timezone); err != nil {
		return nil, err
	}
	if req.SeatOverride != nil {
		if err := s.Validator.ValidateSeatOverride(*req.SeatOverride); err != nil {
			return nil, err
		}
	}

	// The slot does not exist yet, so the conflict check runs against the
	// group's peers at the proposed instant directly.
	if err := s.Validator.Conflicts.VehicleFreeAt(ctx, req.VehicleID, req.GroupID, at, ""); err != nil {
		return nil, err
	}
	if err := s.Validator.Conflicts.DriverFreeAt(ctx, req.DriverID, req.GroupID, at, ""); err != nil {
		return nil, err
	}

	vehicle, err := s.Vehicles.GetByID(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, fmt.Errorf("vehicle %s not found", req.VehicleID)
	}

	slot := &models.ScheduleSlot{
		GroupID:  req.GroupID,
		Datetime: at,
		VehicleAssignments: []models.VehicleAssignment{{
			ID:           uuid.New().String(),
			VehicleID:    vehicle.ID,
			Vehicle:      *vehicle,
			DriverID:     req.DriverID,
			SeatOverride: req.SeatOverride,
		}},
	}
	if _, err := s.Slots.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("failed to create schedule slot: %w", err)
	}

	s.enqueueReminder(slot)
	return slot, nil
}

func (s *DefaultScheduleService) GetSlot(ctx context.Context, slotID string) (*models.ScheduleSlot, error) {
	slot, err := s.Slots.GetByID(ctx, slotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, fmt.Errorf("schedule slot %s not found", slotID)
	}
	return slot, nil
}

func (s *DefaultScheduleService) ListGroupSlots(ctx context.Context, groupID string, from time.Time) ([]models.ScheduleSlot, error) {
	return s.Slots.ListByGroup(ctx, groupID, from)
}

func (s *DefaultScheduleService) enqueueReminder(slot *models.ScheduleSlot) {
	if s.TaskClient == nil {
		return
	}
	lead := s.ReminderLead
	if lead <= 0 {
		lead = time.Hour
	}
	fireAt := slot.Datetime.Add(-lead)

	payload := models.ReminderPayload{
		SlotID:   slot.ID,
		GroupID:  slot.GroupID,
		FireDate: slot.Datetime.UTC().Format(time.RFC3339),
		Title:    "Upcoming trip",
		Body:     fmt.Sprintf("Trip departs at %s", slot.Datetime.UTC().Format("Mon 15:04")),
	}
	task, opts, err := tasks.NewTripReminderTask(payload, fireAt)
	if err != nil {
		utils.GetLogger().Error("failed to build trip reminder task", zap.Error(err))
		return
	}
	if _, err := s.TaskClient.Enqueue(task, opts...); err != nil {
		utils.GetLogger().Error("failed to enqueue trip reminder",
			zap.String("slotID", slot.ID), zap.Error(err))
	}
}
