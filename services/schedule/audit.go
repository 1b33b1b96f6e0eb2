package schedule

import (
	"context"

	"carpool/utils"

	"go.uber.org/zap"
)

// CheckSlotIntegrity runs the canonical invariant check on one slot.
func (s *DefaultScheduleService) CheckSlotIntegrity(ctx context.Context, slotID string) (bool, error) {
	return s.Validator.ValidateSlotIntegrity(ctx, slotID)
}

// AuditUpcomingSlots sweeps every future slot through the integrity check.
// Because child-assignment writes are not serialized, a slot can end up
// over capacity; this audit is how such slots surface.
func (s *DefaultScheduleService) AuditUpcomingSlots(ctx context.Context) (*AuditResult, error) {
	logger := utils.GetLogger()

	slots, err := s.Slots.ListUpcoming(ctx, s.Validator.Timing.Now().UTC())
	if err != nil {
		return nil, err
	}

	result := &AuditResult{Checked: len(slots)}
	for _, slot := range slots {
		if _, err := s.Validator.ValidateSlotIntegrity(ctx, slot.ID); err != nil {
			result.Violations = append(result.Violations, err.Error())
			logger.Warn("slot integrity violation",
				zap.String("slotID", slot.ID),
				zap.String("groupID", slot.GroupID),
				zap.Error(err))
		}
	}
	return result, nil
}
