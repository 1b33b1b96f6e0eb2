package validation

import (
	"context"
	"time"
)

// ValidationService is the single contract request handlers consult before
// any mutating schedule operation. Every method either returns nil or a
// *ValidationError; failures are never caught or reinterpreted here, they
// propagate to the caller unchanged.
//
// The validators hold no state of their own and only read through their
// sources, so concurrent calls need no locking. That also means two
// concurrent requests can both observe a seat as free and both commit; the
// system accepts that race and surfaces it later through the integrity
// audit rather than serializing writes.
type ValidationService interface {
	ValidateSlotTiming(candidate string) error
	ValidateSlotTimingWithTimezone(candidate, timezone string) error
	ValidateScheduleTime(ctx context.Context, groupID string, candidate time.Time, timezone string) error
	ValidateSeatOverride(value int) error
	ValidateVehicleAssignment(ctx context.Context, vehicleID, scheduleSlotID string) error
	ValidateDriverAvailability(ctx context.Context, driverID, scheduleSlotID string) error
	ValidateChildAssignment(ctx context.Context, childID, scheduleSlotID string) error
	ValidateSlotIntegrity(ctx context.Context, scheduleSlotID string) (bool, error)
}

// DefaultValidationService composes the individual validators.
type DefaultValidationService struct {
	Timing    *TimingValidator
	Template  *ScheduleTemplateValidator
	Conflicts *ConflictDetector
	Integrity *SlotIntegrityValidator
}

// NewDefaultValidationService wires the validators over their read-only
// sources. A nil clock falls back to the system UTC clock.
func NewDefaultValidationService(slots SlotSource, groups GroupConfigSource, vehicles VehicleSource, users UserSource, clock Clock) *DefaultValidationService {
	if clock == nil {
		clock = SystemClock()
	}
	return &DefaultValidationService{
		Timing:    &TimingValidator{Clock: clock},
		Template:  &ScheduleTemplateValidator{Groups: groups},
		Conflicts: &ConflictDetector{Slots: slots, Vehicles: vehicles, Users: users},
		Integrity: &SlotIntegrityValidator{Slots: slots},
	}
}

func (s *DefaultValidationService) ValidateSlotTiming(candidate string) error {
	return s.Timing.ValidateSlotTiming(candidate)
}

func (s *DefaultValidationService) ValidateSlotTimingWithTimezone(candidate, timezone string) error {
	return s.Timing.ValidateSlotTimingWithTimezone(candidate, timezone)
}

func (s *DefaultValidationService) ValidateScheduleTime(ctx context.Context, groupID string, candidate time.Time, timezone string) error {
	return s.Template.ValidateScheduleTime(ctx, groupID, candidate, timezone)
}

func (s *DefaultValidationService) ValidateSeatOverride(value int) error {
	return ValidateSeatOverride(value)
}

func (s *DefaultValidationService) ValidateVehicleAssignment(ctx context.Context, vehicleID, scheduleSlotID string) error {
	return s.Conflicts.ValidateVehicleAssignment(ctx, vehicleID, scheduleSlotID)
}

func (s *DefaultValidationService) ValidateDriverAvailability(ctx context.Context, driverID, scheduleSlotID string) error {
	return s.Conflicts.ValidateDriverAvailability(ctx, driverID, scheduleSlotID)
}

func (s *DefaultValidationService) ValidateChildAssignment(ctx context.Context, childID, scheduleSlotID string) error {
	return s.Integrity.ValidateChildAssignment(ctx, childID, scheduleSlotID)
}

func (s *DefaultValidationService) ValidateSlotIntegrity(ctx context.Context, scheduleSlotID string) (bool, error) {
	return s.Integrity.ValidateSlotIntegrity(ctx, scheduleSlotID)
}
