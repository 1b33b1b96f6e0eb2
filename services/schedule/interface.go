package schedule

import (
	"context"
	"time"

	groupRepo "carpool/database/repository/group"
	scheduleRepo "carpool/database/repository/schedule"
	userRepo "carpool/database/repository/user"
	vehicleRepo "carpool/database/repository/vehicle"
	"carpool/models"
	"carpool/services/validation"

	"github.com/hibiken/asynq"
)

// CreateSlotRequest is the payload for volunteering a vehicle for a trip
// time, which is what creates a slot.
type CreateSlotRequest struct {
	GroupID      string               `json:"groupId" binding:"required"`
	Time         models.SlotTimeInput `json:"time" binding:"required"`
	Timezone     string               `json:"timezone" binding:"required"`
	VehicleID    string               `json:"vehicleId" binding:"required"`
	DriverID     string               `json:"driverId,omitempty"`
	SeatOverride *int                 `json:"seatOverride,omitempty"`
}

// AssignVehicleRequest adds another vehicle to an existing slot.
type AssignVehicleRequest struct {
	VehicleID    string `json:"vehicleId" binding:"required"`
	DriverID     string `json:"driverId,omitempty"`
	SeatOverride *int   `json:"seatOverride,omitempty"`
}

// AuditResult summarizes one integrity audit pass.
type AuditResult struct {
	Checked    int      `json:"checked"`
	Violations []string `json:"violations,omitempty"`
}

// ScheduleService owns every mutating trip operation. Each method runs the
// relevant validators before touching storage.
type ScheduleService interface {
	CreateSlot(ctx context.Context, req CreateSlotRequest) (*models.ScheduleSlot, error)
	GetSlot(ctx context.Context, slotID string) (*models.ScheduleSlot, error)
	ListGroupSlots(ctx context.Context, groupID string, from time.Time) ([]models.ScheduleSlot, error)
	AssignVehicle(ctx context.Context, slotID string, req AssignVehicleRequest) (*models.ScheduleSlot, error)
	AssignDriver(ctx context.Context, slotID, vehicleID, driverID string) (*models.ScheduleSlot, error)
	AssignChild(ctx context.Context, slotID, childID, vehicleAssignmentID string) (*models.ScheduleSlot, error)
	OverrideSeats(ctx context.Context, slotID, vehicleID string, seats int) (*models.ScheduleSlot, error)
	RemoveVehicle(ctx context.Context, slotID, vehicleID string) (*models.ScheduleSlot, error)
	RemoveChild(ctx context.Context, slotID, childID string) (*models.ScheduleSlot, error)
	CheckSlotIntegrity(ctx context.Context, slotID string) (bool, error)
	AuditUpcomingSlots(ctx context.Context) (*AuditResult, error)
}

// DefaultScheduleService implements ScheduleService.
type DefaultScheduleService struct {
	Slots     scheduleRepo.ScheduleSlotRepository
	Groups    groupRepo.GroupRepository
	Vehicles  vehicleRepo.VehicleRepository
	Users     userRepo.UserRepository
	Validator *validation.DefaultValidationService

	// TaskClient enqueues trip reminders; nil disables reminders.
	TaskClient *asynq.Client
	// ReminderLead is how long before departure the reminder fires.
	ReminderLead time.Duration
}
