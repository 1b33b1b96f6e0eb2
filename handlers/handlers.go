package handlers

import (
	"net/http"

	userRepo "carpool/database/repository/user"
	vehicleRepo "carpool/database/repository/vehicle"
	"carpool/services/group"
	"carpool/services/schedule"
	"carpool/services/user"
	"carpool/services/validation"

	"github.com/gin-gonic/gin"
)

// HandlerBundle carries the services the HTTP handlers delegate to.
type HandlerBundle struct {
	UserService     user.UserService
	GroupService    group.GroupService
	ScheduleService schedule.ScheduleService
	UserRepo        userRepo.UserRepository
	VehicleRepo     vehicleRepo.VehicleRepository
}

func NewHandlerBundle(us user.UserService, gs group.GroupService, ss schedule.ScheduleService, ur userRepo.UserRepository, vr vehicleRepo.VehicleRepository) *HandlerBundle {
	return &HandlerBundle{
		UserService:     us,
		GroupService:    gs,
		ScheduleService: ss,
		UserRepo:        ur,
		VehicleRepo:     vr,
	}
}

// respondValidationError maps a validation failure to its HTTP status. Any
// other error falls through to a 500.
func respondValidationError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch validation.CodeOf(err) {
	case validation.CodeSlotNotFound:
		status = http.StatusNotFound
	case validation.CodeInvalidDateTime,
		validation.CodePastDateTime,
		validation.CodeTimeNotConfigured,
		validation.CodeNoVehicles,
		validation.CodeNegativeOverride,
		validation.CodeOverrideTooHigh:
		status = http.StatusBadRequest
	case validation.CodeNoScheduleConfig,
		validation.CodeVehicleConflict,
		validation.CodeDriverConflict,
		validation.CodeAtCapacity,
		validation.CodeOverCapacity:
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
