package handlers

import (
	"net/http"
	"time"

	"carpool/services/schedule"
	"carpool/services/validation"

	"github.com/gin-gonic/gin"
)

// CreateSlotHandler volunteers a vehicle for a trip time, creating the slot.
func (hb *HandlerBundle) CreateSlotHandler(c *gin.Context) {
	var req schedule.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	slot, err := hb.ScheduleService.CreateSlot(c.Request.Context(), req)
	if err != nil {
		if validation.CodeOf(err) != "" {
			respondValidationError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, slot)
}

// GetSlotHandler returns one slot with its assignments.
func (hb *HandlerBundle) GetSlotHandler(c *gin.Context) {
	slot, err := hb.ScheduleService.GetSlot(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, slot)
}

// ListGroupSlotsHandler lists a group's upcoming slots.
func (hb *HandlerBundle) ListGroupSlotsHandler(c *gin.Context) {
	slots, err := hb.ScheduleService.ListGroupSlots(c.Request.Context(), c.Param("id"), time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// AssignVehicleHandler adds a vehicle to an existing slot.
func (hb *HandlerBundle) AssignVehicleHandler(c *gin.Context) {
	var req schedule.AssignVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	slot, err := hb.ScheduleService.AssignVehicle(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if validation.CodeOf(err) != "" {
			respondValidationError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, slot)
}

// AssignDriverHandler sets the driver on a slot's vehicle assignment.
func (hb *HandlerBundle) AssignDriverHandler(c *gin.Context) {
	var input struct {
		VehicleID string `json:"vehicleId" binding:"required"`
		DriverID  string `json:"driverId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	slot, err := hb.ScheduleService.AssignDriver(c.Request.Context(), c.Param("id"), input.VehicleID, input.DriverID)
	if err != nil {
		if validation.CodeOf(err) != "" {
			respondValidationError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, slot)
}

// AssignChildHandler adds a child to a slot.
func (hb *HandlerBundle) AssignChildHandler(c *gin.Context) {
	var input struct {
		ChildID             string `json:"childId" binding:"required"`
		VehicleAssignmentID string `json:"vehicleAssignmentId,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	slot, err := hb.ScheduleService.AssignChild(c.Request.Context(), c.Param("id"), input.ChildID, input.VehicleAssignmentID)
	if err != nil {
		if validation.CodeOf(err) != "" {
			respondValidationError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, slot)
}

// OverrideSeatsHandler sets a per-trip seat override on a vehicle assignment.
func (hb *HandlerBundle) OverrideSeatsHandler(c *gin.Context) {
	var input struct {
		VehicleID string `json:"vehicleId" binding:"required"`
		Seats     *int   `json:"seats" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	slot, err := hb.ScheduleService.OverrideSeats(c.Request.Context(), c.Param("id"), input.VehicleID, *input.Seats)
	if err != nil {
		if validation.CodeOf(err) != "" {
			respondValidationError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, slot)
}

// RemoveVehicleHandler removes a vehicle from a slot; removing the last one
// deletes the slot.
func (hb *HandlerBundle) RemoveVehicleHandler(c *gin.Context) {
	slot, err := hb.ScheduleService.RemoveVehicle(c.Request.Context(), c.Param("id"), c.Param("vehicleId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if slot == nil {
		c.JSON(http.StatusOK, gin.H{"status": "slot deleted"})
		return
	}
	c.JSON(http.StatusOK, slot)
}

// RemoveChildHandler removes a child from a slot.
func (hb *HandlerBundle) RemoveChildHandler(c *gin.Context) {
	slot, err := hb.ScheduleService.RemoveChild(c.Request.Context(), c.Param("id"), c.Param("childId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, slot)
}

// SlotIntegrityHandler runs the standalone consistency audit on one slot.
func (hb *HandlerBundle) SlotIntegrityHandler(c *gin.Context) {
	ok, err := hb.ScheduleService.CheckSlotIntegrity(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondValidationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"consistent": ok})
}
