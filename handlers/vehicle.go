package handlers

import (
	"net/http"

	"carpool/models"

	"github.com/gin-gonic/gin"
)

// CreateVehicleHandler registers a family vehicle for the caller.
func (hb *HandlerBundle) CreateVehicleHandler(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Capacity int    `json:"capacity" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	vehicle := &models.Vehicle{
		OwnerID:  c.GetString("userID"),
		Name:     input.Name,
		Capacity: input.Capacity,
	}
	if _, err := hb.VehicleRepo.Create(c.Request.Context(), vehicle); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

// ListMyVehiclesHandler lists the caller's vehicles.
func (hb *HandlerBundle) ListMyVehiclesHandler(c *gin.Context) {
	vehicles, err := hb.VehicleRepo.ListByOwner(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}
