package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateGroupHandler creates a carpool group owned by the caller.
func (hb *HandlerBundle) CreateGroupHandler(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	grp, err := hb.GroupService.CreateGroup(c.Request.Context(), input.Name, c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, grp)
}

// GetGroupHandler returns a group by id.
func (hb *HandlerBundle) GetGroupHandler(c *gin.Context) {
	grp, err := hb.GroupService.GetGroup(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, grp)
}

// AddGroupMemberHandler adds a user to a group.
func (hb *HandlerBundle) AddGroupMemberHandler(c *gin.Context) {
	var input struct {
		UserID string `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := hb.GroupService.AddMember(c.Request.Context(), c.Param("id"), input.UserID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "added"})
}

// SetScheduleConfigHandler stores a group's allow-list of trip times.
func (hb *HandlerBundle) SetScheduleConfigHandler(c *gin.Context) {
	var input struct {
		Times map[string][]string `json:"times" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	cfg, err := hb.GroupService.SetScheduleConfig(c.Request.Context(), c.Param("id"), input.Times)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// GetScheduleConfigHandler returns a group's schedule template, 404 when
// none is configured.
func (hb *HandlerBundle) GetScheduleConfigHandler(c *gin.Context) {
	cfg, err := hb.GroupService.GetScheduleConfig(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if cfg == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no schedule configured for this group"})
		return
	}
	c.JSON(http.StatusOK, cfg)
}
