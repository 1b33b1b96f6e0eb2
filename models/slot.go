package models

import (
	"fmt"
	"strings"
	"time"
)

// ScheduleSlot represents one occurrence of a recurring trip, anchored to a
// single absolute instant stored in UTC.
type ScheduleSlot struct {
	ID                 string              `bson:"id" json:"id"`
	GroupID            string              `bson:"groupId" json:"groupId"`
	Datetime           time.Time           `bson:"datetime" json:"datetime"`
	VehicleAssignments []VehicleAssignment `bson:"vehicleAssignments,omitempty" json:"vehicleAssignments,omitempty"`
	ChildAssignments   []ChildAssignment   `bson:"childAssignments,omitempty" json:"childAssignments,omitempty"`
	CreatedAt          time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// VehicleAssignment links a vehicle (and optionally a driver) to a slot.
// The vehicle document is denormalized onto the assignment so capacity math
// never needs a second fetch.
type VehicleAssignment struct {
	ID           string  `bson:"id" json:"id"`
	VehicleID    string  `bson:"vehicleId" json:"vehicleId"`
	Vehicle      Vehicle `bson:"vehicle" json:"vehicle"`
	DriverID     string  `bson:"driverId,omitempty" json:"driverId,omitempty"`
	SeatOverride *int    `bson:"seatOverride,omitempty" json:"seatOverride,omitempty"`
}

// ChildAssignment links one child to a slot, optionally pinned to a specific
// vehicle assignment within it.
type ChildAssignment struct {
	ID                  string `bson:"id" json:"id"`
	ChildID             string `bson:"childId" json:"childId"`
	VehicleAssignmentID string `bson:"vehicleAssignmentId,omitempty" json:"vehicleAssignmentId,omitempty"`
}

// SlotTimeInput carries the two slot time shapes accepted at the API
// boundary: the canonical absolute datetime, or the legacy day/time/week
// triple some older clients still send. Normalize collapses both into one
// UTC instant before anything downstream sees the value.
type SlotTimeInput struct {
	Datetime string `json:"datetime,omitempty"`
	Day      string `json:"day,omitempty"`  // weekday name, e.g. "MONDAY"
	Time     string `json:"time,omitempty"` // "HH:MM", 24h, UTC
	Week     string `json:"week,omitempty"` // week anchor date "2006-01-02" (any day of the target week)
}

var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// ParseDatetime parses a datetime string in one of the accepted layouts.
// Layouts without an offset are interpreted in loc.
func ParseDatetime(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty datetime")
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized datetime %q", raw)
}

// Normalize resolves the input to its canonical absolute UTC instant.
func (in SlotTimeInput) Normalize() (time.Time, error) {
	if in.Datetime != "" {
		t, err := ParseDatetime(in.Datetime, time.UTC)
		if err != nil {
			return time.Time{}, err
		}
		return t.UTC(), nil
	}

	// Legacy shape: week anchor + weekday name + HH:MM, all UTC.
	if in.Day == "" || in.Time == "" || in.Week == "" {
		return time.Time{}, fmt.Errorf("slot time requires either datetime or day/time/week")
	}
	anchor, err := time.ParseInLocation("2006-01-02", in.Week, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid week anchor %q", in.Week)
	}
	dayIndex, ok := weekdayIndex[strings.ToUpper(in.Day)]
	if !ok {
		return time.Time{}, fmt.Errorf("invalid weekday %q", in.Day)
	}
	var hour, minute int
	if _, err := fmt.Sscanf(in.Time, "%d:%d", &hour, &minute); err != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("invalid time of day %q", in.Time)
	}

	// Monday of the anchor's week, then offset to the requested weekday.
	monday := anchor.AddDate(0, 0, -int((anchor.Weekday()+6)%7))
	day := monday.AddDate(0, 0, dayIndex)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC), nil
}
