package models

import (
	"sort"
	"strings"
	"time"
)

// Group is a set of families sharing a recurring-trip schedule.
type Group struct {
	ID             string               `bson:"id" json:"id"`
	Name           string               `bson:"name" json:"name"`
	OwnerID        string               `bson:"ownerId" json:"ownerId"`
	MemberIDs      []string             `bson:"memberIds,omitempty" json:"memberIds,omitempty"`
	ScheduleConfig *GroupScheduleConfig `bson:"scheduleConfig,omitempty" json:"scheduleConfig,omitempty"`
	CreatedAt      time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// GroupScheduleConfig is the per-group allow-list of trip times: a mapping
// from weekday name (MONDAY..SUNDAY) to an ordered set of "HH:MM" strings,
// stored and compared in UTC. A group without a config permits no trips.
type GroupScheduleConfig struct {
	Times map[string][]string `bson:"times" json:"times"`
}

// WeekdayNames lists the accepted weekday keys in calendar order.
var WeekdayNames = []string{
	"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY",
}

var weekdayIndex = func() map[string]int {
	m := make(map[string]int, len(WeekdayNames))
	for i, name := range WeekdayNames {
		m[name] = i
	}
	return m
}()

// IsWeekdayName reports whether name is a valid weekday key.
func IsWeekdayName(name string) bool {
	_, ok := weekdayIndex[strings.ToUpper(name)]
	return ok
}

// AllTimes returns every configured "HH:MM" value across all weekdays,
// sorted and deduplicated.
func (c *GroupScheduleConfig) AllTimes() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, times := range c.Times {
		for _, t := range times {
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}
