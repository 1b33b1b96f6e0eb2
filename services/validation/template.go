package validation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"carpool/models"
)

// GroupConfigSource is the read-only view of group schedule configuration
// the template validator needs.
type GroupConfigSource interface {
	GetScheduleConfig(ctx context.Context, groupID string) (*models.GroupScheduleConfig, error)
}

// ScheduleTemplateValidator checks candidate instants against a group's
// configured allow-list of weekday+time pairs.
type ScheduleTemplateValidator struct {
	Groups GroupConfigSource
}

// ValidateScheduleTime verifies that the candidate instant corresponds to
// one of the UTC weekday+time pairs configured for the group. The config is
// authored against UTC, so however the caller expressed the instant, its
// UTC projection decides: "Monday 01:00" in Tokyo is "Sunday 16:00" UTC and
// matches only a SUNDAY 16:00 entry. A group without a config permits
// nothing.
func (v *ScheduleTemplateValidator) ValidateScheduleTime(ctx context.Context, groupID string, candidate time.Time, timezone string) error {
	if _, err := time.LoadLocation(timezone); err != nil {
		return newError(CodeInvalidDateTime, "invalid timezone %q: %v", timezone, err)
	}

	cfg, err := v.Groups.GetScheduleConfig(ctx, groupID)
	if err != nil {
		return err
	}
	if cfg == nil || len(cfg.Times) == 0 {
		return newError(CodeNoScheduleConfig, "no schedule configured for group %s", groupID)
	}

	utc := candidate.UTC()
	weekday := strings.ToUpper(utc.Weekday().String())
	hour, minute := utc.Hour(), utc.Minute()

	for _, raw := range cfg.Times[weekday] {
		h, m, err := ParseClockTime(raw)
		if err != nil {
			// A malformed config entry can never match.
			continue
		}
		if h == hour && m == minute {
			return nil
		}
	}

	return newError(CodeTimeNotConfigured,
		"Time %02d:%02d is not configured for %s. Configured times: %s",
		hour, minute, weekday, strings.Join(cfg.AllTimes(), ", "))
}

// ParseClockTime parses an "HH:MM" string into its hour and minute parts.
// Matching is done on the structured pair rather than on formatted strings.
func ParseClockTime(raw string) (hour, minute int, err error) {
	if _, err := fmt.Sscanf(raw, "%d:%d", &hour, &minute); err != nil {
		return 0, 0, fmt.Errorf("invalid time of day %q", raw)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("time of day %q out of range", raw)
	}
	return hour, minute, nil
}
