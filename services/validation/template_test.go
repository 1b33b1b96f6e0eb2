package validation

import (
	"context"
	"testing"
	"time"

	"carpool/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateScheduleTime(t *testing.T) {
	ctx := context.Background()

	v := &ScheduleTemplateValidator{Groups: &fakeConfigSource{configs: map[string]*models.GroupScheduleConfig{
		"g1": {Times: map[string][]string{
			"SUNDAY": {"16:00"},
			"MONDAY": {"07:30", "08:00"},
		}},
		"g-empty": {Times: map[string][]string{}},
	}}}

	t.Run("UTC weekday and time decide, not the caller's local day", func(t *testing.T) {
		// Monday 01:00 in Tokyo, but Sunday 16:00 UTC: matches the SUNDAY key.
		candidate := time.Date(2025, 10, 12, 16, 0, 0, 0, time.UTC)
		require.NoError(t, v.ValidateScheduleTime(ctx, "g1", candidate, "Asia/Tokyo"))
	})

	t.Run("configured UTC pair passes", func(t *testing.T) {
		candidate := time.Date(2025, 10, 13, 7, 30, 0, 0, time.UTC) // Monday
		require.NoError(t, v.ValidateScheduleTime(ctx, "g1", candidate, "UTC"))
	})

	t.Run("unconfigured time enumerates all configured times", func(t *testing.T) {
		candidate := time.Date(2025, 10, 13, 5, 30, 0, 0, time.UTC) // Monday
		err := v.ValidateScheduleTime(ctx, "g1", candidate, "UTC")
		require.Error(t, err)
		assert.True(t, IsCode(err, CodeTimeNotConfigured))
		assert.Contains(t, err.Error(), "Time 05:30 is not configured for MONDAY")
		// The full sorted list across every weekday, not just Monday's.
		assert.Contains(t, err.Error(), "07:30, 08:00, 16:00")
	})

	t.Run("weekday with no entries fails", func(t *testing.T) {
		candidate := time.Date(2025, 10, 14, 7, 30, 0, 0, time.UTC) // Tuesday
		err := v.ValidateScheduleTime(ctx, "g1", candidate, "UTC")
		require.Error(t, err)
		assert.True(t, IsCode(err, CodeTimeNotConfigured))
		assert.Contains(t, err.Error(), "TUESDAY")
	})

	t.Run("missing config fails closed", func(t *testing.T) {
		candidate := time.Date(2025, 10, 13, 7, 30, 0, 0, time.UTC)
		err := v.ValidateScheduleTime(ctx, "nope", candidate, "UTC")
		require.Error(t, err)
		assert.True(t, IsCode(err, CodeNoScheduleConfig))
	})

	t.Run("empty config fails closed", func(t *testing.T) {
		candidate := time.Date(2025, 10, 13, 7, 30, 0, 0, time.UTC)
		err := v.ValidateScheduleTime(ctx, "g-empty", candidate, "UTC")
		require.Error(t, err)
		assert.True(t, IsCode(err, CodeNoScheduleConfig))
	})

	t.Run("invalid timezone fails", func(t *testing.T) {
		candidate := time.Date(2025, 10, 13, 7, 30, 0, 0, time.UTC)
		err := v.ValidateScheduleTime(ctx, "g1", candidate, "Not/AZone")
		require.Error(t, err)
		assert.True(t, IsCode(err, CodeInvalidDateTime))
	})
}

func TestParseClockTime(t *testing.T) {
	h, m, err := ParseClockTime("07:30")
	require.NoError(t, err)
	assert.Equal(t, 7, h)
	assert.Equal(t, 30, m)

	_, _, err = ParseClockTime("24:00")
	assert.Error(t, err)

	_, _, err = ParseClockTime("bogus")
	assert.Error(t, err)
}
