package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDatetime(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	t.Run("accepted layouts", func(t *testing.T) {
		for _, raw := range []string{
			"2025-10-13T07:30:00Z",
			"2025-10-13T07:30:00",
			"2025-10-13T07:30",
			"2025-10-13 07:30",
		} {
			got, err := ParseDatetime(raw, time.UTC)
			require.NoError(t, err, raw)
			assert.True(t, got.Equal(time.Date(2025, 10, 13, 7, 30, 0, 0, time.UTC)), raw)
		}
	})

	t.Run("offset-less layouts use the given location", func(t *testing.T) {
		got, err := ParseDatetime("2025-10-13T07:30", tokyo)
		require.NoError(t, err)
		assert.True(t, got.Equal(time.Date(2025, 10, 12, 22, 30, 0, 0, time.UTC)))
	})

	t.Run("explicit offset wins over the location", func(t *testing.T) {
		got, err := ParseDatetime("2025-10-13T07:30:00Z", tokyo)
		require.NoError(t, err)
		assert.True(t, got.Equal(time.Date(2025, 10, 13, 7, 30, 0, 0, time.UTC)))
	})

	t.Run("rejects garbage and empty input", func(t *testing.T) {
		_, err := ParseDatetime("next tuesday-ish", time.UTC)
		assert.Error(t, err)
		_, err = ParseDatetime("   ", time.UTC)
		assert.Error(t, err)
	})
}

func TestSlotTimeInputNormalize(t *testing.T) {
	t.Run("datetime shape", func(t *testing.T) {
		got, err := SlotTimeInput{Datetime: "2025-10-13T07:30:00Z"}.Normalize()
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 10, 13, 7, 30, 0, 0, time.UTC), got)
	})

	t.Run("datetime wins over legacy fields", func(t *testing.T) {
		got, err := SlotTimeInput{
			Datetime: "2025-10-13T07:30:00Z",
			Day:      "FRIDAY", Time: "23:00", Week: "2025-10-15",
		}.Normalize()
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 10, 13, 7, 30, 0, 0, time.UTC), got)
	})

	t.Run("legacy shape resolves within the anchor's week", func(t *testing.T) {
		// 2025-10-15 is a Wednesday; MONDAY of that week is 2025-10-13.
		got, err := SlotTimeInput{Day: "MONDAY", Time: "07:30", Week: "2025-10-15"}.Normalize()
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 10, 13, 7, 30, 0, 0, time.UTC), got)
	})

	t.Run("anchor on a Sunday still maps to its own week", func(t *testing.T) {
		// 2025-10-19 is a Sunday, the last day of the 10-13 week.
		got, err := SlotTimeInput{Day: "friday", Time: "16:00", Week: "2025-10-19"}.Normalize()
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 10, 17, 16, 0, 0, 0, time.UTC), got)
	})

	t.Run("incomplete legacy shape", func(t *testing.T) {
		_, err := SlotTimeInput{Day: "MONDAY", Time: "07:30"}.Normalize()
		assert.Error(t, err)
	})

	t.Run("invalid pieces", func(t *testing.T) {
		_, err := SlotTimeInput{Day: "FUNDAY", Time: "07:30", Week: "2025-10-15"}.Normalize()
		assert.Error(t, err)
		_, err = SlotTimeInput{Day: "MONDAY", Time: "25:00", Week: "2025-10-15"}.Normalize()
		assert.Error(t, err)
		_, err = SlotTimeInput{Day: "MONDAY", Time: "07:30", Week: "mid-october"}.Normalize()
		assert.Error(t, err)
	})
}

func TestGroupScheduleConfigAllTimes(t *testing.T) {
	cfg := &GroupScheduleConfig{Times: map[string][]string{
		"MONDAY": {"08:00", "07:30"},
		"FRIDAY": {"16:00", "07:30"},
	}}
	assert.Equal(t, []string{"07:30", "08:00", "16:00"}, cfg.AllTimes())
}
