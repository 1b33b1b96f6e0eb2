package validation

import (
	"time"

	"carpool/models"
)

// TimingValidator checks that candidate slot instants lie in the future.
type TimingValidator struct {
	Clock Clock
}

// Now returns the current instant from the injected clock, falling back to
// the system UTC clock when none was set.
func (v *TimingValidator) Now() time.Time {
	if v.Clock == nil {
		return time.Now().UTC()
	}
	return v.Clock.Now()
}

// ValidateSlotTiming parses candidate and rejects instants that are not
// strictly parseable or lie before the current UTC instant.
func (v *TimingValidator) ValidateSlotTiming(candidate string) error {
	t, err := models.ParseDatetime(candidate, time.UTC)
	if err != nil {
		return newError(CodeInvalidDateTime, "invalid datetime %q", candidate)
	}
	if t.Before(v.Now()) {
		return newError(CodePastDateTime, "datetime %s is in the past", t.UTC().Format(time.RFC3339))
	}
	return nil
}

// ValidateSlotTimingWithTimezone is ValidateSlotTiming with the "now"
// comparison performed on the civil date/time of the given IANA zone. A user
// nine hours ahead of UTC reaches "tomorrow" nine hours earlier in absolute
// terms; comparing raw UTC instants would reject slots that are still in the
// future from their local perspective. DST is handled by the zone database,
// not a fixed offset.
func (v *TimingValidator) ValidateSlotTimingWithTimezone(candidate, timezone string) error {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return newError(CodeInvalidDateTime, "invalid timezone %q: %v", timezone, err)
	}
	t, err := models.ParseDatetime(candidate, loc)
	if err != nil {
		return newError(CodeInvalidDateTime, "invalid datetime %q (timezone %s)", candidate, timezone)
	}

	localCandidate := t.In(loc)
	localNow := v.Now().In(loc)
	if localCandidate.Before(localNow) {
		return newError(CodePastDateTime,
			"datetime %s is in the past in timezone %s",
			localCandidate.Format("2006-01-02 15:04"), timezone)
	}
	return nil
}
