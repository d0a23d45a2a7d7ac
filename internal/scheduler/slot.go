package scheduler

import (
	"fmt"
	"strings"
	"time"
)

// MinutesPerDay bounds a TimeOfDay value. The end of an interval may equal
// this value to represent midnight at the close of the day.
const MinutesPerDay = 24 * 60

// TimeOfDay is a clock time expressed as minutes since midnight.
type TimeOfDay int

// ParseTimeOfDay parses a clock time in either 24-hour ("14:30") or
// 12-hour ("02:30 PM") notation.
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, fmt.Errorf("time of day is empty")
	}

	for _, layout := range []string{"15:04", "03:04 PM", "3:04 PM", "15:04:05"} {
		parsed, err := time.Parse(layout, strings.ToUpper(trimmed))
		if err == nil {
			return TimeOfDay(parsed.Hour()*60 + parsed.Minute()), nil
		}
	}

	return 0, fmt.Errorf("invalid time of day %q", value)
}

// Valid reports whether the value lies within a single day.
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t <= MinutesPerDay
}

// String renders the time in 24-hour notation.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60%24, int(t)%60)
}

// Clock12 renders the time in 12-hour notation with an AM/PM suffix,
// matching the presentation format used by the HTTP listings.
func (t TimeOfDay) Clock12() string {
	hour := int(t) / 60 % 24
	minute := int(t) % 60

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%02d:%02d %s", hour12, minute, suffix)
}

// ParseDay converts an English weekday name into a time.Weekday.
func ParseDay(value string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	}
	return time.Sunday, fmt.Errorf("invalid day of week %q", value)
}

// Slot identifies a reservable interval: a room, a weekday and a
// half-open [Start, End) time range.
type Slot struct {
	RoomID int64
	Day    time.Weekday
	Start  TimeOfDay
	End    TimeOfDay
}

// Overlaps applies the open-interval overlap test to two [start, end)
// ranges. Ranges that merely touch at a boundary do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd TimeOfDay) bool {
	return aStart < bEnd && bStart < aEnd
}

// Overlaps reports whether two slots contend for the same room time.
// Slots on different rooms or different days never overlap.
func (s Slot) Overlaps(other Slot) bool {
	if s.RoomID != other.RoomID || s.Day != other.Day {
		return false
	}
	return Overlaps(s.Start, s.End, other.Start, other.End)
}
