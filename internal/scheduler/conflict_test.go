package scheduler

import (
	"testing"
	"time"
)

func mustTime(t *testing.T, value string) TimeOfDay {
	t.Helper()
	parsed, err := ParseTimeOfDay(value)
	if err != nil {
		t.Fatalf("ParseTimeOfDay(%q) failed: %v", value, err)
	}
	return parsed
}

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		input string
		want  TimeOfDay
	}{
		{"09:00", 9 * 60},
		{"14:30", 14*60 + 30},
		{"00:00", 0},
		{"23:59", 23*60 + 59},
		{"02:30 PM", 14*60 + 30},
		{"9:05 am", 9*60 + 5},
	}

	for _, tc := range cases {
		got, err := ParseTimeOfDay(tc.input)
		if err != nil {
			t.Fatalf("ParseTimeOfDay(%q) failed: %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("ParseTimeOfDay(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}

	for _, invalid := range []string{"", "25:00", "noon", "9"} {
		if _, err := ParseTimeOfDay(invalid); err == nil {
			t.Errorf("ParseTimeOfDay(%q) should fail", invalid)
		}
	}
}

func TestTimeOfDayRendering(t *testing.T) {
	if got := TimeOfDay(9 * 60).String(); got != "09:00" {
		t.Errorf("String() = %q, want 09:00", got)
	}
	if got := TimeOfDay(9 * 60).Clock12(); got != "09:00 AM" {
		t.Errorf("Clock12() = %q, want 09:00 AM", got)
	}
	if got := TimeOfDay(13*60 + 5).Clock12(); got != "01:05 PM" {
		t.Errorf("Clock12() = %q, want 01:05 PM", got)
	}
	if got := TimeOfDay(0).Clock12(); got != "12:00 AM" {
		t.Errorf("Clock12() = %q, want 12:00 AM", got)
	}
	if got := TimeOfDay(12 * 60).Clock12(); got != "12:00 PM" {
		t.Errorf("Clock12() = %q, want 12:00 PM", got)
	}
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay("Monday")
	if err != nil || day != time.Monday {
		t.Fatalf("ParseDay(Monday) = %v, %v", day, err)
	}
	if day, err = ParseDay(" friday "); err != nil || day != time.Friday {
		t.Fatalf("ParseDay(friday) = %v, %v", day, err)
	}
	if _, err = ParseDay("Funday"); err == nil {
		t.Fatal("ParseDay(Funday) should fail")
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                         string
		aStart, aEnd, bStart, bEnd   TimeOfDay
		want                         bool
	}{
		{"identical", 540, 600, 540, 600, true},
		{"contained", 540, 600, 550, 560, true},
		{"partial front", 540, 600, 570, 630, true},
		{"partial back", 570, 630, 540, 600, true},
		{"touching boundary", 540, 600, 600, 660, false},
		{"touching boundary reversed", 600, 660, 540, 600, false},
		{"disjoint", 540, 600, 720, 780, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
				t.Errorf("Overlaps(%d,%d,%d,%d) = %v, want %v", tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
			}
		})
	}
}

func TestSlotOverlaps(t *testing.T) {
	base := Slot{RoomID: 101, Day: time.Monday, Start: mustTime(t, "09:00"), End: mustTime(t, "10:00")}

	t.Run("different room", func(t *testing.T) {
		other := base
		other.RoomID = 102
		if base.Overlaps(other) {
			t.Error("slots on different rooms must not overlap")
		}
	})

	t.Run("different day", func(t *testing.T) {
		other := base
		other.Day = time.Tuesday
		if base.Overlaps(other) {
			t.Error("slots on different days must not overlap")
		}
	})

	t.Run("same room and day", func(t *testing.T) {
		other := Slot{RoomID: 101, Day: time.Monday, Start: mustTime(t, "09:30"), End: mustTime(t, "10:30")}
		if !base.Overlaps(other) {
			t.Error("overlapping slots on the same room and day must conflict")
		}
	})
}

func TestFindConflicts(t *testing.T) {
	existing := []Booking{
		{AssignmentID: 1, Slot: Slot{RoomID: 101, Day: time.Monday, Start: 540, End: 600}},
		{AssignmentID: 2, Slot: Slot{RoomID: 101, Day: time.Tuesday, Start: 540, End: 600}},
		{AssignmentID: 3, Slot: Slot{RoomID: 205, Day: time.Monday, Start: 540, End: 600}},
	}

	conflicts := FindConflicts(existing, Slot{RoomID: 101, Day: time.Monday, Start: 570, End: 630})
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(conflicts))
	}
	if conflicts[0].WithAssignmentID != 1 {
		t.Errorf("conflict with assignment %d, want 1", conflicts[0].WithAssignmentID)
	}

	if got := FindConflicts(existing, Slot{RoomID: 101, Day: time.Monday, Start: 600, End: 660}); got != nil {
		t.Errorf("boundary-touching candidate should be conflict free, got %v", got)
	}
}
