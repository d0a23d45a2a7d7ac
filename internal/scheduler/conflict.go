package scheduler

// Booking pairs a committed assignment with the slot it occupies.
type Booking struct {
	AssignmentID int64
	Slot         Slot
}

// Conflict describes an existing booking that contends with a candidate slot.
type Conflict struct {
	WithAssignmentID int64
	Slot             Slot
}

// FindConflicts returns the bookings whose slots overlap the candidate,
// preserving the order of the input.
func FindConflicts(existing []Booking, candidate Slot) []Conflict {
	var conflicts []Conflict
	for _, booking := range existing {
		if booking.Slot.Overlaps(candidate) {
			conflicts = append(conflicts, Conflict{
				WithAssignmentID: booking.AssignmentID,
				Slot:             booking.Slot,
			})
		}
	}
	return conflicts
}
