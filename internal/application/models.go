package application

import (
	"time"

	"github.com/example/campus-scheduler/internal/persistence"
	"github.com/example/campus-scheduler/internal/scheduler"
)

// ResolveAssignmentParams carries the administrator's resolution decision:
// which pending request to place into which room slot.
type ResolveAssignmentParams struct {
	RequestID int64
	RoomID    int64
	DayOfWeek string
	StartTime string
	EndTime   string
}

// Assignment is a committed room booking returned from a resolution.
type Assignment struct {
	ID        int64
	ClassID   int64
	RoomID    int64
	Day       time.Weekday
	Start     scheduler.TimeOfDay
	End       scheduler.TimeOfDay
	CreatedAt time.Time
}

// ResolveResult pairs the created assignment with the request's new status.
type ResolveResult struct {
	Assignment    Assignment
	RequestStatus persistence.RequestStatus
}

// AssignmentRow is one line of the joined assignment listing.
type AssignmentRow struct {
	DeptName   string
	ClassName  string
	SectionNum int
	BldgName   string
	RoomNumber string
	Day        time.Weekday
	Start      scheduler.TimeOfDay
	End        scheduler.TimeOfDay
}

// SubmitRequestParams carries a department's room request.
type SubmitRequestParams struct {
	ClassID         int64
	DeptID          int64
	Priority        int
	PreferredTime   string
	EquipRequest    *string
	PreferredRoomID *int64
	PreferredBldgID *int64
}

// RequestRow is one line of the pending request listing.
type RequestRow struct {
	RequestID     int64
	DeptName      string
	ClassName     string
	SectionNum    int
	PreferredTime string
	EquipRequest  *string
	Priority      int
	DateSubmitted time.Time
}

// DepartmentRow is one line of the department listing.
type DepartmentRow struct {
	DeptID   int64
	DeptName string
}

// RoomRow is one line of the joined room listing.
type RoomRow struct {
	RoomID     int64
	RoomNumber string
	BldgName   string
	Capacity   int
	Equipment  *string
	RoomType   *string
}

// CreateBlackoutParams carries an administrator's blackout declaration.
type CreateBlackoutParams struct {
	RoomID    int64
	DayOfWeek string
	StartTime string
	EndTime   string
	Reason    string
}

// Blackout is a committed weekly unavailability window.
type Blackout struct {
	ID     int64
	RoomID int64
	Day    time.Weekday
	Start  scheduler.TimeOfDay
	End    scheduler.TimeOfDay
	Reason string
}
