package persistence

import (
	"time"

	"github.com/example/campus-scheduler/internal/scheduler"
)

// Department groups classes and room requests.
type Department struct {
	ID   int64
	Name string
}

// Building owns rooms.
type Building struct {
	ID   int64
	Name string
}

// Class is a course section offered by a department.
type Class struct {
	ID         int64
	Name       string
	SectionNum int
	DeptID     int64
}

// Room is a schedulable space inside a building.
type Room struct {
	ID         int64
	RoomNumber string
	BldgID     int64
	Capacity   int
	Equipment  *string
	RoomType   *string
}

// RequestStatus tracks the lifecycle of a room request.
type RequestStatus string

const (
	// RequestStatusPending marks a request awaiting resolution.
	RequestStatusPending RequestStatus = "Pending"
	// RequestStatusAccepted marks a request that has been resolved into an assignment.
	RequestStatusAccepted RequestStatus = "Accepted"
)

// Request is a department's ask for a room slot for one class section.
type Request struct {
	ID              int64
	ClassID         int64
	DeptID          int64
	Priority        int
	PreferredTime   string
	EquipRequest    *string
	PreferredRoomID *int64
	PreferredBldgID *int64
	Status          RequestStatus
	DateSubmitted   time.Time
}

// Assignment commits a class to a room slot recurring weekly on a day.
type Assignment struct {
	ID        int64
	ClassID   int64
	RoomID    int64
	Day       time.Weekday
	Start     scheduler.TimeOfDay
	End       scheduler.TimeOfDay
	CreatedAt time.Time
}

// Blackout is an administrator-declared weekly unavailability window for a room.
type Blackout struct {
	ID        int64
	RoomID    int64
	Day       time.Weekday
	Start     scheduler.TimeOfDay
	End       scheduler.TimeOfDay
	Reason    string
	CreatedAt time.Time
}

// RoomDetail is a room row joined with its building for listings.
type RoomDetail struct {
	RoomID     int64
	RoomNumber string
	BldgName   string
	Capacity   int
	Equipment  *string
	RoomType   *string
}

// RequestDetail is a pending request joined with its class and department.
type RequestDetail struct {
	RequestID     int64
	DeptName      string
	ClassName     string
	SectionNum    int
	PreferredTime string
	EquipRequest  *string
	Priority      int
	DateSubmitted time.Time
}

// AssignmentDetail is an assignment joined across class, department, room and
// building for listings.
type AssignmentDetail struct {
	AssignmentID int64
	DeptName     string
	ClassName    string
	SectionNum   int
	BldgName     string
	RoomNumber   string
	Day          time.Weekday
	Start        scheduler.TimeOfDay
	End          scheduler.TimeOfDay
}
