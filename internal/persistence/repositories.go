package persistence

import (
	"context"
	"time"

	"github.com/example/campus-scheduler/internal/scheduler"
)

// DepartmentRepository exposes department rows.
type DepartmentRepository interface {
	CreateDepartment(ctx context.Context, department Department) (Department, error)
	ListDepartments(ctx context.Context) ([]Department, error)
}

// BuildingRepository exposes building rows.
type BuildingRepository interface {
	CreateBuilding(ctx context.Context, building Building) (Building, error)
}

// ClassRepository exposes class rows.
type ClassRepository interface {
	CreateClass(ctx context.Context, class Class) (Class, error)
}

// RoomRepository exposes room rows and the joined room listing.
type RoomRepository interface {
	CreateRoom(ctx context.Context, room Room) (Room, error)
	ListRooms(ctx context.Context) ([]RoomDetail, error)
}

// RequestRepository exposes request rows and the guarded status transition.
type RequestRepository interface {
	CreateRequest(ctx context.Context, request Request) (Request, error)
	// ListPendingRequests returns pending requests ordered by priority
	// descending, then submission time ascending.
	ListPendingRequests(ctx context.Context) ([]RequestDetail, error)
	// GetRequestClassID resolves the class behind a request, failing with
	// ErrNotFound when the request does not exist.
	GetRequestClassID(ctx context.Context, requestID int64) (int64, error)
	// UpdateRequestStatus transitions a request from one status to another.
	// It fails with ErrNotFound when no row is currently in the from status,
	// which makes the Pending to Accepted transition exactly-once.
	UpdateRequestStatus(ctx context.Context, requestID int64, from, to RequestStatus) error
}

// AssignmentRepository exposes assignment rows, overlap counting and the
// joined assignment listing.
type AssignmentRepository interface {
	// CreateAssignment inserts an assignment after re-checking both overlap
	// guards within the store's own transaction scope. It fails with
	// ErrAssignmentOverlap or ErrBlackoutOverlap; this guard is the
	// authoritative conflict barrier.
	CreateAssignment(ctx context.Context, assignment Assignment) (Assignment, error)
	// CountOverlappingAssignments counts assignments for the room and day
	// whose [start, end) interval strictly overlaps the given one.
	CountOverlappingAssignments(ctx context.Context, roomID int64, day time.Weekday, start, end scheduler.TimeOfDay) (int, error)
	// ListAssignments returns assignments ordered by day, start time,
	// building name, then room number.
	ListAssignments(ctx context.Context) ([]AssignmentDetail, error)
}

// BlackoutRepository exposes blackout rows and overlap counting.
type BlackoutRepository interface {
	CreateBlackout(ctx context.Context, blackout Blackout) (Blackout, error)
	CountOverlappingBlackouts(ctx context.Context, roomID int64, day time.Weekday, start, end scheduler.TimeOfDay) (int, error)
}

// Store aggregates every repository plus transactional execution. WithTx runs
// the callback against a transaction-scoped store view; the callback's error
// aborts the transaction and leaves state unchanged.
type Store interface {
	DepartmentRepository
	BuildingRepository
	ClassRepository
	RoomRepository
	RequestRepository
	AssignmentRepository
	BlackoutRepository

	WithTx(ctx context.Context, fn func(Store) error) error
}
