package testfixtures

import (
	"context"
	"testing"
	"time"

	"github.com/example/campus-scheduler/internal/persistence"
)

// ReferenceTime is the fixed instant fixtures stamp onto submitted requests.
var ReferenceTime = time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

// Fixture seeds catalog rows through any persistence.Store and fails the test
// on the first error, keeping test setup to one-liners.
type Fixture struct {
	t     testing.TB
	store persistence.Store
}

// NewFixture wraps a store for test seeding.
func NewFixture(t testing.TB, store persistence.Store) *Fixture {
	t.Helper()
	return &Fixture{t: t, store: store}
}

// Department creates a department and returns its ID.
func (f *Fixture) Department(name string) int64 {
	f.t.Helper()
	created, err := f.store.CreateDepartment(context.Background(), persistence.Department{Name: name})
	if err != nil {
		f.t.Fatalf("failed to create department %q: %v", name, err)
	}
	return created.ID
}

// Building creates a building and returns its ID.
func (f *Fixture) Building(name string) int64 {
	f.t.Helper()
	created, err := f.store.CreateBuilding(context.Background(), persistence.Building{Name: name})
	if err != nil {
		f.t.Fatalf("failed to create building %q: %v", name, err)
	}
	return created.ID
}

// Class creates a class section and returns its ID.
func (f *Fixture) Class(deptID int64, name string, section int) int64 {
	f.t.Helper()
	created, err := f.store.CreateClass(context.Background(), persistence.Class{
		DeptID:     deptID,
		Name:       name,
		SectionNum: section,
	})
	if err != nil {
		f.t.Fatalf("failed to create class %q: %v", name, err)
	}
	return created.ID
}

// Room creates a room and returns its ID.
func (f *Fixture) Room(bldgID int64, roomNumber string, capacity int) int64 {
	f.t.Helper()
	created, err := f.store.CreateRoom(context.Background(), persistence.Room{
		BldgID:     bldgID,
		RoomNumber: roomNumber,
		Capacity:   capacity,
	})
	if err != nil {
		f.t.Fatalf("failed to create room %q: %v", roomNumber, err)
	}
	return created.ID
}

// PendingRequest creates a pending request for a class and returns its ID.
func (f *Fixture) PendingRequest(classID, deptID int64, priority int, preferredTime string) int64 {
	f.t.Helper()
	created, err := f.store.CreateRequest(context.Background(), persistence.Request{
		ClassID:       classID,
		DeptID:        deptID,
		Priority:      priority,
		PreferredTime: preferredTime,
		Status:        persistence.RequestStatusPending,
		DateSubmitted: ReferenceTime,
	})
	if err != nil {
		f.t.Fatalf("failed to create request for class %d: %v", classID, err)
	}
	return created.ID
}

// Campus seeds a department, building, class, room and pending request in one
// call and returns the IDs most tests need.
type Campus struct {
	DeptID    int64
	BldgID    int64
	ClassID   int64
	RoomID    int64
	RequestID int64
}

// SeedCampus builds the canonical single-room campus used across tests.
func (f *Fixture) SeedCampus() Campus {
	f.t.Helper()
	deptID := f.Department("Computer Science")
	bldgID := f.Building("Engineering Hall")
	classID := f.Class(deptID, "CS 350", 1)
	roomID := f.Room(bldgID, "101", 40)
	requestID := f.PendingRequest(classID, deptID, 3, "MWF 09:00-10:00")
	return Campus{DeptID: deptID, BldgID: bldgID, ClassID: classID, RoomID: roomID, RequestID: requestID}
}
