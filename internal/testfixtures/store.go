// Package testfixtures provides an in-memory persistence.Store, deterministic
// fixture builders and a controllable clock for tests.
package testfixtures

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/example/campus-scheduler/internal/persistence"
	"github.com/example/campus-scheduler/internal/scheduler"
)

// Store is an in-memory persistence.Store. WithTx serializes callers with a
// mutex and restores a snapshot when the callback fails, mirroring the
// rollback behavior of the SQLite store.
type Store struct {
	mu     sync.RWMutex
	txMu   sync.Mutex
	nextID int64

	departments map[int64]persistence.Department
	buildings   map[int64]persistence.Building
	classes     map[int64]persistence.Class
	rooms       map[int64]persistence.Room
	requests    map[int64]persistence.Request
	assignments map[int64]persistence.Assignment
	blackouts   map[int64]persistence.Blackout
}

var _ persistence.Store = (*Store)(nil)

// NewStore returns an empty in-memory store.
func NewStore() *Store {
	return &Store{
		departments: make(map[int64]persistence.Department),
		buildings:   make(map[int64]persistence.Building),
		classes:     make(map[int64]persistence.Class),
		rooms:       make(map[int64]persistence.Room),
		requests:    make(map[int64]persistence.Request),
		assignments: make(map[int64]persistence.Assignment),
		blackouts:   make(map[int64]persistence.Blackout),
	}
}

// WithTx serializes transactional callers and rolls the store back to its
// pre-transaction state when fn fails.
func (s *Store) WithTx(ctx context.Context, fn func(persistence.Store) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	snapshot := s.snapshot()
	if err := fn(s); err != nil {
		s.restore(snapshot)
		return err
	}
	return nil
}

type storeSnapshot struct {
	nextID      int64
	departments map[int64]persistence.Department
	buildings   map[int64]persistence.Building
	classes     map[int64]persistence.Class
	rooms       map[int64]persistence.Room
	requests    map[int64]persistence.Request
	assignments map[int64]persistence.Assignment
	blackouts   map[int64]persistence.Blackout
}

func (s *Store) snapshot() storeSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return storeSnapshot{
		nextID:      s.nextID,
		departments: copyMap(s.departments),
		buildings:   copyMap(s.buildings),
		classes:     copyMap(s.classes),
		rooms:       copyMap(s.rooms),
		requests:    copyMap(s.requests),
		assignments: copyMap(s.assignments),
		blackouts:   copyMap(s.blackouts),
	}
}

func (s *Store) restore(snapshot storeSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID = snapshot.nextID
	s.departments = snapshot.departments
	s.buildings = snapshot.buildings
	s.classes = snapshot.classes
	s.rooms = snapshot.rooms
	s.requests = snapshot.requests
	s.assignments = snapshot.assignments
	s.blackouts = snapshot.blackouts
}

func copyMap[V any](in map[int64]V) map[int64]V {
	out := make(map[int64]V, len(in))
	for id, value := range in {
		out[id] = value
	}
	return out
}

// allocID issues the next surrogate ID. Callers must hold mu.
func (s *Store) allocID() int64 {
	s.nextID++
	return s.nextID
}

// CreateDepartment stores a department.
func (s *Store) CreateDepartment(ctx context.Context, department persistence.Department) (persistence.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if department.Name == "" {
		return persistence.Department{}, persistence.ErrConstraintViolation
	}
	for _, existing := range s.departments {
		if existing.Name == department.Name {
			return persistence.Department{}, persistence.ErrDuplicate
		}
	}

	department.ID = s.allocID()
	s.departments[department.ID] = department
	return department, nil
}

// ListDepartments returns departments ordered by name.
func (s *Store) ListDepartments(ctx context.Context) ([]persistence.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	departments := make([]persistence.Department, 0, len(s.departments))
	for _, department := range s.departments {
		departments = append(departments, department)
	}
	sort.Slice(departments, func(i, j int) bool {
		return departments[i].Name < departments[j].Name
	})
	return departments, nil
}

// CreateBuilding stores a building.
func (s *Store) CreateBuilding(ctx context.Context, building persistence.Building) (persistence.Building, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if building.Name == "" {
		return persistence.Building{}, persistence.ErrConstraintViolation
	}
	for _, existing := range s.buildings {
		if existing.Name == building.Name {
			return persistence.Building{}, persistence.ErrDuplicate
		}
	}

	building.ID = s.allocID()
	s.buildings[building.ID] = building
	return building, nil
}

// CreateClass stores a class section.
func (s *Store) CreateClass(ctx context.Context, class persistence.Class) (persistence.Class, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if class.Name == "" {
		return persistence.Class{}, persistence.ErrConstraintViolation
	}
	if _, ok := s.departments[class.DeptID]; !ok {
		return persistence.Class{}, persistence.ErrForeignKeyViolation
	}
	for _, existing := range s.classes {
		if existing.Name == class.Name && existing.SectionNum == class.SectionNum {
			return persistence.Class{}, persistence.ErrDuplicate
		}
	}

	class.ID = s.allocID()
	s.classes[class.ID] = class
	return class, nil
}

// CreateRoom stores a room.
func (s *Store) CreateRoom(ctx context.Context, room persistence.Room) (persistence.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if room.RoomNumber == "" {
		return persistence.Room{}, persistence.ErrConstraintViolation
	}
	if _, ok := s.buildings[room.BldgID]; !ok {
		return persistence.Room{}, persistence.ErrForeignKeyViolation
	}
	for _, existing := range s.rooms {
		if existing.BldgID == room.BldgID && existing.RoomNumber == room.RoomNumber {
			return persistence.Room{}, persistence.ErrDuplicate
		}
	}

	room.ID = s.allocID()
	s.rooms[room.ID] = room
	return room, nil
}

// ListRooms returns rooms joined with their building, ordered by building
// name then room number.
func (s *Store) ListRooms(ctx context.Context) ([]persistence.RoomDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	details := make([]persistence.RoomDetail, 0, len(s.rooms))
	for _, room := range s.rooms {
		details = append(details, persistence.RoomDetail{
			RoomID:     room.ID,
			RoomNumber: room.RoomNumber,
			BldgName:   s.buildings[room.BldgID].Name,
			Capacity:   room.Capacity,
			Equipment:  room.Equipment,
			RoomType:   room.RoomType,
		})
	}
	sort.Slice(details, func(i, j int) bool {
		if details[i].BldgName != details[j].BldgName {
			return details[i].BldgName < details[j].BldgName
		}
		return details[i].RoomNumber < details[j].RoomNumber
	})
	return details, nil
}

// CreateRequest stores a room request.
func (s *Store) CreateRequest(ctx context.Context, request persistence.Request) (persistence.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if request.ClassID == 0 || request.DeptID == 0 || request.PreferredTime == "" {
		return persistence.Request{}, persistence.ErrConstraintViolation
	}
	if _, ok := s.classes[request.ClassID]; !ok {
		return persistence.Request{}, persistence.ErrForeignKeyViolation
	}
	if _, ok := s.departments[request.DeptID]; !ok {
		return persistence.Request{}, persistence.ErrForeignKeyViolation
	}
	if request.Status == "" {
		request.Status = persistence.RequestStatusPending
	}
	if request.DateSubmitted.IsZero() {
		request.DateSubmitted = time.Now().UTC()
	}

	request.ID = s.allocID()
	s.requests[request.ID] = request
	return request, nil
}

// ListPendingRequests returns pending requests joined with class and
// department, ordered by priority descending then submission time ascending.
func (s *Store) ListPendingRequests(ctx context.Context) ([]persistence.RequestDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var details []persistence.RequestDetail
	for _, request := range s.requests {
		if request.Status != persistence.RequestStatusPending {
			continue
		}
		class := s.classes[request.ClassID]
		details = append(details, persistence.RequestDetail{
			RequestID:     request.ID,
			DeptName:      s.departments[request.DeptID].Name,
			ClassName:     class.Name,
			SectionNum:    class.SectionNum,
			PreferredTime: request.PreferredTime,
			EquipRequest:  request.EquipRequest,
			Priority:      request.Priority,
			DateSubmitted: request.DateSubmitted,
		})
	}
	sort.Slice(details, func(i, j int) bool {
		if details[i].Priority != details[j].Priority {
			return details[i].Priority > details[j].Priority
		}
		if !details[i].DateSubmitted.Equal(details[j].DateSubmitted) {
			return details[i].DateSubmitted.Before(details[j].DateSubmitted)
		}
		return details[i].RequestID < details[j].RequestID
	})
	return details, nil
}

// GetRequestClassID resolves the class referenced by a request.
func (s *Store) GetRequestClassID(ctx context.Context, requestID int64) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	request, ok := s.requests[requestID]
	if !ok {
		return 0, persistence.ErrNotFound
	}
	return request.ClassID, nil
}

// UpdateRequestStatus transitions a request between statuses, guarded on the
// current status.
func (s *Store) UpdateRequestStatus(ctx context.Context, requestID int64, from, to persistence.RequestStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	request, ok := s.requests[requestID]
	if !ok || request.Status != from {
		return persistence.ErrNotFound
	}
	request.Status = to
	s.requests[requestID] = request
	return nil
}

// CreateAssignment stores an assignment after re-checking both overlap guards.
func (s *Store) CreateAssignment(ctx context.Context, assignment persistence.Assignment) (persistence.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !assignment.Start.Valid() || !assignment.End.Valid() || assignment.Start >= assignment.End {
		return persistence.Assignment{}, persistence.ErrConstraintViolation
	}
	if _, ok := s.classes[assignment.ClassID]; !ok {
		return persistence.Assignment{}, persistence.ErrForeignKeyViolation
	}
	if _, ok := s.rooms[assignment.RoomID]; !ok {
		return persistence.Assignment{}, persistence.ErrForeignKeyViolation
	}

	candidate := scheduler.Slot{RoomID: assignment.RoomID, Day: assignment.Day, Start: assignment.Start, End: assignment.End}
	for _, existing := range s.assignments {
		if candidate.Overlaps(scheduler.Slot{RoomID: existing.RoomID, Day: existing.Day, Start: existing.Start, End: existing.End}) {
			return persistence.Assignment{}, persistence.ErrAssignmentOverlap
		}
	}
	for _, blackout := range s.blackouts {
		if candidate.Overlaps(scheduler.Slot{RoomID: blackout.RoomID, Day: blackout.Day, Start: blackout.Start, End: blackout.End}) {
			return persistence.Assignment{}, persistence.ErrBlackoutOverlap
		}
	}

	if assignment.CreatedAt.IsZero() {
		assignment.CreatedAt = time.Now().UTC()
	}
	assignment.ID = s.allocID()
	s.assignments[assignment.ID] = assignment
	return assignment, nil
}

// CountOverlappingAssignments applies the open-interval overlap test against
// stored assignments.
func (s *Store) CountOverlappingAssignments(ctx context.Context, roomID int64, day time.Weekday, start, end scheduler.TimeOfDay) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	candidate := scheduler.Slot{RoomID: roomID, Day: day, Start: start, End: end}
	count := 0
	for _, existing := range s.assignments {
		if candidate.Overlaps(scheduler.Slot{RoomID: existing.RoomID, Day: existing.Day, Start: existing.Start, End: existing.End}) {
			count++
		}
	}
	return count, nil
}

// ListAssignments returns the joined assignment listing ordered by day, start
// time, building name, then room number.
func (s *Store) ListAssignments(ctx context.Context) ([]persistence.AssignmentDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	details := make([]persistence.AssignmentDetail, 0, len(s.assignments))
	for _, assignment := range s.assignments {
		class := s.classes[assignment.ClassID]
		room := s.rooms[assignment.RoomID]
		details = append(details, persistence.AssignmentDetail{
			AssignmentID: assignment.ID,
			DeptName:     s.departments[class.DeptID].Name,
			ClassName:    class.Name,
			SectionNum:   class.SectionNum,
			BldgName:     s.buildings[room.BldgID].Name,
			RoomNumber:   room.RoomNumber,
			Day:          assignment.Day,
			Start:        assignment.Start,
			End:          assignment.End,
		})
	}
	sort.Slice(details, func(i, j int) bool {
		if details[i].Day != details[j].Day {
			return details[i].Day < details[j].Day
		}
		if details[i].Start != details[j].Start {
			return details[i].Start < details[j].Start
		}
		if details[i].BldgName != details[j].BldgName {
			return details[i].BldgName < details[j].BldgName
		}
		return details[i].RoomNumber < details[j].RoomNumber
	})
	return details, nil
}

// CreateBlackout stores a blackout window.
func (s *Store) CreateBlackout(ctx context.Context, blackout persistence.Blackout) (persistence.Blackout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !blackout.Start.Valid() || !blackout.End.Valid() || blackout.Start >= blackout.End || blackout.Reason == "" {
		return persistence.Blackout{}, persistence.ErrConstraintViolation
	}
	if _, ok := s.rooms[blackout.RoomID]; !ok {
		return persistence.Blackout{}, persistence.ErrForeignKeyViolation
	}

	if blackout.CreatedAt.IsZero() {
		blackout.CreatedAt = time.Now().UTC()
	}
	blackout.ID = s.allocID()
	s.blackouts[blackout.ID] = blackout
	return blackout, nil
}

// CountOverlappingBlackouts applies the open-interval overlap test against
// stored blackouts.
func (s *Store) CountOverlappingBlackouts(ctx context.Context, roomID int64, day time.Weekday, start, end scheduler.TimeOfDay) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	candidate := scheduler.Slot{RoomID: roomID, Day: day, Start: start, End: end}
	count := 0
	for _, blackout := range s.blackouts {
		if candidate.Overlaps(scheduler.Slot{RoomID: blackout.RoomID, Day: blackout.Day, Start: blackout.Start, End: blackout.End}) {
			count++
		}
	}
	return count, nil
}
