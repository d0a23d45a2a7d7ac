package main

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/example/campus-scheduler/internal/persistence"
	"github.com/example/campus-scheduler/internal/persistence/sqlite"
)

// seedDemoData inserts a small campus catalog plus a few pending requests so
// the API can be exercised immediately after first start. Safe to rerun;
// duplicate catalog rows are skipped.
func seedDemoData(ctx context.Context, storage *sqlite.Store, logger *slog.Logger) error {
	strPtr := func(s string) *string { return &s }

	departments := []persistence.Department{
		{Name: "Computer Science"},
		{Name: "Mathematics"},
		{Name: "Physics"},
	}
	deptIDs := make(map[string]int64, len(departments))
	for _, department := range departments {
		created, err := storage.CreateDepartment(ctx, department)
		if err != nil {
			if errors.Is(err, persistence.ErrDuplicate) {
				logger.Info("department already seeded", "name", department.Name)
				continue
			}
			return err
		}
		deptIDs[created.Name] = created.ID
	}
	if len(deptIDs) == 0 {
		// Rerun against an already seeded database; nothing more to add.
		return nil
	}

	buildings := []persistence.Building{
		{Name: "Engineering Hall"},
		{Name: "Science Center"},
	}
	bldgIDs := make(map[string]int64, len(buildings))
	for _, building := range buildings {
		created, err := storage.CreateBuilding(ctx, building)
		if err != nil {
			return err
		}
		bldgIDs[created.Name] = created.ID
	}

	rooms := []persistence.Room{
		{BldgID: bldgIDs["Engineering Hall"], RoomNumber: "101", Capacity: 40, Equipment: strPtr("Projector"), RoomType: strPtr("Lecture")},
		{BldgID: bldgIDs["Engineering Hall"], RoomNumber: "205", Capacity: 24, Equipment: strPtr("Workstations"), RoomType: strPtr("Lab")},
		{BldgID: bldgIDs["Science Center"], RoomNumber: "12", Capacity: 120, Equipment: strPtr("Projector, Audio"), RoomType: strPtr("Auditorium")},
	}
	for _, room := range rooms {
		if _, err := storage.CreateRoom(ctx, room); err != nil {
			return err
		}
	}

	classes := []persistence.Class{
		{DeptID: deptIDs["Computer Science"], Name: "CS 350", SectionNum: 1},
		{DeptID: deptIDs["Computer Science"], Name: "CS 101", SectionNum: 2},
		{DeptID: deptIDs["Mathematics"], Name: "MATH 221", SectionNum: 1},
		{DeptID: deptIDs["Physics"], Name: "PHYS 140", SectionNum: 1},
	}
	classIDs := make([]int64, 0, len(classes))
	for _, class := range classes {
		created, err := storage.CreateClass(ctx, class)
		if err != nil {
			return err
		}
		classIDs = append(classIDs, created.ID)
	}

	now := time.Now().UTC()
	requests := []persistence.Request{
		{ClassID: classIDs[0], DeptID: deptIDs["Computer Science"], Priority: 3, PreferredTime: "MWF 09:00-10:00", EquipRequest: strPtr("Projector")},
		{ClassID: classIDs[1], DeptID: deptIDs["Computer Science"], Priority: 1, PreferredTime: "TR 13:00-14:30"},
		{ClassID: classIDs[2], DeptID: deptIDs["Mathematics"], Priority: 2, PreferredTime: "MWF 10:00-11:00"},
		{ClassID: classIDs[3], DeptID: deptIDs["Physics"], Priority: 2, PreferredTime: "TR 09:30-11:00", EquipRequest: strPtr("Demonstration bench")},
	}
	for _, request := range requests {
		request.Status = persistence.RequestStatusPending
		request.DateSubmitted = now
		if _, err := storage.CreateRequest(ctx, request); err != nil {
			return err
		}
	}

	return nil
}
