package application_test

import (
	"context"
	"testing"

	"github.com/example/campus-scheduler/internal/application"
	"github.com/example/campus-scheduler/internal/testfixtures"
)

func TestListDepartmentsOrderedByName(t *testing.T) {
	t.Parallel()

	store := testfixtures.NewStore()
	fixture := testfixtures.NewFixture(t, store)
	fixture.Department("Physics")
	fixture.Department("Computer Science")
	fixture.Department("Mathematics")

	service := application.NewCatalogService(store, discardLogger())
	rows, err := service.ListDepartments(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	want := []string{"Computer Science", "Mathematics", "Physics"}
	if len(rows) != len(want) {
		t.Fatalf("expected %d departments, got %d", len(want), len(rows))
	}
	for i, name := range want {
		if rows[i].DeptName != name {
			t.Errorf("position %d: expected %q, got %q", i, name, rows[i].DeptName)
		}
	}
}

func TestListRoomsJoinsBuildings(t *testing.T) {
	t.Parallel()

	store := testfixtures.NewStore()
	fixture := testfixtures.NewFixture(t, store)
	science := fixture.Building("Science Center")
	engineering := fixture.Building("Engineering Hall")
	fixture.Room(science, "12", 120)
	fixture.Room(engineering, "205", 24)
	fixture.Room(engineering, "101", 40)

	service := application.NewCatalogService(store, discardLogger())
	rows, err := service.ListRooms(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rooms, got %d", len(rows))
	}

	wantOrder := []struct {
		bldg string
		room string
	}{
		{"Engineering Hall", "101"},
		{"Engineering Hall", "205"},
		{"Science Center", "12"},
	}
	for i, want := range wantOrder {
		if rows[i].BldgName != want.bldg || rows[i].RoomNumber != want.room {
			t.Errorf("position %d: expected %s/%s, got %s/%s", i, want.bldg, want.room, rows[i].BldgName, rows[i].RoomNumber)
		}
	}
}
