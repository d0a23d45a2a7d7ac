package testfixtures

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/campus-scheduler/internal/persistence"
)

func TestWithTxRestoresSnapshotOnError(t *testing.T) {
	t.Parallel()

	store := NewStore()
	campus := NewFixture(t, store).SeedCampus()
	ctx := context.Background()

	sentinel := errors.New("abort")
	err := store.WithTx(ctx, func(tx persistence.Store) error {
		if _, err := tx.CreateAssignment(ctx, persistence.Assignment{
			ClassID: campus.ClassID,
			RoomID:  campus.RoomID,
			Day:     time.Monday,
			Start:   9 * 60,
			End:     10 * 60,
		}); err != nil {
			t.Fatalf("insert inside transaction failed: %v", err)
		}
		if err := tx.UpdateRequestStatus(ctx, campus.RequestID, persistence.RequestStatusPending, persistence.RequestStatusAccepted); err != nil {
			t.Fatalf("transition inside transaction failed: %v", err)
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}

	assignments, err := store.ListAssignments(ctx)
	if err != nil {
		t.Fatalf("listing failed: %v", err)
	}
	if len(assignments) != 0 {
		t.Errorf("expected no assignments after rollback, got %d", len(assignments))
	}

	pending, err := store.ListPendingRequests(ctx)
	if err != nil {
		t.Fatalf("pending listing failed: %v", err)
	}
	if len(pending) != 1 {
		t.Errorf("expected request to remain pending, got %d", len(pending))
	}
}

func TestOverlapGuardMatchesSQLSemantics(t *testing.T) {
	t.Parallel()

	store := NewStore()
	campus := NewFixture(t, store).SeedCampus()
	ctx := context.Background()

	if _, err := store.CreateAssignment(ctx, persistence.Assignment{
		ClassID: campus.ClassID,
		RoomID:  campus.RoomID,
		Day:     time.Monday,
		Start:   9 * 60,
		End:     10 * 60,
	}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if _, err := store.CreateAssignment(ctx, persistence.Assignment{
		ClassID: campus.ClassID,
		RoomID:  campus.RoomID,
		Day:     time.Monday,
		Start:   9*60 + 30,
		End:     10*60 + 30,
	}); !errors.Is(err, persistence.ErrAssignmentOverlap) {
		t.Fatalf("expected ErrAssignmentOverlap, got %v", err)
	}

	if _, err := store.CreateAssignment(ctx, persistence.Assignment{
		ClassID: campus.ClassID,
		RoomID:  campus.RoomID,
		Day:     time.Monday,
		Start:   10 * 60,
		End:     11 * 60,
	}); err != nil {
		t.Fatalf("adjacent insert failed: %v", err)
	}
}

func TestDuplicateCatalogRowsRejected(t *testing.T) {
	t.Parallel()

	store := NewStore()
	ctx := context.Background()

	if _, err := store.CreateDepartment(ctx, persistence.Department{Name: "Physics"}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if _, err := store.CreateDepartment(ctx, persistence.Department{Name: "Physics"}); !errors.Is(err, persistence.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}
