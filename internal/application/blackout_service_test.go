package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/example/campus-scheduler/internal/application"
	"github.com/example/campus-scheduler/internal/testfixtures"
)

func TestCreateBlackoutValidation(t *testing.T) {
	t.Parallel()

	store := testfixtures.NewStore()
	service := application.NewBlackoutService(store, nil, discardLogger())

	_, err := service.Create(context.Background(), application.CreateBlackoutParams{})

	var vErr *application.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"roomID", "reason", "dayOfWeek", "startTime", "endTime"} {
		if _, ok := vErr.FieldErrors[field]; !ok {
			t.Errorf("expected field error for %q, got %v", field, vErr.FieldErrors)
		}
	}
}

func TestCreateBlackoutUnknownRoom(t *testing.T) {
	t.Parallel()

	store := testfixtures.NewStore()
	service := application.NewBlackoutService(store, nil, discardLogger())

	_, err := service.Create(context.Background(), application.CreateBlackoutParams{
		RoomID:    42,
		DayOfWeek: "Monday",
		StartTime: "13:00",
		EndTime:   "15:00",
		Reason:    "HVAC maintenance",
	})
	if !errors.Is(err, application.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateBlackoutSuccess(t *testing.T) {
	t.Parallel()

	store := testfixtures.NewStore()
	campus := testfixtures.NewFixture(t, store).SeedCampus()
	service := application.NewBlackoutService(store, nil, discardLogger())

	blackout, err := service.Create(context.Background(), application.CreateBlackoutParams{
		RoomID:    campus.RoomID,
		DayOfWeek: "Monday",
		StartTime: "13:00",
		EndTime:   "15:00",
		Reason:    "  HVAC maintenance  ",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if blackout.ID == 0 {
		t.Error("expected generated blackout ID")
	}
	if blackout.Reason != "HVAC maintenance" {
		t.Errorf("expected trimmed reason, got %q", blackout.Reason)
	}

	count, err := store.CountOverlappingBlackouts(context.Background(), campus.RoomID, blackout.Day, blackout.Start, blackout.End)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 overlapping blackout, got %d", count)
	}
}
