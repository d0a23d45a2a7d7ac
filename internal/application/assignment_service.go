package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/example/campus-scheduler/internal/persistence"
	"github.com/example/campus-scheduler/internal/scheduler"
)

// AssignmentService resolves pending requests into committed assignments and
// serves the assignment listing. It holds no state of its own beyond the
// duration of one call, so it is safe to invoke concurrently.
type AssignmentService struct {
	store  persistence.Store
	now    func() time.Time
	logger *slog.Logger
}

// NewAssignmentService wires dependencies for assignment operations.
func NewAssignmentService(store persistence.Store, now func() time.Time, logger *slog.Logger) *AssignmentService {
	if now == nil {
		now = time.Now
	}
	return &AssignmentService{store: store, now: now, logger: defaultLogger(logger)}
}

// Resolve commits a pending request into a concrete assignment.
//
// Conflict checks, the class lookup, the insert and the status transition all
// execute inside one store transaction, so a failure at any step leaves state
// unchanged. The pre-insert conflict checks exist to produce precise error
// kinds; the store's own guard inside CreateAssignment is the authoritative
// barrier and a late rejection from it maps onto the same conflict errors.
// Conflicts are terminal for the call: the caller must pick different
// parameters and resubmit.
func (s *AssignmentService) Resolve(ctx context.Context, params ResolveAssignmentParams) (ResolveResult, error) {
	if s == nil || s.store == nil {
		return ResolveResult{}, fmt.Errorf("AssignmentService is not configured")
	}

	vErr := &ValidationError{}
	if params.RequestID <= 0 {
		vErr.add("requestID", "requestID is required")
	}
	if params.RoomID <= 0 {
		vErr.add("roomID", "roomID is required")
	}
	day, start, end := validateSlotInput(params.DayOfWeek, params.StartTime, params.EndTime, vErr)
	if vErr.HasErrors() {
		return ResolveResult{}, vErr
	}

	logger := serviceLogger(ctx, s.logger, "assignment", "resolve",
		"request_id", params.RequestID, "room_id", params.RoomID)

	var result ResolveResult
	err := s.store.WithTx(ctx, func(tx persistence.Store) error {
		taken, err := tx.CountOverlappingAssignments(ctx, params.RoomID, day, start, end)
		if err != nil {
			return fmt.Errorf("failed to check assignment overlaps: %w", err)
		}
		if taken > 0 {
			return ErrAssignmentConflict
		}

		blocked, err := tx.CountOverlappingBlackouts(ctx, params.RoomID, day, start, end)
		if err != nil {
			return fmt.Errorf("failed to check blackout overlaps: %w", err)
		}
		if blocked > 0 {
			return ErrBlackoutConflict
		}

		classID, err := tx.GetRequestClassID(ctx, params.RequestID)
		if err != nil {
			if errors.Is(err, persistence.ErrNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to resolve request class: %w", err)
		}

		created, err := tx.CreateAssignment(ctx, persistence.Assignment{
			ClassID:   classID,
			RoomID:    params.RoomID,
			Day:       day,
			Start:     start,
			End:       end,
			CreatedAt: s.now().UTC(),
		})
		if err != nil {
			return mapAssignmentInsertError(err)
		}

		if err := tx.UpdateRequestStatus(ctx, params.RequestID, persistence.RequestStatusPending, persistence.RequestStatusAccepted); err != nil {
			logger.ErrorContext(ctx, "request status update failed after assignment insert; aborting resolution",
				"assignment_id", created.ID, "error", err)
			if errors.Is(err, persistence.ErrNotFound) {
				return ErrRequestNotPending
			}
			return fmt.Errorf("failed to accept request: %w", err)
		}

		result = ResolveResult{
			Assignment: Assignment{
				ID:        created.ID,
				ClassID:   created.ClassID,
				RoomID:    created.RoomID,
				Day:       created.Day,
				Start:     created.Start,
				End:       created.End,
				CreatedAt: created.CreatedAt,
			},
			RequestStatus: persistence.RequestStatusAccepted,
		}
		return nil
	})
	if err != nil {
		logger.InfoContext(ctx, "resolution failed", "error_kind", ErrorKind(err), "error", err)
		return ResolveResult{}, err
	}

	logger.InfoContext(ctx, "request resolved", "assignment_id", result.Assignment.ID)
	return result, nil
}

// List returns the joined assignment listing ordered by day, start time,
// building, then room.
func (s *AssignmentService) List(ctx context.Context) ([]AssignmentRow, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("AssignmentService is not configured")
	}

	details, err := s.store.ListAssignments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	rows := make([]AssignmentRow, 0, len(details))
	for _, detail := range details {
		rows = append(rows, AssignmentRow{
			DeptName:   detail.DeptName,
			ClassName:  detail.ClassName,
			SectionNum: detail.SectionNum,
			BldgName:   detail.BldgName,
			RoomNumber: detail.RoomNumber,
			Day:        detail.Day,
			Start:      detail.Start,
			End:        detail.End,
		})
	}
	return rows, nil
}

// validateSlotInput parses the day and time fields shared by assignment and
// blackout input, recording field errors as it goes.
func validateSlotInput(dayOfWeek, startTime, endTime string, vErr *ValidationError) (time.Weekday, scheduler.TimeOfDay, scheduler.TimeOfDay) {
	var day time.Weekday
	var start, end scheduler.TimeOfDay
	var dayErr, startErr, endErr error

	if dayOfWeek == "" {
		vErr.add("dayOfWeek", "dayOfWeek is required")
	} else if day, dayErr = scheduler.ParseDay(dayOfWeek); dayErr != nil {
		vErr.add("dayOfWeek", "dayOfWeek must be a weekday name")
	}

	if startTime == "" {
		vErr.add("startTime", "startTime is required")
	} else if start, startErr = scheduler.ParseTimeOfDay(startTime); startErr != nil {
		vErr.add("startTime", "startTime must be a clock time")
	}

	if endTime == "" {
		vErr.add("endTime", "endTime is required")
	} else if end, endErr = scheduler.ParseTimeOfDay(endTime); endErr != nil {
		vErr.add("endTime", "endTime must be a clock time")
	}

	if startErr == nil && endErr == nil && startTime != "" && endTime != "" && start >= end {
		vErr.add("time", "startTime must be before endTime")
	}

	return day, start, end
}

// mapAssignmentInsertError translates the store's authoritative guard
// rejections back into the caller-facing conflict kinds.
func mapAssignmentInsertError(err error) error {
	switch {
	case errors.Is(err, persistence.ErrAssignmentOverlap):
		return ErrAssignmentConflict
	case errors.Is(err, persistence.ErrBlackoutOverlap):
		return ErrBlackoutConflict
	case errors.Is(err, persistence.ErrForeignKeyViolation):
		return ErrNotFound
	}
	return fmt.Errorf("failed to create assignment: %w", err)
}
