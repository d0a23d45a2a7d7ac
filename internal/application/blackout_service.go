package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/example/campus-scheduler/internal/persistence"
)

// BlackoutService records maintenance and event holds for rooms.
type BlackoutService struct {
	store  persistence.Store
	now    func() time.Time
	logger *slog.Logger
}

// NewBlackoutService wires dependencies for blackout operations.
func NewBlackoutService(store persistence.Store, now func() time.Time, logger *slog.Logger) *BlackoutService {
	if now == nil {
		now = time.Now
	}
	return &BlackoutService{store: store, now: now, logger: defaultLogger(logger)}
}

// Create validates and records a weekly blackout window. All five fields are
// required.
func (s *BlackoutService) Create(ctx context.Context, params CreateBlackoutParams) (Blackout, error) {
	if s == nil || s.store == nil {
		return Blackout{}, fmt.Errorf("BlackoutService is not configured")
	}

	vErr := &ValidationError{}
	if params.RoomID <= 0 {
		vErr.add("roomID", "roomID is required")
	}
	if strings.TrimSpace(params.Reason) == "" {
		vErr.add("reason", "reason is required")
	}
	day, start, end := validateSlotInput(params.DayOfWeek, params.StartTime, params.EndTime, vErr)
	if vErr.HasErrors() {
		return Blackout{}, vErr
	}

	created, err := s.store.CreateBlackout(ctx, persistence.Blackout{
		RoomID:    params.RoomID,
		Day:       day,
		Start:     start,
		End:       end,
		Reason:    strings.TrimSpace(params.Reason),
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, persistence.ErrForeignKeyViolation) {
			return Blackout{}, ErrNotFound
		}
		return Blackout{}, fmt.Errorf("failed to create blackout: %w", err)
	}

	serviceLogger(ctx, s.logger, "blackout", "create").InfoContext(ctx, "blackout created",
		"blackout_id", created.ID, "room_id", created.RoomID, "day", created.Day.String())

	return Blackout{
		ID:     created.ID,
		RoomID: created.RoomID,
		Day:    created.Day,
		Start:  created.Start,
		End:    created.End,
		Reason: created.Reason,
	}, nil
}
