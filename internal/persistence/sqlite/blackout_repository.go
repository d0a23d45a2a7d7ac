package sqlite

import (
	"context"
	"time"

	"github.com/example/campus-scheduler/internal/persistence"
	"github.com/example/campus-scheduler/internal/scheduler"
)

// CreateBlackout inserts a weekly blackout window for a room.
func (s *Store) CreateBlackout(ctx context.Context, blackout persistence.Blackout) (persistence.Blackout, error) {
	if !blackout.Start.Valid() || !blackout.End.Valid() || blackout.Start >= blackout.End || blackout.Reason == "" {
		return persistence.Blackout{}, persistence.ErrConstraintViolation
	}
	if blackout.CreatedAt.IsZero() {
		blackout.CreatedAt = time.Now().UTC()
	}

	result, err := s.q.ExecContext(ctx,
		"INSERT INTO blackouts (room_id, day_of_week, start_minute, end_minute, reason, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		blackout.RoomID,
		int(blackout.Day),
		int(blackout.Start),
		int(blackout.End),
		blackout.Reason,
		blackout.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return persistence.Blackout{}, mapError(err)
	}

	blackout.ID, err = result.LastInsertId()
	if err != nil {
		return persistence.Blackout{}, mapError(err)
	}
	return blackout, nil
}

// CountOverlappingBlackouts counts blackout windows for the room and day
// whose interval strictly overlaps [start, end).
func (s *Store) CountOverlappingBlackouts(ctx context.Context, roomID int64, day time.Weekday, start, end scheduler.TimeOfDay) (int, error) {
	var count int
	err := s.q.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM blackouts WHERE room_id = ? AND day_of_week = ? AND start_minute < ? AND end_minute > ?",
		roomID, int(day), int(end), int(start)).Scan(&count)
	if err != nil {
		return 0, mapError(err)
	}
	return count, nil
}
