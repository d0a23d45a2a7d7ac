package sqlite

import (
	"context"
	"time"

	"github.com/example/campus-scheduler/internal/persistence"
	"github.com/example/campus-scheduler/internal/scheduler"
)

// CreateAssignment inserts an assignment. Both overlap guards are re-checked
// inside the write transaction before inserting, so a successful return
// guarantees the slot was free at commit time even when two resolutions race.
func (s *Store) CreateAssignment(ctx context.Context, assignment persistence.Assignment) (persistence.Assignment, error) {
	if !assignment.Start.Valid() || !assignment.End.Valid() || assignment.Start >= assignment.End {
		return persistence.Assignment{}, persistence.ErrConstraintViolation
	}
	if assignment.CreatedAt.IsZero() {
		assignment.CreatedAt = time.Now().UTC()
	}

	created := assignment
	err := s.WithTx(ctx, func(tx persistence.Store) error {
		taken, err := tx.CountOverlappingAssignments(ctx, assignment.RoomID, assignment.Day, assignment.Start, assignment.End)
		if err != nil {
			return err
		}
		if taken > 0 {
			return persistence.ErrAssignmentOverlap
		}

		blocked, err := tx.CountOverlappingBlackouts(ctx, assignment.RoomID, assignment.Day, assignment.Start, assignment.End)
		if err != nil {
			return err
		}
		if blocked > 0 {
			return persistence.ErrBlackoutOverlap
		}

		txStore := tx.(*Store)
		result, err := txStore.q.ExecContext(ctx,
			"INSERT INTO assignments (class_id, room_id, day_of_week, start_minute, end_minute, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			assignment.ClassID,
			assignment.RoomID,
			int(assignment.Day),
			int(assignment.Start),
			int(assignment.End),
			assignment.CreatedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return mapError(err)
		}

		created.ID, err = result.LastInsertId()
		if err != nil {
			return mapError(err)
		}
		return nil
	})
	if err != nil {
		return persistence.Assignment{}, err
	}
	return created, nil
}

// CountOverlappingAssignments counts assignments for the room and day whose
// interval strictly overlaps [start, end). The open-interval test admits
// boundary-touching intervals.
func (s *Store) CountOverlappingAssignments(ctx context.Context, roomID int64, day time.Weekday, start, end scheduler.TimeOfDay) (int, error) {
	var count int
	err := s.q.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM assignments WHERE room_id = ? AND day_of_week = ? AND start_minute < ? AND end_minute > ?",
		roomID, int(day), int(end), int(start)).Scan(&count)
	if err != nil {
		return 0, mapError(err)
	}
	return count, nil
}

// ListAssignments returns assignments joined across class, department, room
// and building, ordered by day, start time, building name, then room number.
func (s *Store) ListAssignments(ctx context.Context) ([]persistence.AssignmentDetail, error) {
	query := `
		SELECT a.assignment_id, d.name, c.name, c.section_num, b.name, r.room_number, a.day_of_week, a.start_minute, a.end_minute
		FROM assignments a
		JOIN classes c ON a.class_id = c.class_id
		JOIN departments d ON c.dept_id = d.dept_id
		JOIN rooms r ON a.room_id = r.room_id
		JOIN buildings b ON r.bldg_id = b.bldg_id
		ORDER BY a.day_of_week ASC, a.start_minute ASC, b.name ASC, r.room_number ASC
	`

	rows, err := s.q.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var details []persistence.AssignmentDetail
	for rows.Next() {
		var detail persistence.AssignmentDetail
		var day, start, end int
		if err := rows.Scan(&detail.AssignmentID, &detail.DeptName, &detail.ClassName, &detail.SectionNum,
			&detail.BldgName, &detail.RoomNumber, &day, &start, &end); err != nil {
			return nil, mapError(err)
		}
		detail.Day = time.Weekday(day)
		detail.Start = scheduler.TimeOfDay(start)
		detail.End = scheduler.TimeOfDay(end)
		details = append(details, detail)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return details, nil
}
