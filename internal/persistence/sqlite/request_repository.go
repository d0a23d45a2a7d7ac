package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/campus-scheduler/internal/persistence"
)

// CreateRequest inserts a room request and returns it with its generated ID.
func (s *Store) CreateRequest(ctx context.Context, request persistence.Request) (persistence.Request, error) {
	if request.ClassID == 0 || request.DeptID == 0 || request.PreferredTime == "" {
		return persistence.Request{}, persistence.ErrConstraintViolation
	}
	if request.Status == "" {
		request.Status = persistence.RequestStatusPending
	}
	if request.DateSubmitted.IsZero() {
		request.DateSubmitted = time.Now().UTC()
	}

	query := `
		INSERT INTO requests (class_id, dept_id, priority, preferred_time, equip_request, preferred_room_id, preferred_bldg_id, status, date_submitted)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.q.ExecContext(ctx, query,
		request.ClassID,
		request.DeptID,
		request.Priority,
		request.PreferredTime,
		nullString(request.EquipRequest),
		nullInt64(request.PreferredRoomID),
		nullInt64(request.PreferredBldgID),
		string(request.Status),
		request.DateSubmitted.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return persistence.Request{}, mapError(err)
	}

	request.ID, err = result.LastInsertId()
	if err != nil {
		return persistence.Request{}, mapError(err)
	}
	return request, nil
}

// ListPendingRequests returns pending requests joined with class and
// department, ordered by priority descending then submission time ascending.
func (s *Store) ListPendingRequests(ctx context.Context) ([]persistence.RequestDetail, error) {
	query := `
		SELECT req.request_id, d.name, c.name, c.section_num, req.preferred_time, req.equip_request, req.priority, req.date_submitted
		FROM requests req
		JOIN classes c ON req.class_id = c.class_id
		JOIN departments d ON req.dept_id = d.dept_id
		WHERE req.status = ?
		ORDER BY req.priority DESC, req.date_submitted ASC, req.request_id ASC
	`

	rows, err := s.q.QueryContext(ctx, query, string(persistence.RequestStatusPending))
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var details []persistence.RequestDetail
	for rows.Next() {
		var detail persistence.RequestDetail
		var equipRequest sql.NullString
		var submitted string
		if err := rows.Scan(&detail.RequestID, &detail.DeptName, &detail.ClassName, &detail.SectionNum,
			&detail.PreferredTime, &equipRequest, &detail.Priority, &submitted); err != nil {
			return nil, mapError(err)
		}
		if equipRequest.Valid {
			detail.EquipRequest = &equipRequest.String
		}
		if detail.DateSubmitted, err = time.Parse(time.RFC3339, submitted); err != nil {
			return nil, fmt.Errorf("failed to parse date_submitted: %w", err)
		}
		details = append(details, detail)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return details, nil
}

// GetRequestClassID resolves the class referenced by a request.
func (s *Store) GetRequestClassID(ctx context.Context, requestID int64) (int64, error) {
	var classID int64
	err := s.q.QueryRowContext(ctx,
		"SELECT class_id FROM requests WHERE request_id = ?", requestID).Scan(&classID)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, persistence.ErrNotFound
		}
		return 0, mapError(err)
	}
	return classID, nil
}

// UpdateRequestStatus transitions a request between statuses. The update is
// guarded on the current status so the transition happens at most once.
func (s *Store) UpdateRequestStatus(ctx context.Context, requestID int64, from, to persistence.RequestStatus) error {
	result, err := s.q.ExecContext(ctx,
		"UPDATE requests SET status = ? WHERE request_id = ? AND status = ?",
		string(to), requestID, string(from))
	if err != nil {
		return mapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return persistence.ErrNotFound
	}
	return nil
}
