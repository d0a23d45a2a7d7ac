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

// RequestService accepts room requests from department staff and serves the
// pending request listing.
type RequestService struct {
	store  persistence.Store
	now    func() time.Time
	logger *slog.Logger
}

// NewRequestService wires dependencies for request operations.
func NewRequestService(store persistence.Store, now func() time.Time, logger *slog.Logger) *RequestService {
	if now == nil {
		now = time.Now
	}
	return &RequestService{store: store, now: now, logger: defaultLogger(logger)}
}

// Submit validates and records a room request with status Pending.
func (s *RequestService) Submit(ctx context.Context, params SubmitRequestParams) (int64, error) {
	if s == nil || s.store == nil {
		return 0, fmt.Errorf("RequestService is not configured")
	}

	vErr := &ValidationError{}
	if params.ClassID <= 0 {
		vErr.add("classID", "classID is required")
	}
	if params.DeptID <= 0 {
		vErr.add("deptID", "deptID is required")
	}
	if strings.TrimSpace(params.PreferredTime) == "" {
		vErr.add("preferredTime", "preferredTime is required")
	}
	if vErr.HasErrors() {
		return 0, vErr
	}

	created, err := s.store.CreateRequest(ctx, persistence.Request{
		ClassID:         params.ClassID,
		DeptID:          params.DeptID,
		Priority:        params.Priority,
		PreferredTime:   strings.TrimSpace(params.PreferredTime),
		EquipRequest:    params.EquipRequest,
		PreferredRoomID: params.PreferredRoomID,
		PreferredBldgID: params.PreferredBldgID,
		Status:          persistence.RequestStatusPending,
		DateSubmitted:   s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, persistence.ErrForeignKeyViolation) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to submit request: %w", err)
	}

	serviceLogger(ctx, s.logger, "request", "submit").InfoContext(ctx, "request submitted",
		"request_id", created.ID, "dept_id", created.DeptID, "priority", created.Priority)
	return created.ID, nil
}

// ListPending returns pending requests ordered by priority descending then
// submission time ascending. Ordering is presentational only; the resolver
// never arbitrates between competing requests.
func (s *RequestService) ListPending(ctx context.Context) ([]RequestRow, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("RequestService is not configured")
	}

	details, err := s.store.ListPendingRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}

	rows := make([]RequestRow, 0, len(details))
	for _, detail := range details {
		rows = append(rows, RequestRow{
			RequestID:     detail.RequestID,
			DeptName:      detail.DeptName,
			ClassName:     detail.ClassName,
			SectionNum:    detail.SectionNum,
			PreferredTime: detail.PreferredTime,
			EquipRequest:  detail.EquipRequest,
			Priority:      detail.Priority,
			DateSubmitted: detail.DateSubmitted,
		})
	}
	return rows, nil
}
