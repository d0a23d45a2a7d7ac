package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/example/campus-scheduler/internal/application"
)

type assignmentService interface {
	Resolve(ctx context.Context, params application.ResolveAssignmentParams) (application.ResolveResult, error)
	List(ctx context.Context) ([]application.AssignmentRow, error)
}

// AssignmentHandler serves the assignment listing and the resolution endpoint.
type AssignmentHandler struct {
	service   assignmentService
	responder responder
	logger    *slog.Logger
}

func NewAssignmentHandler(service assignmentService, logger *slog.Logger) *AssignmentHandler {
	base := defaultLogger(logger)
	return &AssignmentHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *AssignmentHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "AssignmentHandler", operation, attrs...)
}

// Create resolves a pending request into an assignment.
func (h *AssignmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req createAssignmentRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.log(r.Context(), "Create", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode assignment request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, msgBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "Create", "request_id", req.RequestID, "room_id", req.RoomID)

	result, err := h.service.Resolve(r.Context(), application.ResolveAssignmentParams{
		RequestID: req.RequestID,
		RoomID:    req.RoomID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		logger.ErrorContext(r.Context(), "assignment resolution failed", "error", err, "error_kind", application.ErrorKind(err))
		if errors.Is(err, application.ErrNotFound) {
			h.responder.writeError(r.Context(), w, http.StatusNotFound, "Request not found.")
			return
		}
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("assignment_id", result.Assignment.ID).InfoContext(r.Context(), "assignment created")
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, createAssignmentResponse{
		Message:      "Assignment created successfully",
		AssignmentID: result.Assignment.ID,
	})
}

// List returns the joined assignment listing.
func (h *AssignmentHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger := h.log(r.Context(), "List")
	rows, err := h.service.List(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "assignment list failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("result_count", len(rows)).InfoContext(r.Context(), "assignments listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, toAssignmentDTOs(rows))
}

type createAssignmentRequest struct {
	RequestID int64  `json:"requestID"`
	RoomID    int64  `json:"roomID"`
	DayOfWeek string `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type createAssignmentResponse struct {
	Message      string `json:"message"`
	AssignmentID int64  `json:"assignmentId"`
}

type assignmentDTO struct {
	DeptName   string `json:"DeptName"`
	ClassName  string `json:"ClassName"`
	SectionNum int    `json:"SectionNum"`
	BldgName   string `json:"BldgName"`
	RoomNumber string `json:"RoomNumber"`
	DayOfWeek  string `json:"DayOfWeek"`
	StartTime  string `json:"StartTime"`
	EndTime    string `json:"EndTime"`
}

func toAssignmentDTOs(rows []application.AssignmentRow) []assignmentDTO {
	out := make([]assignmentDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, assignmentDTO{
			DeptName:   row.DeptName,
			ClassName:  row.ClassName,
			SectionNum: row.SectionNum,
			BldgName:   row.BldgName,
			RoomNumber: row.RoomNumber,
			DayOfWeek:  row.Day.String(),
			StartTime:  row.Start.Clock12(),
			EndTime:    row.End.Clock12(),
		})
	}
	return out
}
