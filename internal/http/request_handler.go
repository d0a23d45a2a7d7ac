package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/example/campus-scheduler/internal/application"
)

type requestService interface {
	Submit(ctx context.Context, params application.SubmitRequestParams) (int64, error)
	ListPending(ctx context.Context) ([]application.RequestRow, error)
}

// RequestHandler serves room-request submission and the pending listing.
type RequestHandler struct {
	service   requestService
	responder responder
	logger    *slog.Logger
}

func NewRequestHandler(service requestService, logger *slog.Logger) *RequestHandler {
	base := defaultLogger(logger)
	return &RequestHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *RequestHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "RequestHandler", operation, attrs...)
}

// Create records a new pending room request.
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req createRoomRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.log(r.Context(), "Create", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode room request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, msgBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "Create", "class_id", req.ClassID, "dept_id", req.DeptID)

	requestID, err := h.service.Submit(r.Context(), application.SubmitRequestParams{
		ClassID:         req.ClassID,
		DeptID:          req.DeptID,
		Priority:        req.Priority,
		PreferredTime:   req.PreferredTime,
		EquipRequest:    req.EquipRequest,
		PreferredRoomID: req.PreferredRoomID,
		PreferredBldgID: req.PreferredBldgID,
	})
	if err != nil {
		logger.ErrorContext(r.Context(), "request submission failed", "error", err, "error_kind", application.ErrorKind(err))
		if errors.Is(err, application.ErrNotFound) {
			h.responder.writeError(r.Context(), w, http.StatusNotFound, "Class or department not found.")
			return
		}
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("request_id", requestID).InfoContext(r.Context(), "request submitted")
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, createRoomRequestResponse{
		Message:   "Request submitted successfully",
		RequestID: requestID,
	})
}

// List returns pending requests ordered by priority then submission time.
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger := h.log(r.Context(), "List")
	rows, err := h.service.ListPending(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "request list failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("result_count", len(rows)).InfoContext(r.Context(), "pending requests listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, toRequestDTOs(rows))
}

type createRoomRequest struct {
	ClassID         int64   `json:"classID"`
	DeptID          int64   `json:"deptID"`
	Priority        int     `json:"priority"`
	EquipRequest    *string `json:"equipRequest"`
	PreferredRoomID *int64  `json:"preferredRoomID"`
	PreferredTime   string  `json:"preferredTime"`
	// cardBltID is the historical wire name for the preferred building.
	PreferredBldgID *int64 `json:"cardBltID"`
}

type createRoomRequestResponse struct {
	Message   string `json:"message"`
	RequestID int64  `json:"requestID"`
}

type requestDTO struct {
	RequestID     int64   `json:"RequestID"`
	DeptName      string  `json:"DeptName"`
	ClassName     string  `json:"ClassName"`
	SectionNum    int     `json:"SectionNum"`
	PreferredTime string  `json:"PreferredTime"`
	EquipRequest  *string `json:"EquipRequest"`
	Priority      int     `json:"Priority"`
	DateSubmitted string  `json:"DateSubmitted"`
}

func toRequestDTOs(rows []application.RequestRow) []requestDTO {
	out := make([]requestDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, requestDTO{
			RequestID:     row.RequestID,
			DeptName:      row.DeptName,
			ClassName:     row.ClassName,
			SectionNum:    row.SectionNum,
			PreferredTime: row.PreferredTime,
			EquipRequest:  row.EquipRequest,
			Priority:      row.Priority,
			DateSubmitted: row.DateSubmitted.UTC().Format(time.RFC3339),
		})
	}
	return out
}
