package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/example/campus-scheduler/internal/application"
)

type blackoutService interface {
	Create(ctx context.Context, params application.CreateBlackoutParams) (application.Blackout, error)
}

// BlackoutHandler records weekly unavailability windows for rooms.
type BlackoutHandler struct {
	service   blackoutService
	responder responder
	logger    *slog.Logger
}

func NewBlackoutHandler(service blackoutService, logger *slog.Logger) *BlackoutHandler {
	base := defaultLogger(logger)
	return &BlackoutHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *BlackoutHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "BlackoutHandler", operation, attrs...)
}

// Create records a blackout window.
func (h *BlackoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req createBlackoutRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.log(r.Context(), "Create", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode blackout request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, msgBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "Create", "room_id", req.RoomID)

	blackout, err := h.service.Create(r.Context(), application.CreateBlackoutParams{
		RoomID:    req.RoomID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
	})
	if err != nil {
		logger.ErrorContext(r.Context(), "blackout creation failed", "error", err, "error_kind", application.ErrorKind(err))
		if errors.Is(err, application.ErrNotFound) {
			h.responder.writeError(r.Context(), w, http.StatusNotFound, "Room not found.")
			return
		}
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("blackout_id", blackout.ID).InfoContext(r.Context(), "blackout created")
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, createBlackoutResponse{
		Message:    "Blackout created successfully",
		BlackoutID: blackout.ID,
	})
}

type createBlackoutRequest struct {
	RoomID    int64  `json:"roomID"`
	DayOfWeek string `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Reason    string `json:"reason"`
}

type createBlackoutResponse struct {
	Message    string `json:"message"`
	BlackoutID int64  `json:"blackoutID"`
}
