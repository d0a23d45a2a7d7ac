package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/example/campus-scheduler/internal/application"
	"github.com/example/campus-scheduler/internal/logging"
)

const (
	msgAssignmentConflict = "Conflict: Room is already assigned during this time slot."
	msgBlackoutConflict   = "Conflict: Room is blacked out during this time slot."
	msgRequestNotPending  = "Request has already been resolved."
	msgInvalidCredentials = "Invalid username or password."
	msgNotFound           = "Not found."
	msgInternalError      = "Internal server error."
	msgBadRequestBody     = "Invalid request body."
)

type errorResponse struct {
	Error string `json:"error"`
}

type responder struct {
	logger *slog.Logger
}

func newResponder(logger *slog.Logger) responder {
	if logger == nil {
		logger = slog.Default()
	}
	return responder{logger: logger}
}

func (r responder) writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}

	if status == http.StatusNoContent || payload == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		r.loggerFor(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

func (r responder) writeError(ctx context.Context, w http.ResponseWriter, status int, message string) {
	r.writeJSON(ctx, w, status, errorResponse{Error: message})
}

// handleServiceError maps service errors onto wire responses. Handlers may
// intercept specific sentinels first when a more precise message applies.
func (r responder) handleServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, application.ErrAssignmentConflict):
		r.writeError(ctx, w, http.StatusConflict, msgAssignmentConflict)
	case errors.Is(err, application.ErrBlackoutConflict):
		r.writeError(ctx, w, http.StatusConflict, msgBlackoutConflict)
	case errors.Is(err, application.ErrRequestNotPending):
		r.writeError(ctx, w, http.StatusConflict, msgRequestNotPending)
	case errors.Is(err, application.ErrNotFound):
		r.writeError(ctx, w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, application.ErrInvalidCredentials):
		r.writeError(ctx, w, http.StatusUnauthorized, msgInvalidCredentials)
	default:
		var vErr *application.ValidationError
		if errors.As(err, &vErr) {
			r.writeError(ctx, w, http.StatusBadRequest, validationMessage(vErr))
			return
		}

		r.loggerFor(ctx).ErrorContext(ctx, "request failed", "error_kind", application.ErrorKind(err), "error", err)
		r.writeError(ctx, w, http.StatusInternalServerError, msgInternalError)
	}
}

func (r responder) loggerFor(ctx context.Context) *slog.Logger {
	if logger := logging.FromContext(ctx); logger != nil {
		return logger
	}
	return r.logger
}

// validationMessage flattens field errors into one deterministic message.
func validationMessage(vErr *application.ValidationError) string {
	if vErr == nil || len(vErr.FieldErrors) == 0 {
		return msgBadRequestBody
	}

	fields := make([]string, 0, len(vErr.FieldErrors))
	for field := range vErr.FieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, vErr.FieldErrors[field])
	}
	return strings.Join(messages, "; ")
}

func decodeJSONBody(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
