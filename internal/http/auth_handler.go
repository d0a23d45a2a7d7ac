package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/example/campus-scheduler/internal/application"
)

// AuthHandler serves the placeholder login endpoint.
type AuthHandler struct {
	authenticator application.Authenticator
	responder     responder
	logger        *slog.Logger
}

func NewAuthHandler(authenticator application.Authenticator, logger *slog.Logger) *AuthHandler {
	base := defaultLogger(logger)
	return &AuthHandler{authenticator: authenticator, responder: newResponder(base), logger: base}
}

func (h *AuthHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "AuthHandler", operation, attrs...)
}

// Login checks credentials and reports the account role.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.authenticator == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req loginRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.log(r.Context(), "Login", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode login request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, msgBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "Login", "username", req.Username)

	role, err := h.authenticator.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		logger.InfoContext(r.Context(), "login rejected", "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("role", role).InfoContext(r.Context(), "login succeeded")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, loginResponse{OK: true, Role: role})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	OK   bool   `json:"ok"`
	Role string `json:"role"`
}
