package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/example/campus-scheduler/internal/application"
)

type catalogService interface {
	ListDepartments(ctx context.Context) ([]application.DepartmentRow, error)
	ListRooms(ctx context.Context) ([]application.RoomRow, error)
}

// CatalogHandler serves the read-only department and room listings that the
// request form is populated from.
type CatalogHandler struct {
	service   catalogService
	responder responder
	logger    *slog.Logger
}

func NewCatalogHandler(service catalogService, logger *slog.Logger) *CatalogHandler {
	base := defaultLogger(logger)
	return &CatalogHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *CatalogHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "CatalogHandler", operation, attrs...)
}

// ListDepartments returns all departments ordered by name.
func (h *CatalogHandler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger := h.log(r.Context(), "ListDepartments")
	rows, err := h.service.ListDepartments(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "department list failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("result_count", len(rows)).InfoContext(r.Context(), "departments listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, toDepartmentDTOs(rows))
}

// ListRooms returns all rooms joined with their building.
func (h *CatalogHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger := h.log(r.Context(), "ListRooms")
	rows, err := h.service.ListRooms(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "room list failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("result_count", len(rows)).InfoContext(r.Context(), "rooms listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, toRoomDTOs(rows))
}

type departmentDTO struct {
	DeptID   int64  `json:"DeptID"`
	DeptName string `json:"DeptName"`
}

func toDepartmentDTOs(rows []application.DepartmentRow) []departmentDTO {
	out := make([]departmentDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, departmentDTO{DeptID: row.DeptID, DeptName: row.DeptName})
	}
	return out
}

type roomDTO struct {
	RoomID     int64   `json:"RoomID"`
	RoomNumber string  `json:"RoomNumber"`
	BldgName   string  `json:"BldgName"`
	Capacity   int     `json:"Capacity"`
	Equipment  *string `json:"Equipment"`
	RoomType   *string `json:"RoomType"`
}

func toRoomDTOs(rows []application.RoomRow) []roomDTO {
	out := make([]roomDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, roomDTO{
			RoomID:     row.RoomID,
			RoomNumber: row.RoomNumber,
			BldgName:   row.BldgName,
			Capacity:   row.Capacity,
			Equipment:  row.Equipment,
			RoomType:   row.RoomType,
		})
	}
	return out
}
