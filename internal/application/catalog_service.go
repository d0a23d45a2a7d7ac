package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/example/campus-scheduler/internal/persistence"
)

// CatalogService serves the read-only department and room listings.
type CatalogService struct {
	store  persistence.Store
	logger *slog.Logger
}

// NewCatalogService wires dependencies for catalog reads.
func NewCatalogService(store persistence.Store, logger *slog.Logger) *CatalogService {
	return &CatalogService{store: store, logger: defaultLogger(logger)}
}

// ListDepartments returns all departments ordered by name.
func (s *CatalogService) ListDepartments(ctx context.Context) ([]DepartmentRow, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("CatalogService is not configured")
	}

	departments, err := s.store.ListDepartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	rows := make([]DepartmentRow, 0, len(departments))
	for _, department := range departments {
		rows = append(rows, DepartmentRow{DeptID: department.ID, DeptName: department.Name})
	}
	return rows, nil
}

// ListRooms returns all rooms joined with their building, ordered by building
// then room number.
func (s *CatalogService) ListRooms(ctx context.Context) ([]RoomRow, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("CatalogService is not configured")
	}

	details, err := s.store.ListRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	rows := make([]RoomRow, 0, len(details))
	for _, detail := range details {
		rows = append(rows, RoomRow{
			RoomID:     detail.RoomID,
			RoomNumber: detail.RoomNumber,
			BldgName:   detail.BldgName,
			Capacity:   detail.Capacity,
			Equipment:  detail.Equipment,
			RoomType:   detail.RoomType,
		})
	}
	return rows, nil
}
