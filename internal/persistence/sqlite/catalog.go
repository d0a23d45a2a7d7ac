package sqlite

import (
	"context"
	"database/sql"

	"github.com/example/campus-scheduler/internal/persistence"
)

// CreateDepartment inserts a department and returns it with its generated ID.
func (s *Store) CreateDepartment(ctx context.Context, department persistence.Department) (persistence.Department, error) {
	if department.Name == "" {
		return persistence.Department{}, persistence.ErrConstraintViolation
	}

	result, err := s.q.ExecContext(ctx,
		"INSERT INTO departments (name) VALUES (?)", department.Name)
	if err != nil {
		return persistence.Department{}, mapError(err)
	}

	department.ID, err = result.LastInsertId()
	if err != nil {
		return persistence.Department{}, mapError(err)
	}
	return department, nil
}

// ListDepartments returns all departments ordered by name.
func (s *Store) ListDepartments(ctx context.Context) ([]persistence.Department, error) {
	rows, err := s.q.QueryContext(ctx,
		"SELECT dept_id, name FROM departments ORDER BY name ASC")
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var departments []persistence.Department
	for rows.Next() {
		var department persistence.Department
		if err := rows.Scan(&department.ID, &department.Name); err != nil {
			return nil, mapError(err)
		}
		departments = append(departments, department)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return departments, nil
}

// CreateBuilding inserts a building and returns it with its generated ID.
func (s *Store) CreateBuilding(ctx context.Context, building persistence.Building) (persistence.Building, error) {
	if building.Name == "" {
		return persistence.Building{}, persistence.ErrConstraintViolation
	}

	result, err := s.q.ExecContext(ctx,
		"INSERT INTO buildings (name) VALUES (?)", building.Name)
	if err != nil {
		return persistence.Building{}, mapError(err)
	}

	building.ID, err = result.LastInsertId()
	if err != nil {
		return persistence.Building{}, mapError(err)
	}
	return building, nil
}

// CreateClass inserts a class section and returns it with its generated ID.
func (s *Store) CreateClass(ctx context.Context, class persistence.Class) (persistence.Class, error) {
	if class.Name == "" || class.DeptID == 0 {
		return persistence.Class{}, persistence.ErrConstraintViolation
	}

	result, err := s.q.ExecContext(ctx,
		"INSERT INTO classes (name, section_num, dept_id) VALUES (?, ?, ?)",
		class.Name, class.SectionNum, class.DeptID)
	if err != nil {
		return persistence.Class{}, mapError(err)
	}

	class.ID, err = result.LastInsertId()
	if err != nil {
		return persistence.Class{}, mapError(err)
	}
	return class, nil
}

// CreateRoom inserts a room and returns it with its generated ID.
func (s *Store) CreateRoom(ctx context.Context, room persistence.Room) (persistence.Room, error) {
	if room.RoomNumber == "" || room.BldgID == 0 {
		return persistence.Room{}, persistence.ErrConstraintViolation
	}

	result, err := s.q.ExecContext(ctx,
		"INSERT INTO rooms (room_number, bldg_id, capacity, equipment, room_type) VALUES (?, ?, ?, ?, ?)",
		room.RoomNumber, room.BldgID, room.Capacity, nullString(room.Equipment), nullString(room.RoomType))
	if err != nil {
		return persistence.Room{}, mapError(err)
	}

	room.ID, err = result.LastInsertId()
	if err != nil {
		return persistence.Room{}, mapError(err)
	}
	return room, nil
}

// ListRooms returns rooms joined with their building, ordered by building
// name then room number.
func (s *Store) ListRooms(ctx context.Context) ([]persistence.RoomDetail, error) {
	query := `
		SELECT r.room_id, r.room_number, b.name, r.capacity, r.equipment, r.room_type
		FROM rooms r
		JOIN buildings b ON r.bldg_id = b.bldg_id
		ORDER BY b.name ASC, r.room_number ASC
	`

	rows, err := s.q.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var details []persistence.RoomDetail
	for rows.Next() {
		var detail persistence.RoomDetail
		var equipment, roomType sql.NullString
		if err := rows.Scan(&detail.RoomID, &detail.RoomNumber, &detail.BldgName, &detail.Capacity, &equipment, &roomType); err != nil {
			return nil, mapError(err)
		}
		if equipment.Valid {
			detail.Equipment = &equipment.String
		}
		if roomType.Valid {
			detail.RoomType = &roomType.String
		}
		details = append(details, detail)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return details, nil
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func nullInt64(value *int64) sql.NullInt64 {
	if value == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *value, Valid: true}
}
