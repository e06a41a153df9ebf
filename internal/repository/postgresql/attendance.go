package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hirepath/careers-backend-go/internal/domain/attendance"
	"github.com/hirepath/careers-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.clock_in, a.clock_out,
	a.check_in_location_id, a.check_in_location_name,
	a.check_in_latitude, a.check_in_longitude, a.check_in_distance_meters,
	a.check_out_location_id, a.check_out_location_name,
	a.check_out_latitude, a.check_out_longitude, a.check_out_distance_meters,
	a.status, a.work_hours, a.notes, a.created_at, a.updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	var outLocationID, outLocationName *string
	var outLat, outLon, outDistance *float64

	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.ClockIn, &att.ClockOut,
		&att.CheckInLocation.LocationID, &att.CheckInLocation.LocationName,
		&att.CheckInLocation.Latitude, &att.CheckInLocation.Longitude, &att.CheckInLocation.DistanceMeters,
		&outLocationID, &outLocationName,
		&outLat, &outLon, &outDistance,
		&att.Status, &att.WorkHours, &att.Notes, &att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}

	if outLocationID != nil {
		att.CheckOutLocation = &attendance.LocationSnapshot{
			LocationID:     *outLocationID,
			LocationName:   *outLocationName,
			Latitude:       *outLat,
			Longitude:      *outLon,
			DistanceMeters: *outDistance,
		}
	}

	return att, nil
}

// Create implements attendance.AttendanceRepository. The attendances table
// carries UNIQUE (employee_id, date); that constraint, not the service's
// fast-path existence check, is what makes concurrent duplicate check-ins
// safe. The violation is translated to ErrAlreadyCheckedIn here.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			employee_id, date, clock_in,
			check_in_location_id, check_in_location_name,
			check_in_latitude, check_in_longitude, check_in_distance_meters,
			status, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAttendance.EmployeeID,
		newAttendance.Date,
		newAttendance.ClockIn,
		newAttendance.CheckInLocation.LocationID,
		newAttendance.CheckInLocation.LocationName,
		newAttendance.CheckInLocation.Latitude,
		newAttendance.CheckInLocation.Longitude,
		newAttendance.CheckInLocation.DistanceMeters,
		newAttendance.Status,
		newAttendance.Notes,
	).Scan(&newAttendance.ID, &newAttendance.CreatedAt, &newAttendance.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances a WHERE a.id = $1`

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by ID: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository. The date
// argument is the UTC instant of org-zone midnight (the day key).
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1 AND a.date = $2
		LIMIT 1`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // absent for this day
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// CompleteCheckout implements attendance.AttendanceRepository. The
// clock_out IS NULL guard keeps the checked_in -> checked_out transition
// one-way even under concurrent checkout requests.
func (a *attendanceRepository) CompleteCheckout(ctx context.Context, att attendance.Attendance) (bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances SET
			clock_out = $2,
			check_out_location_id = $3,
			check_out_location_name = $4,
			check_out_latitude = $5,
			check_out_longitude = $6,
			check_out_distance_meters = $7,
			status = $8,
			work_hours = $9,
			notes = COALESCE($10, notes),
			updated_at = NOW()
		WHERE id = $1 AND clock_out IS NULL
	`

	tag, err := q.Exec(ctx, query,
		att.ID,
		att.ClockOut,
		att.CheckOutLocation.LocationID,
		att.CheckOutLocation.LocationName,
		att.CheckOutLocation.Latitude,
		att.CheckOutLocation.Longitude,
		att.CheckOutLocation.DistanceMeters,
		att.Status,
		att.WorkHours,
		att.Notes,
	)
	if err != nil {
		return false, fmt.Errorf("failed to complete checkout: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// ListByEmployeeBetween implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployeeBetween(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1 AND a.date >= $2 AND a.date <= $3
		ORDER BY a.date ASC`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by employee: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		result = append(result, att)
	}

	return result, rows.Err()
}

// ListBetween implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListBetween(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + `, u.full_name AS employee_name
		FROM attendances a
		LEFT JOIN users u ON u.id = a.employee_id
		WHERE a.date >= $1 AND a.date <= $2
		ORDER BY a.date ASC, u.full_name ASC`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		var outLocationID, outLocationName *string
		var outLat, outLon, outDistance *float64

		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.ClockIn, &att.ClockOut,
			&att.CheckInLocation.LocationID, &att.CheckInLocation.LocationName,
			&att.CheckInLocation.Latitude, &att.CheckInLocation.Longitude, &att.CheckInLocation.DistanceMeters,
			&outLocationID, &outLocationName,
			&outLat, &outLon, &outDistance,
			&att.Status, &att.WorkHours, &att.Notes, &att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}

		if outLocationID != nil {
			att.CheckOutLocation = &attendance.LocationSnapshot{
				LocationID:     *outLocationID,
				LocationName:   *outLocationName,
				Latitude:       *outLat,
				Longitude:      *outLon,
				DistanceMeters: *outDistance,
			}
		}
		result = append(result, att)
	}

	return result, rows.Err()
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.Start != nil {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.Start)
		argIdx++
	}

	if filter.End != nil {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.End)
		argIdx++
	}

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM attendances a WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	// Sort fields are validated upstream against an allowlist.
	sortBy := map[string]string{
		"date":     "a.date",
		"clock_in": "a.clock_in",
		"status":   "a.status",
	}[filter.SortBy]
	if sortBy == "" {
		sortBy = "a.date"
	}
	sortOrder := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		sortOrder = "ASC"
	}

	offset := (filter.Page - 1) * filter.Limit
	listQuery := `SELECT ` + attendanceColumns + `, u.full_name AS employee_name
		FROM attendances a
		LEFT JOIN users u ON u.id = a.employee_id
		WHERE ` + baseWhere +
		fmt.Sprintf(" ORDER BY %s %s LIMIT $%d OFFSET $%d", sortBy, sortOrder, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		var outLocationID, outLocationName *string
		var outLat, outLon, outDistance *float64

		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.ClockIn, &att.ClockOut,
			&att.CheckInLocation.LocationID, &att.CheckInLocation.LocationName,
			&att.CheckInLocation.Latitude, &att.CheckInLocation.Longitude, &att.CheckInLocation.DistanceMeters,
			&outLocationID, &outLocationName,
			&outLat, &outLon, &outDistance,
			&att.Status, &att.WorkHours, &att.Notes, &att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance row: %w", err)
		}

		if outLocationID != nil {
			att.CheckOutLocation = &attendance.LocationSnapshot{
				LocationID:     *outLocationID,
				LocationName:   *outLocationName,
				Latitude:       *outLat,
				Longitude:      *outLon,
				DistanceMeters: *outDistance,
			}
		}
		result = append(result, att)
	}

	return result, total, rows.Err()
}
