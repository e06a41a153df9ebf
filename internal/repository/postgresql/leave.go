package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hirepath/careers-backend-go/internal/domain/leave"
	"github.com/hirepath/careers-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

const leaveColumns = `l.id, l.employee_id, l.leave_type, l.start_date, l.end_date, l.reason,
	l.status, l.reviewed_by, l.reviewed_at, l.rejection_reason, l.created_at, l.updated_at`

func scanLeave(row pgx.Row, withEmployeeName bool) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	dest := []interface{}{
		&lr.ID, &lr.EmployeeID, &lr.LeaveType, &lr.StartDate, &lr.EndDate, &lr.Reason,
		&lr.Status, &lr.ReviewedBy, &lr.ReviewedAt, &lr.RejectionReason, &lr.CreatedAt, &lr.UpdatedAt,
	}
	if withEmployeeName {
		dest = append(dest, &lr.EmployeeName)
	}
	return lr, row.Scan(dest...)
}

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, lr leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (employee_id, leave_type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		lr.EmployeeID, lr.LeaveType, lr.StartDate, lr.EndDate, lr.Reason, lr.Status,
	).Scan(&lr.ID, &lr.CreatedAt, &lr.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return lr, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + `, u.full_name
		FROM leave_requests l
		LEFT JOIN users u ON u.id = l.employee_id
		WHERE l.id = $1`

	lr, err := scanLeave(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	return lr, nil
}

// ListByEmployee implements leave.LeaveRepository.
func (r *leaveRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	query := `SELECT ` + leaveColumns + `
		FROM leave_requests l
		WHERE l.employee_id = $1
		ORDER BY l.created_at DESC`
	return r.list(ctx, query, false, employeeID)
}

// ListPending implements leave.LeaveRepository.
func (r *leaveRepository) ListPending(ctx context.Context) ([]leave.LeaveRequest, error) {
	query := `SELECT ` + leaveColumns + `, u.full_name
		FROM leave_requests l
		LEFT JOIN users u ON u.id = l.employee_id
		WHERE l.status = 'pending'
		ORDER BY l.created_at ASC`
	return r.list(ctx, query, true)
}

func (r *leaveRepository) list(ctx context.Context, query string, withEmployeeName bool, args ...interface{}) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var result []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeave(rows, withEmployeeName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request row: %w", err)
		}
		result = append(result, lr)
	}

	return result, rows.Err()
}

// HasOverlapping implements leave.LeaveRepository.
func (r *leaveRepository) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1
			  AND status IN ('pending', 'approved')
			  AND start_date <= $3
			  AND end_date >= $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check overlapping leave requests: %w", err)
	}

	return exists, nil
}

// Update implements leave.LeaveRepository.
func (r *leaveRepository) Update(ctx context.Context, lr leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests SET
			status = $2,
			reviewed_by = $3,
			reviewed_at = $4,
			rejection_reason = $5,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, lr.ID, lr.Status, lr.ReviewedBy, lr.ReviewedAt, lr.RejectionReason)
	if err != nil {
		return fmt.Errorf("failed to update leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}
