package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. The
// (employee_id, date) uniqueness constraint lives in the database; Create
// is the atomic insert-if-absent that makes concurrent duplicate check-ins
// safe, and implementations translate the unique violation to
// ErrAlreadyCheckedIn.
type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate returns the record for the given day key, or
	// (nil, nil) when the employee is absent for that day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// CompleteCheckout applies the checkout mutation only while the record
	// is still open (clock_out IS NULL). Returns false when the record was
	// already checked out, keeping the transition one-way under concurrent
	// requests.
	CompleteCheckout(ctx context.Context, att Attendance) (bool, error)

	// ListByEmployeeBetween returns an employee's records with day keys in
	// [start, end], oldest first.
	ListByEmployeeBetween(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)

	// ListBetween returns all records with day keys in [start, end], joined
	// with employee names, for back-office listings and report export.
	ListBetween(ctx context.Context, start, end time.Time) ([]Attendance, error)

	// List retrieves records with filters and pagination for the
	// back-office.
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)
}
