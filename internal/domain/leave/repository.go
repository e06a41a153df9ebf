package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, lr LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	// ListPending returns unprocessed requests for the back-office queue,
	// oldest first.
	ListPending(ctx context.Context) ([]LeaveRequest, error)
	// HasOverlapping reports whether the employee already has a pending or
	// approved request intersecting [start, end].
	HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
	Update(ctx context.Context, lr LeaveRequest) error
}
