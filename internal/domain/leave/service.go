package leave

import "context"

type LeaveService interface {
	// Submit files a leave request for the authenticated employee.
	Submit(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	ListMine(ctx context.Context) ([]LeaveResponse, error)

	// Back-office surface.
	ListPending(ctx context.Context) ([]LeaveResponse, error)
	Approve(ctx context.Context, id string) (LeaveResponse, error)
	Reject(ctx context.Context, req RejectLeaveRequest) (LeaveResponse, error)
}
