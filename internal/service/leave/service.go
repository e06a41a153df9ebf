package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/hirepath/careers-backend-go/internal/domain/auth"
	"github.com/hirepath/careers-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository

	now func() time.Time
}

func NewLeaveService(leaveRepository leave.LeaveRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository: leaveRepository,
		now:             time.Now,
	}
}

func userIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value("user_id").(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id is missing from context: %w", auth.ErrUnauthenticated)
	}
	return userID, nil
}

// Submit implements leave.LeaveService.
func (l *LeaveServiceImpl) Submit(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	employeeID, err := userIDFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	start, end, err := req.Dates()
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	overlapping, err := l.LeaveRepository.HasOverlapping(ctx, employeeID, start, end)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to check overlapping requests: %w", err)
	}
	if overlapping {
		return leave.LeaveResponse{}, leave.ErrOverlappingRequest
	}

	created, err := l.LeaveRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID: employeeID,
		LeaveType:  req.LeaveType,
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return toResponse(created), nil
}

// ListMine implements leave.LeaveService.
func (l *LeaveServiceImpl) ListMine(ctx context.Context) ([]leave.LeaveResponse, error) {
	employeeID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := l.LeaveRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return toResponses(requests), nil
}

// ListPending implements leave.LeaveService.
func (l *LeaveServiceImpl) ListPending(ctx context.Context) ([]leave.LeaveResponse, error) {
	requests, err := l.LeaveRepository.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave requests: %w", err)
	}

	return toResponses(requests), nil
}

// Approve implements leave.LeaveService.
func (l *LeaveServiceImpl) Approve(ctx context.Context, id string) (leave.LeaveResponse, error) {
	reviewerID, err := userIDFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	request, err := l.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if request.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrAlreadyProcessed
	}

	reviewedAt := l.now().UTC()
	request.Status = leave.StatusApproved
	request.ReviewedBy = &reviewerID
	request.ReviewedAt = &reviewedAt

	if err := l.LeaveRepository.Update(ctx, request); err != nil {
		return leave.LeaveResponse{}, err
	}

	return toResponse(request), nil
}

// Reject implements leave.LeaveService.
func (l *LeaveServiceImpl) Reject(ctx context.Context, req leave.RejectLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	reviewerID, err := userIDFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	request, err := l.LeaveRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if request.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrAlreadyProcessed
	}

	reviewedAt := l.now().UTC()
	request.Status = leave.StatusRejected
	request.ReviewedBy = &reviewerID
	request.ReviewedAt = &reviewedAt
	request.RejectionReason = &req.Reason

	if err := l.LeaveRepository.Update(ctx, request); err != nil {
		return leave.LeaveResponse{}, err
	}

	return toResponse(request), nil
}

func toResponse(lr leave.LeaveRequest) leave.LeaveResponse {
	resp := leave.LeaveResponse{
		ID:              lr.ID,
		EmployeeID:      lr.EmployeeID,
		EmployeeName:    lr.EmployeeName,
		LeaveType:       lr.LeaveType,
		StartDate:       lr.StartDate.Format("2006-01-02"),
		EndDate:         lr.EndDate.Format("2006-01-02"),
		Reason:          lr.Reason,
		Status:          lr.Status,
		ReviewedBy:      lr.ReviewedBy,
		RejectionReason: lr.RejectionReason,
		CreatedAt:       lr.CreatedAt.Format(time.RFC3339),
	}
	if lr.ReviewedAt != nil {
		reviewedAt := lr.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &reviewedAt
	}
	return resp
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveResponse {
	result := make([]leave.LeaveResponse, 0, len(requests))
	for _, lr := range requests {
		result = append(result, toResponse(lr))
	}
	return result
}
