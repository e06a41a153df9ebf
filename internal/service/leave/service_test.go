package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirepath/careers-backend-go/internal/domain/leave"
)

type fakeLeaveRepo struct {
	requests map[string]leave.LeaveRequest
	nextID   int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]leave.LeaveRequest)}
}

func (f *fakeLeaveRepo) Create(_ context.Context, lr leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.nextID++
	lr.ID = fmt.Sprintf("leave-%d", f.nextID)
	lr.CreatedAt = time.Now().UTC()
	lr.UpdatedAt = lr.CreatedAt
	f.requests[lr.ID] = lr
	return lr, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	if lr, ok := f.requests[id]; ok {
		return lr, nil
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepo) ListByEmployee(_ context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	var result []leave.LeaveRequest
	for _, lr := range f.requests {
		if lr.EmployeeID == employeeID {
			result = append(result, lr)
		}
	}
	return result, nil
}

func (f *fakeLeaveRepo) ListPending(_ context.Context) ([]leave.LeaveRequest, error) {
	var result []leave.LeaveRequest
	for _, lr := range f.requests {
		if lr.Status == leave.StatusPending {
			result = append(result, lr)
		}
	}
	return result, nil
}

func (f *fakeLeaveRepo) HasOverlapping(_ context.Context, employeeID string, start, end time.Time) (bool, error) {
	for _, lr := range f.requests {
		if lr.EmployeeID != employeeID {
			continue
		}
		if lr.Status != leave.StatusPending && lr.Status != leave.StatusApproved {
			continue
		}
		if !lr.StartDate.After(end) && !lr.EndDate.Before(start) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLeaveRepo) Update(_ context.Context, lr leave.LeaveRequest) error {
	if _, ok := f.requests[lr.ID]; !ok {
		return leave.ErrLeaveRequestNotFound
	}
	f.requests[lr.ID] = lr
	return nil
}

func employeeContext(id string) context.Context {
	return context.WithValue(context.Background(), "user_id", id)
}

func validRequest() leave.CreateLeaveRequest {
	return leave.CreateLeaveRequest{
		LeaveType: "annual",
		StartDate: "2024-07-01",
		EndDate:   "2024-07-05",
		Reason:    "family trip",
	}
}

func TestSubmit_Success(t *testing.T) {
	svc := NewLeaveService(newFakeLeaveRepo())

	resp, err := svc.Submit(employeeContext("emp-1"), validRequest())
	require.NoError(t, err)

	assert.Equal(t, leave.StatusPending, resp.Status)
	assert.Equal(t, "2024-07-01", resp.StartDate)
	assert.Equal(t, "2024-07-05", resp.EndDate)
}

func TestCreateLeaveRequest_Dates(t *testing.T) {
	req := leave.CreateLeaveRequest{StartDate: "2024-07-01", EndDate: "2024-07-05"}
	start, end, err := req.Dates()
	require.NoError(t, err)
	assert.Equal(t, "2024-07-01", start.Format("2006-01-02"))
	assert.Equal(t, "2024-07-05", end.Format("2006-01-02"))

	malformed := leave.CreateLeaveRequest{StartDate: "07/01/2024", EndDate: "2024-07-05"}
	_, _, err = malformed.Dates()
	assert.Error(t, err)
}

func TestSubmit_OverlapRejected(t *testing.T) {
	svc := NewLeaveService(newFakeLeaveRepo())
	ctx := employeeContext("emp-1")

	_, err := svc.Submit(ctx, validRequest())
	require.NoError(t, err)

	overlapping := leave.CreateLeaveRequest{
		LeaveType: "sick",
		StartDate: "2024-07-04",
		EndDate:   "2024-07-08",
		Reason:    "flu",
	}
	_, err = svc.Submit(ctx, overlapping)
	assert.ErrorIs(t, err, leave.ErrOverlappingRequest)

	// Another employee is unaffected.
	_, err = svc.Submit(employeeContext("emp-2"), overlapping)
	assert.NoError(t, err)
}

func TestSubmit_EndBeforeStart(t *testing.T) {
	svc := NewLeaveService(newFakeLeaveRepo())

	req := validRequest()
	req.StartDate = "2024-07-05"
	req.EndDate = "2024-07-01"

	_, err := svc.Submit(employeeContext("emp-1"), req)
	assert.Error(t, err)
}

func TestApprove_SetsReviewer(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo)

	created, err := svc.Submit(employeeContext("emp-1"), validRequest())
	require.NoError(t, err)

	resp, err := svc.Approve(employeeContext("admin-1"), created.ID)
	require.NoError(t, err)

	assert.Equal(t, leave.StatusApproved, resp.Status)
	require.NotNil(t, resp.ReviewedBy)
	assert.Equal(t, "admin-1", *resp.ReviewedBy)
	assert.NotNil(t, resp.ReviewedAt)
}

func TestApprove_AlreadyProcessed(t *testing.T) {
	svc := NewLeaveService(newFakeLeaveRepo())

	created, err := svc.Submit(employeeContext("emp-1"), validRequest())
	require.NoError(t, err)

	adminCtx := employeeContext("admin-1")
	_, err = svc.Approve(adminCtx, created.ID)
	require.NoError(t, err)

	_, err = svc.Approve(adminCtx, created.ID)
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestReject_RequiresReason(t *testing.T) {
	svc := NewLeaveService(newFakeLeaveRepo())

	created, err := svc.Submit(employeeContext("emp-1"), validRequest())
	require.NoError(t, err)

	_, err = svc.Reject(employeeContext("admin-1"), leave.RejectLeaveRequest{ID: created.ID})
	assert.Error(t, err)

	resp, err := svc.Reject(employeeContext("admin-1"), leave.RejectLeaveRequest{
		ID:     created.ID,
		Reason: "coverage conflict",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, resp.Status)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, "coverage conflict", *resp.RejectionReason)
}

func TestListPending_OnlyPending(t *testing.T) {
	svc := NewLeaveService(newFakeLeaveRepo())

	created, err := svc.Submit(employeeContext("emp-1"), validRequest())
	require.NoError(t, err)

	other := validRequest()
	other.StartDate = "2024-08-01"
	other.EndDate = "2024-08-02"
	_, err = svc.Submit(employeeContext("emp-1"), other)
	require.NoError(t, err)

	_, err = svc.Approve(employeeContext("admin-1"), created.ID)
	require.NoError(t, err)

	pending, err := svc.ListPending(context.Background())
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}
