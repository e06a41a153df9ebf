package attendance

import "context"

type AttendanceService interface {
	// CheckIn moves the caller from absent to checked_in for the current
	// org-zone day. Fails with ErrAlreadyCheckedIn, ErrOutsideGeofence or
	// ErrOutsideCheckInWindow.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut completes today's record, computing work hours. Fails with
	// ErrNoActiveCheckIn (also on a second check-out), ErrOutsideGeofence
	// or ErrOutsideCheckOutWindow.
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	GetTodayStatus(ctx context.Context) (TodayStatusResponse, error)

	// GetHistory returns the caller's records for one calendar month.
	GetHistory(ctx context.Context, filter HistoryFilter) ([]AttendanceResponse, error)

	// ListAttendance is the back-office listing across employees.
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
}
