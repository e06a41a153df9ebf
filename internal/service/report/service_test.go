package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hirepath/careers-backend-go/internal/domain/attendance"
)

var testZone = time.FixedZone("IST", 5*3600+30*60)

type fakeAttendanceRepo struct {
	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	f.records = append(f.records, att)
	return att, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, _ string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, _ string, _ time.Time) (*attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) CompleteCheckout(_ context.Context, _ attendance.Attendance) (bool, error) {
	return false, nil
}

func (f *fakeAttendanceRepo) ListByEmployeeBetween(_ context.Context, _ string, _, _ time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListBetween(_ context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, att := range f.records {
		if !att.Date.Before(start) && !att.Date.After(end) {
			result = append(result, att)
		}
	}
	return result, nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, _ attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}

func sampleRecord(day time.Time, employee string) attendance.Attendance {
	clockOut := day.Add(9 * time.Hour)
	workHours := 8.5
	name := employee + " Name"
	return attendance.Attendance{
		ID:         "att-" + employee,
		EmployeeID: employee,
		Date:       day,
		ClockIn:    day.Add(4*time.Hour + 30*time.Minute),
		ClockOut:   &clockOut,
		CheckInLocation: attendance.LocationSnapshot{
			LocationID:     "loc-1",
			LocationName:   "Head Office",
			Latitude:       28.6,
			Longitude:      77.2,
			DistanceMeters: 12.3,
		},
		Status:       attendance.StatusCheckedOut,
		WorkHours:    &workHours,
		EmployeeName: &name,
	}
}

func TestMonthlyAttendanceExport(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	// 2024-03-14T18:30:00Z is org-zone midnight of March 15 in IST.
	day := time.Date(2024, 3, 14, 18, 30, 0, 0, time.UTC)
	repo.records = append(repo.records, sampleRecord(day, "emp-1"))
	// A record outside March must not appear.
	repo.records = append(repo.records, sampleRecord(day.AddDate(0, 2, 0), "emp-2"))

	svc := NewReportService(repo, testZone)

	buf, filename, err := svc.MonthlyAttendanceExport(context.Background(), 3, 2024)
	require.NoError(t, err)
	assert.Equal(t, "attendance_2024_03.xlsx", filename)

	workbook, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer workbook.Close()

	rows, err := workbook.GetRows("Attendance")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, "2024-03-15", rows[1][0])
	assert.Equal(t, "emp-1 Name", rows[1][1])
	assert.Equal(t, "Head Office", rows[1][4])
	assert.Equal(t, "checked_out", rows[1][6])
	assert.Equal(t, "8.50", rows[1][7])
}

func TestMonthlyAttendanceExport_InvalidMonth(t *testing.T) {
	svc := NewReportService(&fakeAttendanceRepo{}, testZone)

	_, _, err := svc.MonthlyAttendanceExport(context.Background(), 0, 2024)
	assert.Error(t, err)
}
