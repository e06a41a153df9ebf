package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/hirepath/careers-backend-go/internal/domain/attendance"
	"github.com/hirepath/careers-backend-go/internal/pkg/orgtime"
	"github.com/hirepath/careers-backend-go/internal/pkg/validator"
)

type ReportService interface {
	// MonthlyAttendanceExport renders one calendar month of attendance
	// across all employees as an Excel workbook.
	MonthlyAttendanceExport(ctx context.Context, month, year int) (*bytes.Buffer, string, error)
}

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	zone           *time.Location
}

func NewReportService(attendanceRepo attendance.AttendanceRepository, zone *time.Location) ReportService {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		zone:           zone,
	}
}

var reportHeaders = []string{
	"Date", "Employee", "Clock In", "Clock Out",
	"Check-In Location", "Distance (m)", "Status", "Work Hours", "Notes",
}

// MonthlyAttendanceExport implements ReportService.
func (s *ReportServiceImpl) MonthlyAttendanceExport(ctx context.Context, month, year int) (*bytes.Buffer, string, error) {
	var errs validator.ValidationErrors
	if month < 1 || month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	if year < 2000 || year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year must be between 2000 and 2100"})
	}
	if len(errs) > 0 {
		return nil, "", errs
	}

	start, end := orgtime.MonthBounds(year, time.Month(month), s.zone)
	records, err := s.attendanceRepo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list attendance for report: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Attendance"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create report sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, "", fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create header style: %w", err)
	}

	for i, header := range reportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, "", fmt.Errorf("failed to write report header: %w", err)
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "I1", headerStyle); err != nil {
		return nil, "", fmt.Errorf("failed to style report header: %w", err)
	}

	for rowIdx, record := range records {
		row := rowIdx + 2

		employeeName := record.EmployeeID
		if record.EmployeeName != nil {
			employeeName = *record.EmployeeName
		}

		clockOut := ""
		if record.ClockOut != nil {
			clockOut = record.ClockOut.In(s.zone).Format("15:04:05")
		}

		workHours := ""
		if record.WorkHours != nil {
			workHours = fmt.Sprintf("%.2f", *record.WorkHours)
		}

		notes := ""
		if record.Notes != nil {
			notes = *record.Notes
		}

		values := []interface{}{
			attendance.FormatDay(record.Date, s.zone),
			employeeName,
			record.ClockIn.In(s.zone).Format("15:04:05"),
			clockOut,
			record.CheckInLocation.LocationName,
			fmt.Sprintf("%.1f", record.CheckInLocation.DistanceMeters),
			record.Status,
			workHours,
			notes,
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, row)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, "", fmt.Errorf("failed to write report row: %w", err)
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "I", 18); err != nil {
		return nil, "", fmt.Errorf("failed to size report columns: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to render report workbook: %w", err)
	}

	filename := fmt.Sprintf("attendance_%04d_%02d.xlsx", year, month)
	return buf, filename, nil
}
