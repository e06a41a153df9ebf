package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hirepath/careers-backend-go/internal/domain/attendance"
	"github.com/hirepath/careers-backend-go/internal/domain/auth"
	"github.com/hirepath/careers-backend-go/internal/domain/location"
	"github.com/hirepath/careers-backend-go/internal/domain/settings"
	"github.com/hirepath/careers-backend-go/internal/pkg/orgtime"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	locationService location.LocationService
	settingsService settings.SettingsService
	zone            *time.Location

	// now is swappable so the window and day-boundary logic is testable
	// against fixed instants.
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	locationService location.LocationService,
	settingsService settings.SettingsService,
	zone *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		locationService:      locationService,
		settingsService:      settingsService,
		zone:                 zone,
		now:                  time.Now,
	}
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value("user_id").(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id is missing from context: %w", auth.ErrUnauthenticated)
	}
	return userID, nil
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowUTC := a.now().UTC()
	dayKey := orgtime.DayStart(nowUTC, a.zone)

	// Fast-path existence check for a friendly error. The UNIQUE
	// (employee_id, date) constraint behind Create is what actually
	// guarantees at most one record per day under concurrent submits.
	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, dayKey)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	match, err := a.locationService.FindContaining(ctx, req.Latitude, req.Longitude)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to resolve geofence: %w", err)
	}
	if match == nil {
		return attendance.AttendanceResponse{}, attendance.ErrOutsideGeofence
	}

	cfg, err := a.settingsService.Get(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load attendance settings: %w", err)
	}

	// Check-in window is [start, end) in org-zone hours.
	hour := orgtime.HourIn(nowUTC, a.zone)
	if hour < cfg.CheckInStartHour || hour >= cfg.CheckInEndHour {
		return attendance.AttendanceResponse{}, attendance.ErrOutsideCheckInWindow
	}

	record := attendance.Attendance{
		EmployeeID: employeeID,
		Date:       dayKey,
		ClockIn:    nowUTC,
		CheckInLocation: attendance.LocationSnapshot{
			LocationID:     match.Location.ID,
			LocationName:   match.Location.Name,
			Latitude:       req.Latitude,
			Longitude:      req.Longitude,
			DistanceMeters: match.DistanceMeters,
		},
		Status: attendance.StatusCheckedIn,
		Notes:  req.Notes,
	}

	created, err := a.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return a.toResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowUTC := a.now().UTC()
	dayKey := orgtime.DayStart(nowUTC, a.zone)

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, dayKey)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil || record.ClockOut != nil {
		// Absent and already-checked-out both fail the same way: there is
		// no active check-in to complete. Checkout is one-way.
		return attendance.AttendanceResponse{}, attendance.ErrNoActiveCheckIn
	}

	cfg, err := a.settingsService.Get(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load attendance settings: %w", err)
	}

	hour := orgtime.HourIn(nowUTC, a.zone)
	if hour < cfg.CheckOutStartHour {
		return attendance.AttendanceResponse{}, attendance.ErrOutsideCheckOutWindow
	}

	// Geofence is evaluated again independently: checking out from a
	// different registered location than check-in is allowed.
	match, err := a.locationService.FindContaining(ctx, req.Latitude, req.Longitude)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to resolve geofence: %w", err)
	}
	if match == nil {
		return attendance.AttendanceResponse{}, attendance.ErrOutsideGeofence
	}

	workHours := roundHours(nowUTC.Sub(record.ClockIn).Hours())

	record.ClockOut = &nowUTC
	record.CheckOutLocation = &attendance.LocationSnapshot{
		LocationID:     match.Location.ID,
		LocationName:   match.Location.Name,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		DistanceMeters: match.DistanceMeters,
	}
	record.Status = attendance.StatusCheckedOut
	record.WorkHours = &workHours
	if req.Notes != nil {
		record.Notes = req.Notes
	}

	completed, err := a.AttendanceRepository.CompleteCheckout(ctx, *record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !completed {
		// Lost the race to a concurrent checkout.
		return attendance.AttendanceResponse{}, attendance.ErrNoActiveCheckIn
	}

	return a.toResponse(*record), nil
}

// GetTodayStatus implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetTodayStatus(ctx context.Context) (attendance.TodayStatusResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.TodayStatusResponse{}, err
	}

	nowUTC := a.now().UTC()
	dayKey := orgtime.DayStart(nowUTC, a.zone)

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, dayKey)
	if err != nil {
		return attendance.TodayStatusResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	status := attendance.TodayStatusResponse{
		Date: attendance.FormatDay(dayKey, a.zone),
	}

	if record == nil {
		status.CanCheckIn = true
		return status, nil
	}

	resp := a.toResponse(*record)
	status.Attendance = &resp
	status.CheckedIn = true
	status.CheckedOut = record.ClockOut != nil
	status.CanCheckOut = record.ClockOut == nil

	return status, nil
}

// GetHistory implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetHistory(ctx context.Context, filter attendance.HistoryFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	start, end := orgtime.MonthBounds(filter.Year, time.Month(filter.Month), a.zone)

	records, err := a.AttendanceRepository.ListByEmployeeBetween(ctx, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance history: %w", err)
	}

	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		result = append(result, a.toResponse(record))
	}

	return result, nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	// Resolve org-zone day strings into the day-key instants repositories
	// filter on.
	if filter.StartDate != nil && *filter.StartDate != "" {
		day, err := time.ParseInLocation("2006-01-02", *filter.StartDate, a.zone)
		if err != nil {
			return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to parse start_date: %w", err)
		}
		start := day.UTC()
		filter.Start = &start
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		day, err := time.ParseInLocation("2006-01-02", *filter.EndDate, a.zone)
		if err != nil {
			return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to parse end_date: %w", err)
		}
		_, end := orgtime.DayBounds(day.UTC(), a.zone)
		filter.End = &end
	}

	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	attendances := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		attendances = append(attendances, a.toResponse(record))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Attendances: attendances,
	}, nil
}

// roundHours rounds elapsed hours to 2 decimals, so 150 minutes reads as
// exactly 2.5.
func roundHours(hours float64) float64 {
	return math.Round(hours*100) / 100
}

func (a *AttendanceServiceImpl) toResponse(record attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:           record.ID,
		EmployeeID:   record.EmployeeID,
		EmployeeName: record.EmployeeName,
		Date:         attendance.FormatDay(record.Date, a.zone),
		CheckInLocation: attendance.LocationSnapshotResponse{
			LocationID:     record.CheckInLocation.LocationID,
			LocationName:   record.CheckInLocation.LocationName,
			Latitude:       record.CheckInLocation.Latitude,
			Longitude:      record.CheckInLocation.Longitude,
			DistanceMeters: record.CheckInLocation.DistanceMeters,
		},
		Status:    record.Status,
		WorkHours: record.WorkHours,
		Notes:     record.Notes,
	}

	resp.ClockIn = record.ClockIn.Format(time.RFC3339)
	if record.ClockOut != nil {
		clockOut := record.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &clockOut
	}
	if record.CheckOutLocation != nil {
		resp.CheckOutLocation = &attendance.LocationSnapshotResponse{
			LocationID:     record.CheckOutLocation.LocationID,
			LocationName:   record.CheckOutLocation.LocationName,
			Latitude:       record.CheckOutLocation.Latitude,
			Longitude:      record.CheckOutLocation.Longitude,
			DistanceMeters: record.CheckOutLocation.DistanceMeters,
		}
	}

	return resp
}
