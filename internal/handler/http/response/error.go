package response

import (
	"errors"
	"net/http"

	"github.com/hirepath/careers-backend-go/internal/domain/attendance"
	"github.com/hirepath/careers-backend-go/internal/domain/auth"
	"github.com/hirepath/careers-backend-go/internal/domain/job"
	"github.com/hirepath/careers-backend-go/internal/domain/leave"
	"github.com/hirepath/careers-backend-go/internal/domain/location"
	"github.com/hirepath/careers-backend-go/internal/domain/settings"
	"github.com/hirepath/careers-backend-go/internal/domain/user"
	"github.com/hirepath/careers-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrUnauthenticated):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, "OAuth state mismatch")
	case errors.Is(err, auth.ErrOAuthDisabled):
		BadRequest(w, "Google sign-in is not configured", nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNoActiveCheckIn):
		Conflict(w, "No active check-in for today")
	case errors.Is(err, attendance.ErrOutsideGeofence):
		BadRequest(w, "You are not within any registered attendance location", nil)
	case errors.Is(err, attendance.ErrOutsideCheckInWindow):
		BadRequest(w, "Check-in is not allowed at this hour", nil)
	case errors.Is(err, attendance.ErrOutsideCheckOutWindow):
		BadRequest(w, "Check-out is not allowed yet", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Location and settings errors
	case errors.Is(err, location.ErrLocationNotFound):
		NotFound(w, "Location not found")
	case errors.Is(err, settings.ErrInvalidSettings):
		BadRequest(w, "Invalid attendance settings", nil)

	// Jobs domain errors
	case errors.Is(err, job.ErrPostingNotFound):
		NotFound(w, "Job posting not found")
	case errors.Is(err, job.ErrPostingNotOpen):
		Conflict(w, "Job posting is not accepting applications")
	case errors.Is(err, job.ErrApplicationNotFound):
		NotFound(w, "Application not found")
	case errors.Is(err, job.ErrAlreadyApplied):
		Conflict(w, "You have already applied to this posting")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrOverlappingRequest):
		Conflict(w, "An overlapping leave request already exists")

	// Anything else is an infrastructure failure (persistence, mail,
	// storage); the caller may retry with backoff.
	default:
		ServiceUnavailable(w, "Service temporarily unavailable, please retry")
	}
}
