package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/hirepath/careers-backend-go/internal/domain/settings"
	"github.com/hirepath/careers-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &settingsHandlerImpl{
		settingsService: settingsService,
	}
}

// Get implements SettingsHandler. Readable by any authenticated role so
// clients can render the check-in/out windows.
func (h *settingsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toSettingsResponse(result))
}

// Update implements SettingsHandler.
func (h *settingsHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.settingsService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settings updated", toSettingsResponse(result))
}

func toSettingsResponse(s settings.Settings) settings.SettingsResponse {
	return settings.SettingsResponse{
		CheckInStartHour:  s.CheckInStartHour,
		CheckInEndHour:    s.CheckInEndHour,
		CheckOutStartHour: s.CheckOutStartHour,
		UpdatedAt:         s.UpdatedAt.Format(time.RFC3339),
	}
}
