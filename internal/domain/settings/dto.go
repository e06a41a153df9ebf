package settings

// UpdateSettingsRequest is a partial update; nil fields keep their current
// value. Validation happens against the merged result so the stored
// invariant check_in_start_hour < check_in_end_hour can never be broken by
// a single-field update.
type UpdateSettingsRequest struct {
	CheckInStartHour  *int `json:"check_in_start_hour,omitempty"`
	CheckInEndHour    *int `json:"check_in_end_hour,omitempty"`
	CheckOutStartHour *int `json:"check_out_start_hour,omitempty"`
}

type SettingsResponse struct {
	CheckInStartHour  int    `json:"check_in_start_hour"`
	CheckInEndHour    int    `json:"check_in_end_hour"`
	CheckOutStartHour int    `json:"check_out_start_hour"`
	UpdatedAt         string `json:"updated_at"`
}
