package request

type UpdatePreferencesRequest struct {
	DarkMode *bool `json:"darkMode" binding:"required"`
}
