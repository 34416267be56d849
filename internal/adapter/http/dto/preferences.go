package dto

type PreferencesPayload struct {
	ThemeDark   bool   `json:"theme_dark"`
	DefaultTab  string `json:"default_tab" binding:"omitempty,oneof=dashboard tasks calendar reports settings"`
	EmailDaily  bool   `json:"email_daily"`
	EmailWeekly bool   `json:"email_weekly"`
}
