package domain

// Preferences is the per-owner settings blob. A missing or corrupt stored
// blob falls back to DefaultPreferences; there is no schema versioning.
type Preferences struct {
	ThemeDark   bool   `json:"theme_dark"`
	DefaultTab  string `json:"default_tab"`
	EmailDaily  bool   `json:"email_daily"`
	EmailWeekly bool   `json:"email_weekly"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		ThemeDark:   false,
		DefaultTab:  "dashboard",
		EmailDaily:  true,
		EmailWeekly: true,
	}
}
