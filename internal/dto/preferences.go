package dto

import "github.com/viltrumflow/taskflow-api/internal/models"

// PreferencesUpdateRequest is a partial update of the current user's preferences.
type PreferencesUpdateRequest struct {
	Theme         Optional[models.Theme] `json:"theme"`
	Language      Optional[string]       `json:"language"`
	Notifications Optional[bool]         `json:"notifications_enabled"`
}

// Validate checks the sent fields.
func (r PreferencesUpdateRequest) Validate() error {
	var c checker
	if c.notNull("theme", r.Theme.Set, r.Theme.Null) && r.Theme.Present() {
		c.check("theme", string(r.Theme.Value), "theme")
	}
	if c.notNull("language", r.Language.Set, r.Language.Null) && r.Language.Present() {
		c.check("language", r.Language.Value, "min=1,max=5")
	}
	c.notNull("notifications_enabled", r.Notifications.Set, r.Notifications.Null)
	return c.err()
}

// Changes maps the sent fields to column values.
func (r PreferencesUpdateRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if r.Theme.Set {
		changes["theme"] = r.Theme.Value
	}
	if r.Language.Set {
		changes["language"] = r.Language.Value
	}
	if r.Notifications.Set {
		changes["notifications_enabled"] = r.Notifications.Value
	}
	return changes
}

// ThemeUpdateRequest sets only the theme.
type ThemeUpdateRequest struct {
	Theme models.Theme `json:"theme" binding:"required,theme"`
}

// PreferencesResponse holds the user's theme, language and notification settings.
type PreferencesResponse struct {
	Theme         models.Theme `json:"theme"`
	Language      string       `json:"language"`
	Notifications bool         `json:"notifications_enabled"`
}

// PreferencesEnvelope wraps preferences with a success flag and message.
type PreferencesEnvelope struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message,omitempty"`
	Preferences PreferencesResponse `json:"preferences"`
}

// ThemeEnvelope is the response to a theme change.
type ThemeEnvelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Theme   models.Theme `json:"theme"`
}

// ToPreferencesResponse reads the preference columns of a User.
func ToPreferencesResponse(user models.User) PreferencesResponse {
	return PreferencesResponse{
		Theme:         user.Theme,
		Language:      user.Language,
		Notifications: user.Notifications,
	}
}
