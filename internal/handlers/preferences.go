package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/viltrumflow/taskflow-api/internal/dto"
	"github.com/viltrumflow/taskflow-api/internal/services"
)

type PreferencesHandler struct {
	preferencesService *services.PreferencesService
}

func NewPreferencesHandler(preferencesService *services.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{preferencesService: preferencesService}
}

func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	current, ok := actor(c)
	if !ok {
		return
	}

	prefs, err := h.preferencesService.Get(c.Request.Context(), current.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.PreferencesEnvelope{Success: true, Preferences: prefs})
}

func (h *PreferencesHandler) UpdatePreferences(c *gin.Context) {
	current, ok := actor(c)
	if !ok {
		return
	}
	var req dto.PreferencesUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	prefs, err := h.preferencesService.Update(c.Request.Context(), current.ID, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.PreferencesEnvelope{
		Success:     true,
		Message:     "Preferences updated successfully",
		Preferences: prefs,
	})
}

func (h *PreferencesHandler) UpdateTheme(c *gin.Context) {
	current, ok := actor(c)
	if !ok {
		return
	}
	var req dto.ThemeUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	prefs, err := h.preferencesService.UpdateTheme(c.Request.Context(), current.ID, req.Theme)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ThemeEnvelope{
		Success: true,
		Message: "Theme updated successfully",
		Theme:   prefs.Theme,
	})
}
