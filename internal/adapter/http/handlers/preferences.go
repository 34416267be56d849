package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"progresstracker/internal/adapter/http/dto"
	"progresstracker/internal/adapter/http/middleware"
	"progresstracker/internal/core/domain"
	"progresstracker/internal/core/ports"
	"progresstracker/pkg/apierrors"
)

type PreferenceHandler struct {
	preferenceService ports.PreferenceService
}

func NewPreferenceHandler(preferenceService ports.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService}
}

func (h *PreferenceHandler) Get(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetOwnerID(c)

	prefs, err := h.preferenceService.Get(c.Request.Context(), ownerID)
	if err != nil {
		zap.L().Error("failed to load preferences", zap.String("owner_id", ownerID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailPreferences, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.PreferencesPayload{
		ThemeDark:   prefs.ThemeDark,
		DefaultTab:  prefs.DefaultTab,
		EmailDaily:  prefs.EmailDaily,
		EmailWeekly: prefs.EmailWeekly,
	})
}

func (h *PreferenceHandler) Put(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetOwnerID(c)

	var req dto.PreferencesPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPreferences, lang),
		)
		return
	}

	prefs := domain.Preferences{
		ThemeDark:   req.ThemeDark,
		DefaultTab:  req.DefaultTab,
		EmailDaily:  req.EmailDaily,
		EmailWeekly: req.EmailWeekly,
	}
	if prefs.DefaultTab == "" {
		prefs.DefaultTab = domain.DefaultPreferences().DefaultTab
	}

	if err := h.preferenceService.Save(c.Request.Context(), ownerID, prefs); err != nil {
		zap.L().Error("failed to save preferences", zap.String("owner_id", ownerID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailPreferences, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.PreferencesPayload{
		ThemeDark:   prefs.ThemeDark,
		DefaultTab:  prefs.DefaultTab,
		EmailDaily:  prefs.EmailDaily,
		EmailWeekly: prefs.EmailWeekly,
	})
}
