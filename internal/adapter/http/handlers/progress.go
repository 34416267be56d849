package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"progresstracker/internal/adapter/http/mapper"
	"progresstracker/internal/adapter/http/middleware"
	"progresstracker/internal/core/ports"
	"progresstracker/pkg/apierrors"
)

type ProgressHandler struct {
	progressService ports.ProgressService
}

func NewProgressHandler(progressService ports.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

func (h *ProgressHandler) Dashboard(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetOwnerID(c)

	dashboard, err := h.progressService.Dashboard(c.Request.Context(), ownerID, time.Now())
	if err != nil {
		zap.L().Error("failed to build dashboard", zap.String("owner_id", ownerID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailBuildProgress, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToDashboardResponse(dashboard))
}

// Calendar renders the month grid; year and month default to the current
// month when absent.
func (h *ProgressHandler) Calendar(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetOwnerID(c)

	now := time.Now()
	year := now.Year()
	month := int(now.Month())

	if value := c.Query("year"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 1970 || parsed > 9999 {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCalendarQuery, lang),
			)
			return
		}
		year = parsed
	}
	if value := c.Query("month"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 1 || parsed > 12 {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCalendarQuery, lang),
			)
			return
		}
		month = parsed
	}

	grid, err := h.progressService.Calendar(c.Request.Context(), ownerID, year, time.Month(month))
	if err != nil {
		zap.L().Error("failed to build calendar", zap.String("owner_id", ownerID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailBuildProgress, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCalendarResponse(grid))
}

func (h *ProgressHandler) Report(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetOwnerID(c)

	report, err := h.progressService.Report(c.Request.Context(), ownerID, time.Now())
	if err != nil {
		zap.L().Error("failed to build report", zap.String("owner_id", ownerID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailBuildProgress, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToReportResponse(report))
}
