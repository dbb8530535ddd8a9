package handlers

import (
	"net/http"
	"time"

	response "github.com/sperry-entelech/entelech-sales-process-automation/internal/adapter/http/dto/response"
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/usecase"
	"github.com/sperry-entelech/entelech-sales-process-automation/pkg"

	"github.com/gin-gonic/gin"
)

const defaultAnalyticsWindowDays = 30

var errInvalidAnalyticsRange = pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "Dates must be RFC 3339 or YYYY-MM-DD and from must not be after to", http.StatusBadRequest)

// AnalyticsHandler serves the pipeline performance report.

type AnalyticsHandler struct {
	usecase usecase.IAnalyticsUseCase
}

func NewAnalyticsHandler(uc usecase.IAnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{usecase: uc}
}

// GetAnalytics aggregates the funnel over [from, to]; without query
// parameters the window is the last 30 days.
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	to, ok := parseDateParam(c.Query("to"), time.Now().UTC())
	if !ok {
		c.JSON(errInvalidAnalyticsRange.HTTPStatus, errInvalidAnalyticsRange.ToHTTPError())
		return
	}
	from, ok := parseDateParam(c.Query("from"), to.AddDate(0, 0, -defaultAnalyticsWindowDays))
	if !ok || from.After(to) {
		c.JSON(errInvalidAnalyticsRange.HTTPStatus, errInvalidAnalyticsRange.ToHTTPError())
		return
	}

	report, err := h.usecase.GetAnalytics(c.Request.Context(), from, to)
	if err != nil {
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAnalyticsReport(from, to, report))
}

func parseDateParam(raw string, def time.Time) (time.Time, bool) {
	if raw == "" {
		return def, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}
