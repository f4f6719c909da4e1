package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"campusservice/internal/delivery/http/helpers"
	"campusservice/internal/domain"
)

type ReportController struct {
	Logger  *slog.Logger
	Service domain.ReportService
}

func NewReportController(logger *slog.Logger, svc domain.ReportService) *ReportController {
	return &ReportController{Logger: logger, Service: svc}
}

// EventSummaries godoc
// @Summary Summaries for all events
// @Description Per-event scheduling fields, confirmed/waitlisted counts, and conflict state. Recomputed on every call.
// @Tags reports
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Router /api/events/summary [get]
func (c *ReportController) EventSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := c.Service.EventSummaries(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, summaries)
}

// EventSummary godoc
// @Summary Summary for one event
// @Tags reports
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/events/{eventID}/summary [get]
func (c *ReportController) EventSummary(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	summary, err := c.Service.EventSummary(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, summary)
}

// ConflictReport godoc
// @Summary Conflicting events
// @Description Every invalid event with the ordered ids of the earlier events it overlaps.
// @Tags reports
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Router /api/conflicts [get]
func (c *ReportController) ConflictReport(w http.ResponseWriter, r *http.Request) {
	entries, err := c.Service.ConflictReport(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, entries)
}

// RequestStatusReport godoc
// @Summary Service requests by status
// @Description Zero-filled counts per status plus up to three example requests each.
// @Tags reports
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Router /api/requests/report [get]
func (c *ReportController) RequestStatusReport(w http.ResponseWriter, r *http.Request) {
	report, err := c.Service.RequestStatusReport(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, report)
}
