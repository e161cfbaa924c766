package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rjongens/dnswatch/internal/api/models"
)

const (
	defaultEventsLimit = 50
	maxEventsLimit     = 500
)

// Events godoc
// @Summary Recent change events
// @Description Returns journaled change events, newest first
// @Tags monitor
// @Produce json
// @Param limit query int false "maximum number of events (default 50, max 500)"
// @Success 200 {object} models.EventsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /events [get]
func (h *Handler) Events(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "journal disabled"})
		return
	}

	limit := defaultEventsLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = min(n, maxEventsLimit)
	}

	entries, err := h.db.Recent(c.Request.Context(), limit)
	if err != nil {
		if h.logger != nil {
			h.logger.Error("journal query failed", "err", err)
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "journal query failed"})
		return
	}

	resp := models.EventsResponse{Events: make([]models.EventResponse, len(entries))}
	for i, e := range entries {
		resp.Events[i] = models.EventResponse{
			ID:         e.ID,
			DetectedAt: e.DetectedAt,
			Subdomain:  e.Subdomain,
			FQDN:       e.FQDN,
			OldRecords: toRecordResponses(e.Old),
			NewRecords: toRecordResponses(e.New),
		}
	}
	c.JSON(http.StatusOK, resp)
}
