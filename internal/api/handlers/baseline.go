package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/rjongens/dnswatch/internal/api/models"
	"github.com/rjongens/dnswatch/internal/monitor"
)

// Baseline godoc
// @Summary Current baseline snapshot
// @Description Returns the monitor's current baseline, records in canonical order. 204 until the first successful check cycle.
// @Tags monitor
// @Produce json
// @Success 200 {object} models.BaselineResponse
// @Success 204 "baseline not initialized yet"
// @Security ApiKeyAuth
// @Router /baseline [get]
func (h *Handler) Baseline(c *gin.Context) {
	fn := h.getBaselineFunc()
	if fn == nil {
		c.Status(http.StatusNoContent)
		return
	}

	snap, ok := fn()
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}

	resp := models.BaselineResponse{
		Domain:     h.cfg.Domain,
		Subdomains: make([]models.SubdomainRecords, 0, len(snap)),
	}
	for name, entries := range snap {
		resp.Subdomains = append(resp.Subdomains, models.SubdomainRecords{
			Name:    name,
			Records: toRecordResponses(monitor.Canonical(entries)),
		})
	}
	sort.Slice(resp.Subdomains, func(i, j int) bool {
		return resp.Subdomains[i].Name < resp.Subdomains[j].Name
	})

	c.JSON(http.StatusOK, resp)
}

func toRecordResponses(entries []monitor.RecordEntry) []models.RecordResponse {
	out := make([]models.RecordResponse, len(entries))
	for i, e := range entries {
		out[i] = models.RecordResponse{Type: e.Type, Value: e.Value}
	}
	return out
}
