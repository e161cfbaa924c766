package handlers

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/rjongens/dnswatch/internal/api/models"
)

// Stats godoc
// @Summary Daemon statistics
// @Description Returns runtime statistics: memory, goroutines, process metrics and monitor counters
// @Tags system
// @Produce json
// @Success 200 {object} models.StatsResponse
// @Security ApiKeyAuth
// @Router /stats [get]
func (h *Handler) Stats(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.startTime)

	resp := models.StatsResponse{
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		StartTime:     h.startTime,
		GoRoutines:    runtime.NumGoroutine(),
		MemoryAllocMB: float64(m.Alloc) / 1024 / 1024,
		NumCPU:        runtime.NumCPU(),
		Process:       processStats(),
	}

	if fn := h.getStatusFunc(); fn != nil {
		st := fn()
		resp.Monitor = models.MonitorStats{
			Cycles:              st.Cycles,
			FetchFailures:       st.FetchFailures,
			EventsEmitted:       st.EventsEmitted,
			NotifyFailures:      st.NotifyFailures,
			LastCheck:           st.LastCheck,
			LastChange:          st.LastChange,
			BaselineInitialized: st.Initialized,
		}
	}

	c.JSON(http.StatusOK, resp)
}

// processStats reads OS-level metrics for this process. Failures leave
// the fields zeroed; stats reporting never fails the request.
func processStats() models.ProcessStats {
	var ps models.ProcessStats

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return ps
	}
	if mi, err := proc.MemoryInfo(); err == nil && mi != nil {
		ps.RSSMB = float64(mi.RSS) / 1024 / 1024
	}
	if cpu, err := proc.CPUPercent(); err == nil {
		ps.CPUPercent = cpu
	}
	return ps
}
