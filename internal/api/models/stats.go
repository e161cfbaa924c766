package models

import "time"

// StatsResponse contains daemon runtime statistics.
type StatsResponse struct {
	Uptime        string       `json:"uptime"`
	UptimeSeconds int64        `json:"uptime_seconds"`
	StartTime     time.Time    `json:"start_time"`
	GoRoutines    int          `json:"goroutines"`
	MemoryAllocMB float64      `json:"memory_alloc_mb"`
	NumCPU        int          `json:"num_cpu"`
	Process       ProcessStats `json:"process"`
	Monitor       MonitorStats `json:"monitor"`
}

// ProcessStats contains OS-level process metrics.
type ProcessStats struct {
	RSSMB      float64 `json:"rss_mb"`
	CPUPercent float64 `json:"cpu_percent"`
}

// MonitorStats mirrors the monitor runner's counters.
type MonitorStats struct {
	Cycles              uint64    `json:"cycles"`
	FetchFailures       uint64    `json:"fetch_failures"`
	EventsEmitted       uint64    `json:"events_emitted"`
	NotifyFailures      uint64    `json:"notify_failures"`
	LastCheck           time.Time `json:"last_check"`
	LastChange          time.Time `json:"last_change"`
	BaselineInitialized bool      `json:"baseline_initialized"`
}
