package api

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/expomadeinworld/preference-service/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
)

// Handler holds the document store and event forwarder and provides the HTTP
// handlers.
type Handler struct {
	store       Store
	forwarder   *logging.NewRelicForwarder
	environment string
	startedAt   time.Time
}

// NewHandler creates a handler instance. The store may be nil when the
// document store was unreachable at startup; validators then treat every
// identifier as invalid.
func NewHandler(store Store, forwarder *logging.NewRelicForwarder, environment string) *Handler {
	return &Handler{
		store:       store,
		forwarder:   forwarder,
		environment: environment,
		startedAt:   time.Now(),
	}
}

// logEvent forwards one structured event batch; delivery is detached and
// best-effort.
func (h *Handler) logEvent(action, brandID, locale string, status int, message string) {
	level := "info"
	if status >= http.StatusBadRequest {
		level = "error"
	}
	h.forwarder.Send([]logging.Event{{
		Service:     "preference-service",
		Environment: h.environment,
		Level:       level,
		Action:      action,
		BrandID:     brandID,
		Locale:      locale,
		StatusCode:  status,
		Message:     message,
		Timestamp:   time.Now().UnixMilli(),
	}})
}

// Health reports process uptime, memory figures, and host load.
func (h *Handler) Health(c *gin.Context) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	loadAvg := []float64{0, 0, 0}
	if avg, err := load.Avg(); err == nil {
		loadAvg = []float64{avg.Load1, avg.Load5, avg.Load15}
	}

	freeMem, totalMem := "0.00 GB", "0.00 GB"
	if vm, err := mem.VirtualMemory(); err == nil {
		freeMem = formatGB(vm.Available)
		totalMem = formatGB(vm.Total)
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "OK",
		"uptime": formatUptime(time.Since(h.startedAt)),
		"memoryUsage": gin.H{
			"rss":       formatMB(ms.Sys),
			"heapTotal": formatMB(ms.HeapSys),
			"heapUsed":  formatMB(ms.HeapAlloc),
			"external":  formatMB(ms.StackSys),
		},
		"loadAverage": loadAvg,
		"freeMemory":  freeMem,
		"totalMemory": totalMem,
	})
}

func formatUptime(d time.Duration) string {
	secs := int64(d.Seconds())
	days := secs / 86400
	hours := (secs % 86400) / 3600
	mins := (secs % 3600) / 60
	return fmt.Sprintf("%dd %dh %dm %ds", days, hours, mins, secs%60)
}

func formatMB(b uint64) string {
	return fmt.Sprintf("%.2f MB", float64(b)/(1024*1024))
}

func formatGB(b uint64) string {
	return fmt.Sprintf("%.2f GB", float64(b)/(1024*1024*1024))
}
