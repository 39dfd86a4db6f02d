package debug

import (
	"bytes"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/htmlpg/pvfll-portal/internal/domains/mq"
)

type MQHandler struct {
	startedAt time.Time
}

func NewMQHandler() *MQHandler {
	return &MQHandler{
		startedAt: time.Now(),
	}
}

type dumpHeapResponse struct {
	mq.Response

	Data []byte `json:"data"`
}

// DumpHeap returns pprof heap profile of the process.
func (h *MQHandler) DumpHeap(_ *nats.Msg) (resp any) {
	var buf bytes.Buffer
	if err := pprof.WriteHeapProfile(&buf); err != nil {
		log.Error().Err(err).Msg("DumpHeap")
		return mq.NewInternalErrorResponse(err.Error())
	}

	return dumpHeapResponse{
		Response: mq.NewOkResponse(),
		Data:     buf.Bytes(),
	}
}

type runtimeStats struct {
	Uptime      string `json:"uptime"`
	Goroutines  int    `json:"goroutines"`
	HeapAlloc   uint64 `json:"heap_alloc"`
	HeapObjects uint64 `json:"heap_objects"`
	Sys         uint64 `json:"sys"`
	NumGC       uint32 `json:"num_gc"`
	LastGCPause uint64 `json:"last_gc_pause_ns"`
}

type statsResponse struct {
	mq.Response

	Data runtimeStats `json:"data"`
}

// Stats returns runtime counters and logs them.
func (h *MQHandler) Stats(_ *nats.Msg) (resp any) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	stats := runtimeStats{
		Uptime:      time.Since(h.startedAt).Round(time.Second).String(),
		Goroutines:  runtime.NumGoroutine(),
		HeapAlloc:   mem.HeapAlloc,
		HeapObjects: mem.HeapObjects,
		Sys:         mem.Sys,
		NumGC:       mem.NumGC,
		LastGCPause: mem.PauseNs[(mem.NumGC+255)%256],
	}

	log.Info().
		Str("uptime", stats.Uptime).
		Int("goroutines", stats.Goroutines).
		Uint64("heap alloc", stats.HeapAlloc).
		Uint64("sys", stats.Sys).
		Uint32("num gc", stats.NumGC).
		Msg("Stats: runtime stats")

	return statsResponse{
		Response: mq.NewOkResponse(),
		Data:     stats,
	}
}
