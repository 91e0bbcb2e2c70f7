package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	parseRequestsTotal  atomic.Uint64
	parseFailedTotal    atomic.Uint64
	llmInvocationsTotal atomic.Uint64
	llmFailuresTotal    atomic.Uint64
	auditDroppedTotal   atomic.Uint64

	parseDuration = newHistogram([]float64{1, 5, 10, 50, 100, 250, 500, 1000, 2000, 5000, 10000})
)

// IncParseRequests increments the parse request counter.
func IncParseRequests() {
	parseRequestsTotal.Add(1)
}

// IncParseFailed increments the failed parse counter.
func IncParseFailed() {
	parseFailedTotal.Add(1)
}

// IncLLMInvocations increments the model invocation counter.
func IncLLMInvocations() {
	llmInvocationsTotal.Add(1)
}

// IncLLMFailures increments the model failure counter.
func IncLLMFailures() {
	llmFailuresTotal.Add(1)
}

// IncAuditDropped increments the dropped audit write counter.
func IncAuditDropped() {
	auditDroppedTotal.Add(1)
}

// ObserveParseDurationMs records a parse duration in milliseconds.
func ObserveParseDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	parseDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "parse_requests_total", "Total parse requests received", parseRequestsTotal.Load())
	writeCounter(&buf, "parse_failed_total", "Total parse requests rejected", parseFailedTotal.Load())
	writeCounter(&buf, "llm_invocations_total", "Total model refinement calls", llmInvocationsTotal.Load())
	writeCounter(&buf, "llm_failures_total", "Total failed model refinement calls", llmFailuresTotal.Load())
	writeCounter(&buf, "audit_dropped_total", "Total audit writes dropped due to backpressure", auditDroppedTotal.Load())
	writeHistogram(&buf, "parse_duration_ms", "Parse duration in milliseconds", parseDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// NowMillis returns current time in milliseconds for duration bookkeeping.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
