package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	globalMetrics *Metrics
	globalMu      sync.RWMutex
)

// Metrics holds all Prometheus metrics of the outreach pipeline
type Metrics struct {
	// Warmup
	SendJobsCreatedTotal prometheus.Counter

	// Dispatch
	EmailsDispatchedTotal        *prometheus.CounterVec
	DispatchSkippedTotal         *prometheus.CounterVec
	DispatchTickDurationSeconds  prometheus.Histogram
	ContentFallbackTotal         prometheus.Counter
	AttachmentCacheRequestsTotal *prometheus.CounterVec

	// Responses
	ResponsesRecordedTotal   prometheus.Counter
	ResponsesClassifiedTotal *prometheus.CounterVec
	ThreadFetchErrorsTotal   prometheus.Counter

	registry *prometheus.Registry
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		SendJobsCreatedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "outreach_send_jobs_created_total",
				Help: "Total number of daily send jobs created by the warmup scheduler",
			},
		),
		EmailsDispatchedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "outreach_emails_dispatched_total",
				Help: "Total number of reserved applications by final status",
			},
			[]string{"status"},
		),
		DispatchSkippedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "outreach_dispatch_skipped_total",
				Help: "Total number of skipped jobs or candidates by reason",
			},
			[]string{"reason"},
		),
		DispatchTickDurationSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "outreach_dispatch_tick_duration_seconds",
				Help:    "Duration of a dispatch tick, pacing delays included",
				Buckets: []float64{1, 10, 60, 300, 900, 1800, 3600, 7200},
			},
		),
		ContentFallbackTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "outreach_content_fallback_total",
				Help: "Total number of applications written with the fallback template",
			},
		),
		AttachmentCacheRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "outreach_attachment_cache_requests_total",
				Help: "Total number of attachment lookups by result",
			},
			[]string{"result"},
		),
		ResponsesRecordedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "outreach_responses_recorded_total",
				Help: "Total number of new replies stored",
			},
		),
		ResponsesClassifiedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "outreach_responses_classified_total",
				Help: "Total number of classified replies by label",
			},
			[]string{"classification"},
		),
		ThreadFetchErrorsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "outreach_thread_fetch_errors_total",
				Help: "Total number of mailbox thread fetches that failed",
			},
		),
		registry: reg,
	}

	reg.MustRegister(
		m.SendJobsCreatedTotal,
		m.EmailsDispatchedTotal,
		m.DispatchSkippedTotal,
		m.DispatchTickDurationSeconds,
		m.ContentFallbackTotal,
		m.AttachmentCacheRequestsTotal,
		m.ResponsesRecordedTotal,
		m.ResponsesClassifiedTotal,
		m.ThreadFetchErrorsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the Prometheus registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// SetGlobal sets the global metrics instance
func SetGlobal(m *Metrics) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalMetrics = m
}

// Global returns the global metrics instance
func Global() *Metrics {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalMetrics
}

// IncSendJobsCreated increments the created send job counter
func IncSendJobsCreated() {
	if m := Global(); m != nil {
		m.SendJobsCreatedTotal.Inc()
	}
}

// IncEmailsDispatched increments the dispatched counter for a final status
func IncEmailsDispatched(status string) {
	if m := Global(); m != nil {
		m.EmailsDispatchedTotal.WithLabelValues(status).Inc()
	}
}

// IncDispatchSkipped increments the skip counter for a reason
func IncDispatchSkipped(reason string) {
	if m := Global(); m != nil {
		m.DispatchSkippedTotal.WithLabelValues(reason).Inc()
	}
}

// ObserveDispatchTick records the duration of one dispatch tick
func ObserveDispatchTick(d time.Duration) {
	if m := Global(); m != nil {
		m.DispatchTickDurationSeconds.Observe(d.Seconds())
	}
}

// IncContentFallback increments the fallback template counter
func IncContentFallback() {
	if m := Global(); m != nil {
		m.ContentFallbackTotal.Inc()
	}
}

// IncAttachmentCache increments the attachment lookup counter ("hit", "miss" or "error")
func IncAttachmentCache(result string) {
	if m := Global(); m != nil {
		m.AttachmentCacheRequestsTotal.WithLabelValues(result).Inc()
	}
}

// IncResponsesRecorded increments the stored reply counter
func IncResponsesRecorded() {
	if m := Global(); m != nil {
		m.ResponsesRecordedTotal.Inc()
	}
}

// IncResponsesClassified increments the classified reply counter for a label
func IncResponsesClassified(classification string) {
	if m := Global(); m != nil {
		m.ResponsesClassifiedTotal.WithLabelValues(classification).Inc()
	}
}

// IncThreadFetchErrors increments the failed thread fetch counter
func IncThreadFetchErrors() {
	if m := Global(); m != nil {
		m.ThreadFetchErrorsTotal.Inc()
	}
}
