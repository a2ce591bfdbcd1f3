// Package metrics exposes Prometheus counters for the reactive runtime and the
// view passes. A nil *Recorder is valid and records nothing.
package metrics

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

type Recorder struct {
	effectRuns      prometheus.Counter
	memoRecomputes  prometheus.Counter
	flushes         prometheus.Counter
	disposals       prometheus.Counter
	stylePasses     prometheus.Counter
	layoutPasses    prometheus.Counter
	messagesRouted  prometheus.Counter
	messagesDropped prometheus.Counter
	frameSeconds    prometheus.Histogram
}

func New(namespace string) *Recorder {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		})
	}

	return &Recorder{
		effectRuns:      counter("effect_runs_total", "Number of effect executions."),
		memoRecomputes:  counter("memo_recomputes_total", "Number of memo recomputations."),
		flushes:         counter("flushes_total", "Number of scheduler flushes."),
		disposals:       counter("scope_disposals_total", "Number of disposed reactive nodes."),
		stylePasses:     counter("style_passes_total", "Number of window style passes."),
		layoutPasses:    counter("layout_passes_total", "Number of window layout passes."),
		messagesRouted:  counter("update_messages_routed_total", "Update messages moved from the central queue to a window."),
		messagesDropped: counter("update_messages_dropped_total", "Update messages dropped because their view was removed."),
		frameSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "window_update_seconds",
			Help:      "Duration of Window.Update.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14),
		}),
	}
}

func (r *Recorder) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		r.effectRuns,
		r.memoRecomputes,
		r.flushes,
		r.disposals,
		r.stylePasses,
		r.layoutPasses,
		r.messagesRouted,
		r.messagesDropped,
		r.frameSeconds,
	}
}

// Register registers all collectors, stopping at the first failure.
func (r *Recorder) Register(reg prometheus.Registerer) error {
	for _, c := range r.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}

	return nil
}

func (r *Recorder) EffectRun() {
	if r != nil {
		r.effectRuns.Inc()
	}
}

func (r *Recorder) MemoRecompute() {
	if r != nil {
		r.memoRecomputes.Inc()
	}
}

func (r *Recorder) Flush() {
	if r != nil {
		r.flushes.Inc()
	}
}

func (r *Recorder) Disposal() {
	if r != nil {
		r.disposals.Inc()
	}
}

func (r *Recorder) StylePass() {
	if r != nil {
		r.stylePasses.Inc()
	}
}

func (r *Recorder) LayoutPass() {
	if r != nil {
		r.layoutPasses.Inc()
	}
}

func (r *Recorder) MessagesRouted(n int) {
	if r != nil && n > 0 {
		r.messagesRouted.Add(float64(n))
	}
}

func (r *Recorder) MessagesDropped(n int) {
	if r != nil && n > 0 {
		r.messagesDropped.Add(float64(n))
	}
}

func (r *Recorder) ObserveFrame(seconds float64) {
	if r != nil {
		r.frameSeconds.Observe(seconds)
	}
}

var current atomic.Pointer[Recorder]

// Current returns the process-wide recorder, nil when metrics are disabled.
func Current() *Recorder {
	return current.Load()
}

// Use installs r as the process-wide recorder. Passing nil disables metrics.
func Use(r *Recorder) {
	current.Store(r)
}
