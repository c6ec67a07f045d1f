// Package observability exposes frame and interaction metrics for Prometheus
package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pick outcomes used as the result label
const (
	PickHit  = "hit"
	PickMiss = "miss"
)

// Collector bundles the orrery metrics. A nil *Collector is valid and records nothing.
type Collector struct {
	gatherer prometheus.Gatherer

	FrameDuration    prometheus.Histogram
	Frames           prometheus.Counter
	Picks            *prometheus.CounterVec
	FocusTransitions prometheus.Counter
	Bodies           prometheus.Gauge
}

// NewCollector registers the metrics against reg, defaulting to the global registry when nil
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	frameDuration, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "orrery_frame_duration_seconds",
		Help:    "Wall time spent in one frame: motion, trails, camera and render.",
		Buckets: []float64{0.0005, 0.001, 0.002, 0.004, 0.008, 0.016, 0.033, 0.066, 0.1},
	}), "orrery_frame_duration_seconds")
	if err != nil {
		return nil, err
	}

	frames, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orrery_frames_total",
		Help: "Total number of frames rendered.",
	}), "orrery_frames_total")
	if err != nil {
		return nil, err
	}

	picks, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orrery_picks_total",
		Help: "Pointer picks, labeled by result (hit or miss).",
	}, []string{"result"}), "orrery_picks_total")
	if err != nil {
		return nil, err
	}

	focus, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orrery_focus_transitions_total",
		Help: "Camera focus transitions started.",
	}), "orrery_focus_transitions_total")
	if err != nil {
		return nil, err
	}

	bodies, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "orrery_bodies",
		Help: "Number of simulated bodies.",
	}), "orrery_bodies")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:         gatherer,
		FrameDuration:    frameDuration,
		Frames:           frames,
		Picks:            picks,
		FocusTransitions: focus,
		Bodies:           bodies,
	}, nil
}

// ObserveFrame records one frame and its duration
func (c *Collector) ObserveFrame(d time.Duration) {
	if c == nil {
		return
	}
	c.Frames.Inc()
	c.FrameDuration.Observe(d.Seconds())
}

// ObservePick counts a hover or click pick
func (c *Collector) ObservePick(hit bool) {
	if c == nil {
		return
	}
	result := PickMiss
	if hit {
		result = PickHit
	}
	c.Picks.WithLabelValues(result).Inc()
}

// ObserveFocus counts a started camera transition
func (c *Collector) ObserveFocus() {
	if c == nil {
		return
	}
	c.FocusTransitions.Inc()
}

// SetBodies sets the simulated body count
func (c *Collector) SetBodies(n int) {
	if c == nil {
		return
	}
	c.Bodies.Set(float64(n))
}

// Handler exposes a ready-to-use /metrics handler
func (c *Collector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return h, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
