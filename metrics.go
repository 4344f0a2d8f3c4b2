package gosnooze

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// recorder defines internal telemetry sink interface
// that delay and handle report their events to.
type recorder interface {
	postpone(Response)
	rearm()
	resolve(overshoot time.Duration)
}

type noprecorder struct{}

func (noprecorder) postpone(Response) {
}

func (noprecorder) rearm() {
}

func (noprecorder) resolve(time.Duration) {
}

// Telemetry defines prometheus backed delay instrumentation
// that counts postpone outcomes and internal timer rearms
// and observes how far past the final target delays resolve.
// A single telemetry instance may be shared by multiple delays.
type Telemetry struct {
	postpones *prometheus.CounterVec
	rearms    prometheus.Counter
	overshoot prometheus.Histogram
}

// NewTelemetry creates prometheus telemetry instance
// with all collectors registered on the provided registerer.
func NewTelemetry(reg prometheus.Registerer) (*Telemetry, error) {
	tel := &Telemetry{
		postpones: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gosnooze",
				Name:      "postpones_total",
				Help:      "Number of postpone requests partitioned by response.",
			},
			[]string{"response"},
		),
		rearms: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "gosnooze",
				Name:      "rearms_total",
				Help:      "Number of internal timer rearms caused by moved targets.",
			},
		),
		overshoot: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "gosnooze",
				Name:      "overshoot_seconds",
				Help:      "Lag between the final target and the actual resolution.",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 10, 6),
			},
		),
	}
	for _, col := range []prometheus.Collector{tel.postpones, tel.rearms, tel.overshoot} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("telemetry registration error has happened %w", err)
		}
	}
	return tel, nil
}

func (tel *Telemetry) postpone(resp Response) {
	tel.postpones.WithLabelValues(resp.String()).Inc()
}

func (tel *Telemetry) rearm() {
	tel.rearms.Inc()
}

func (tel *Telemetry) resolve(overshoot time.Duration) {
	tel.overshoot.Observe(overshoot.Seconds())
}
