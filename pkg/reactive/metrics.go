package reactive

import "github.com/prometheus/client_golang/prometheus"

// Metrics are the scheduler's own counters/gauges: how often the graph
// flushes, how many effects actually ran, and how often CycleLimitExceeded
// tripped. PendingQueueSize is registered alongside them, but the scheduler
// never sets it, so it stays at zero. Every EnableMetrics call creates a
// fresh set and registers it with the Registerer it is given.
type Metrics struct {
	Flushes          prometheus.Counter
	EffectsRun       prometheus.Counter
	CycleLimitTrips  prometheus.Counter
	PendingQueueSize prometheus.Gauge
}

func newMetrics() *Metrics {
	return &Metrics{
		Flushes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fibre",
			Subsystem: "reactive",
			Name:      "flushes_total",
			Help:      "Number of times the scheduler has flushed the pending queue.",
		}),
		EffectsRun: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fibre",
			Subsystem: "reactive",
			Name:      "effects_run_total",
			Help:      "Number of effect recomputations across all flushes.",
		}),
		CycleLimitTrips: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fibre",
			Subsystem: "reactive",
			Name:      "cycle_limit_trips_total",
			Help:      "Number of times a flush aborted with CycleLimitExceeded.",
		}),
		PendingQueueSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "fibre",
			Subsystem: "reactive",
			Name:      "pending_queue_size",
			Help:      "Number of cells currently queued for the next flush.",
		}),
	}
}

// EnableMetrics registers a Metrics set with reg and wires it to o's
// scheduler, returning the set so callers can also mount it on an HTTP
// handler via promhttp. Intended for a root owner; child owners share the
// same scheduler and therefore the same metrics.
func (o *Owner) EnableMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := newMetrics()
	for _, c := range []prometheus.Collector{m.Flushes, m.EffectsRun, m.CycleLimitTrips, m.PendingQueueSize} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	sched := o.scheduler()
	prevEnd := sched.onFlushEnd
	sched.onFlushEnd = func(execCount uint64, effectsRun int) {
		m.Flushes.Inc()
		m.EffectsRun.Add(float64(effectsRun))
		if prevEnd != nil {
			prevEnd(execCount, effectsRun)
		}
	}
	prevTrip := sched.onCycleLimitTrip
	sched.onCycleLimitTrip = func(nodeID uint64) {
		m.CycleLimitTrips.Inc()
		if prevTrip != nil {
			prevTrip(nodeID)
		}
	}
	return m, nil
}
