package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector groups the console metrics. It satisfies actionlock.Observer.
type Collector struct {
	lockAcquired  *prometheus.CounterVec
	lockRejected  *prometheus.CounterVec
	lockHeld      prometheus.Histogram
	lockBusy      prometheus.Gauge
	actions       *prometheus.CounterVec
	actionLatency *prometheus.HistogramVec
	reloads       *prometheus.CounterVec
	incidents     prometheus.Gauge
}

func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		lockAcquired: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "brims",
			Name:      "action_lock_acquired_total",
			Help:      "Mutating actions admitted by the action lock.",
		}, []string{"scope"}),
		lockRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "brims",
			Name:      "action_lock_rejected_total",
			Help:      "Mutating actions rejected because another one was in flight.",
		}, []string{"scope"}),
		lockHeld: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "brims",
			Name:      "action_lock_held_seconds",
			Help:      "Time the action lock was held per action.",
			Buckets:   prometheus.DefBuckets,
		}),
		lockBusy: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "brims",
			Name:      "action_lock_busy",
			Help:      "1 while a mutating action is in flight.",
		}),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "brims",
			Name:      "actions_total",
			Help:      "Mutating actions by kind and outcome.",
		}, []string{"action", "outcome"}),
		actionLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "brims",
			Name:      "action_duration_seconds",
			Help:      "Duration of admitted mutating actions.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"action"}),
		reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "brims",
			Name:      "store_reloads_total",
			Help:      "Collection store reloads by trigger and result.",
		}, []string{"trigger", "result"}),
		incidents: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "brims",
			Name:      "store_incidents",
			Help:      "Incidents currently held by the collection store.",
		}),
	}
	if reg != nil {
		reg.MustRegister(
			c.lockAcquired, c.lockRejected, c.lockHeld, c.lockBusy,
			c.actions, c.actionLatency, c.reloads, c.incidents,
		)
	}
	return c
}

func subjectScope(subject string) string {
	if subject == "*" {
		return "collection"
	}
	return "record"
}

func (c *Collector) Acquired(subject string) {
	c.lockAcquired.WithLabelValues(subjectScope(subject)).Inc()
	c.lockBusy.Set(1)
}

func (c *Collector) Rejected(subject, _ string) {
	c.lockRejected.WithLabelValues(subjectScope(subject)).Inc()
}

func (c *Collector) Released(_ string, held time.Duration) {
	c.lockHeld.Observe(held.Seconds())
	c.lockBusy.Set(0)
}

func (c *Collector) ObserveAction(action, outcome string, d time.Duration) {
	c.actions.WithLabelValues(action, outcome).Inc()
	if outcome != "rejected" && outcome != "denied" && outcome != "invalid" {
		c.actionLatency.WithLabelValues(action).Observe(d.Seconds())
	}
}

func (c *Collector) ObserveReload(trigger string, err error, size int) {
	result := "ok"
	if err != nil {
		result = "error"
	} else {
		c.incidents.Set(float64(size))
	}
	c.reloads.WithLabelValues(trigger, result).Inc()
}
