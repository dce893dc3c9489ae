package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "padel_club"

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		},
		[]string{"route", "method", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	bookings = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_total",
			Help:      "Booking attempts by source and outcome.",
		},
		[]string{"source", "outcome"},
	)

	recurrenceConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recurrence_conflicts_total",
			Help:      "Occurrences skipped because the slot was already booked.",
		},
	)

	sweeps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recurrence_sweeps_total",
			Help:      "Recurrence sweeps by result.",
		},
		[]string{"result"},
	)

	availabilityLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "availability_lookups_total",
			Help:      "Availability lookups by source (cache, db, degraded).",
		},
		[]string{"source"},
	)
)

// Booking outcomes and sources.
const (
	SourceManual     = "manual"
	SourceRecurrence = "recurrence"

	OutcomeCreated  = "created"
	OutcomeConflict = "conflict"
	OutcomeFailed   = "failed"
)

// Sweep results.
const (
	SweepOK     = "ok"
	SweepFailed = "failed"
)

// Availability lookup sources.
const (
	LookupCache    = "cache"
	LookupDB       = "db"
	LookupDegraded = "degraded"
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			httpRequests,
			httpDuration,
			bookings,
			recurrenceConflicts,
			sweeps,
			availabilityLookups,
		)
	})
}

func ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func IncBooking(source, outcome string) {
	bookings.WithLabelValues(source, outcome).Inc()
}

func IncRecurrenceConflict() {
	recurrenceConflicts.Inc()
}

func IncSweep(result string) {
	sweeps.WithLabelValues(result).Inc()
}

func IncAvailabilityLookup(source string) {
	availabilityLookups.WithLabelValues(source).Inc()
}
