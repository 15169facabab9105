// Package metrics provides Prometheus metrics for the TENPIN career engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the TENPIN service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Core career metrics.
	weeksAdvanced     prometheus.Counter
	seasonsCompleted  prometheus.Counter
	gamesPlayed       prometheus.Counter
	eventsGenerated   prometheus.Counter
	eventsResolved    prometheus.Counter
	eventsDismissed   prometheus.Counter
	challengesClaimed prometheus.Counter
	recoveriesApplied prometheus.Counter
	effectsGranted    *prometheus.CounterVec

	// Save registry metrics.
	savesWritten prometheus.Counter
	savesLoaded  prometheus.Counter
	savesDeleted prometheus.Counter

	// Current-career gauges, refreshed by the engine after each mutation.
	activeEffects prometheus.Gauge
	currentSeason prometheus.Gauge
	currentWeek   prometheus.Gauge

	// Error tracking by component.
	errorsByComponent *prometheus.CounterVec

	// HTTP performance metrics.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "tenpin",
		subsystem:        "career",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.weeksAdvanced = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "weeks_advanced_total",
		Help:      "Total number of week advances across all careers",
	})

	m.seasonsCompleted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "seasons_completed_total",
		Help:      "Total number of season rollovers",
	})

	m.gamesPlayed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "games_played_total",
		Help:      "Total number of bowling games simulated",
	})

	m.eventsGenerated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_generated_total",
		Help:      "Total number of weekly events generated",
	})

	m.eventsResolved = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_resolved_total",
		Help:      "Total number of weekly events resolved by a choice",
	})

	m.eventsDismissed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_dismissed_total",
		Help:      "Total number of weekly events dismissed without a choice",
	})

	m.challengesClaimed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "challenges_claimed_total",
		Help:      "Total number of weekly challenge rewards claimed",
	})

	m.recoveriesApplied = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "recoveries_applied_total",
		Help:      "Total number of recovery actions applied to effects",
	})

	m.effectsGranted = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "effects_granted_total",
			Help:      "Total number of effects granted by type",
		},
		[]string{"effect_type"},
	)

	m.savesWritten = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "saves_written_total",
		Help:      "Total number of save-slot writes",
	})

	m.savesLoaded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "saves_loaded_total",
		Help:      "Total number of save-slot loads",
	})

	m.savesDeleted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "saves_deleted_total",
		Help:      "Total number of save-slot deletions",
	})

	m.activeEffects = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "active_effects",
		Help:      "Number of active effects on the loaded career",
	})

	m.currentSeason = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "current_season",
		Help:      "Season counter of the loaded career",
	})

	m.currentWeek = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "current_week",
		Help:      "Week counter of the loaded career",
	})

	m.errorsByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_total",
			Help:      "Total number of errors by component and kind",
		},
		[]string{"component", "kind"},
	)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)
}

// GetRegistry returns the custom registry used for metric exposition.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers recording against the global manager.

// RecordWeekAdvanced increments the week-advance counter.
func RecordWeekAdvanced() {
	if globalManager.enabled {
		globalManager.weeksAdvanced.Inc()
	}
}

// RecordSeasonCompleted increments the season-rollover counter.
func RecordSeasonCompleted() {
	if globalManager.enabled {
		globalManager.seasonsCompleted.Inc()
	}
}

// RecordGamePlayed increments the games-played counter.
func RecordGamePlayed() {
	if globalManager.enabled {
		globalManager.gamesPlayed.Inc()
	}
}

// RecordEventGenerated increments the events-generated counter.
func RecordEventGenerated() {
	if globalManager.enabled {
		globalManager.eventsGenerated.Inc()
	}
}

// RecordEventResolved increments the events-resolved counter.
func RecordEventResolved() {
	if globalManager.enabled {
		globalManager.eventsResolved.Inc()
	}
}

// RecordEventDismissed increments the events-dismissed counter.
func RecordEventDismissed() {
	if globalManager.enabled {
		globalManager.eventsDismissed.Inc()
	}
}

// RecordChallengeClaimed increments the challenges-claimed counter.
func RecordChallengeClaimed() {
	if globalManager.enabled {
		globalManager.challengesClaimed.Inc()
	}
}

// RecordRecoveryApplied increments the recoveries-applied counter.
func RecordRecoveryApplied() {
	if globalManager.enabled {
		globalManager.recoveriesApplied.Inc()
	}
}

// RecordEffectGranted increments the effect counter for the given type.
func RecordEffectGranted(effectType string) {
	if globalManager.enabled {
		globalManager.effectsGranted.WithLabelValues(effectType).Inc()
	}
}

// RecordSaveWritten increments the save-write counter.
func RecordSaveWritten() {
	if globalManager.enabled {
		globalManager.savesWritten.Inc()
	}
}

// RecordSaveLoaded increments the save-load counter.
func RecordSaveLoaded() {
	if globalManager.enabled {
		globalManager.savesLoaded.Inc()
	}
}

// RecordSaveDeleted increments the save-delete counter.
func RecordSaveDeleted() {
	if globalManager.enabled {
		globalManager.savesDeleted.Inc()
	}
}

// SetActiveEffects sets the active-effects gauge.
func SetActiveEffects(n int) {
	if globalManager.enabled {
		globalManager.activeEffects.Set(float64(n))
	}
}

// SetCareerClock sets the season/week gauges.
func SetCareerClock(season, week int) {
	if globalManager.enabled {
		globalManager.currentSeason.Set(float64(season))
		globalManager.currentWeek.Set(float64(week))
	}
}

// RecordError increments the error counter for a component and kind.
func RecordError(component, kind string) {
	if globalManager.enabled {
		globalManager.errorsByComponent.WithLabelValues(component, kind).Inc()
	}
}

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	}
}

// RecordHTTPRequestDuration observes HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
	}
}
