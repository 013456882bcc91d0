package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Pipeline metrics
	VoiceCommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voxdesk_voice_commands_total",
		Help: "Voice actions processed, by intent and outcome",
	}, []string{"intent", "status"})

	ValidationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voxdesk_validation_errors_total",
		Help: "Validation errors produced, by intent and error type",
	}, []string{"intent", "type"})

	VoiceDispatchLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "voxdesk_voice_dispatch_latency_seconds",
		Help:    "End-to-end latency per voice action",
		Buckets: prometheus.DefBuckets,
	})

	// Infrastructure metrics
	IntentConfigLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voxdesk_intent_config_lookups_total",
		Help: "Intent config registry lookups, by source (cache, store) and outcome",
	}, []string{"source", "status"})

	EntitiesCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voxdesk_entities_created_total",
		Help: "Entities created through voice dispatch, by kind and approval state",
	}, []string{"kind", "state"})
)
