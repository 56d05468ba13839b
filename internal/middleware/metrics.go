package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by command name.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "mindscape_redis_errors_total",
	Help: "Total number of Redis command errors",
}, []string{"command"})

// ReactionsApplied counts reaction rows actually inserted or removed,
// labelled by kind. Idempotent no-ops are not counted.
var ReactionsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "mindscape_reactions_applied_total",
	Help: "Total number of reactions added or removed",
}, []string{"kind", "op"})

// FactsPublished counts notification facts published to Redis.
var FactsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "mindscape_facts_published_total",
	Help: "Total number of notification facts published",
}, []string{"fact"})

// InitMetrics creates the Prometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the request-instrumentation handler for the app.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
