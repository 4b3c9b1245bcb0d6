package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by operation type, fed by
// the cache package's client hook.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "fitflow_redis_errors_total",
	Help: "Total number of Redis errors by operation type",
}, []string{"operation"})

// ExternalCallFailures counts failed calls to external collaborators
// (ML service, LLM, SMTP) by collaborator name.
var ExternalCallFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "fitflow_external_call_failures_total",
	Help: "Total number of failed external service calls",
}, []string{"service"})

var (
	promOnce     sync.Once
	promInstance *fiberprometheus.FiberPrometheus
)

// InitMetrics creates the Prometheus HTTP middleware for the given service
// name. Collectors register against the default registry, which rejects
// duplicates, so the instance is created once and shared.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promInstance = fiberprometheus.New(serviceName)
	})
	return promInstance
}

// MetricsMiddleware wraps the fiberprometheus middleware as a fiber.Handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
