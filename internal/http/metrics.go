package http

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fivetwenty-io/teamwork/internal/constants"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	labelEndpoint = "endpoint"
	labelStatus   = "status"
)

// metrics exports the following for every request:
//   - teamwork_client_requests_total{endpoint,status}
//   - teamwork_client_request_duration_seconds{endpoint}
type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(registerer prometheus.Registerer) (*metrics, error) {
	requests, err := register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: constants.MetricsNamespace,
		Subsystem: constants.MetricsSubsystem,
		Name:      "requests_total",
		Help:      "requests sent to the teamwork.tf API by endpoint and status",
	}, []string{labelEndpoint, labelStatus}))
	if err != nil {
		return nil, fmt.Errorf("registering request counter: %w", err)
	}

	duration, err := register(registerer, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: constants.MetricsNamespace,
		Subsystem: constants.MetricsSubsystem,
		Name:      "request_duration_seconds",
		Help:      "time from sending a request until its body was read",
		Buckets:   prometheus.DefBuckets,
	}, []string{labelEndpoint}))
	if err != nil {
		return nil, fmt.Errorf("registering request duration histogram: %w", err)
	}

	return &metrics{requests: requests, duration: duration}, nil
}

// register adds collector to registerer, reusing an identical collector that
// an earlier client already registered.
func register[C prometheus.Collector](registerer prometheus.Registerer, collector C) (C, error) {
	err := registerer.Register(collector)
	if err == nil {
		return collector, nil
	}

	alreadyRegistered := prometheus.AlreadyRegisteredError{}
	if errors.As(err, &alreadyRegistered) {
		if existing, ok := alreadyRegistered.ExistingCollector.(C); ok {
			return existing, nil
		}
	}

	return collector, err
}

func (m *metrics) observe(descriptor, status string, duration time.Duration) {
	if m == nil {
		return
	}

	endpoint := EndpointLabel(descriptor)

	m.requests.WithLabelValues(endpoint, status).Inc()
	m.duration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// EndpointLabel reduces a descriptor to its first path segment so metric
// cardinality does not grow with map or provider names.
func EndpointLabel(descriptor string) string {
	descriptor = strings.TrimPrefix(descriptor, "/")

	end := strings.IndexAny(descriptor, "/?")
	if end >= 0 {
		descriptor = descriptor[:end]
	}

	if descriptor == "" {
		return constants.UnknownEndpoint
	}

	return descriptor
}
