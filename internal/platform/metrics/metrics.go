package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los collectors del servicio sobre un registry propio
// (no el global, para poder levantar varios routers en tests).
type Metrics struct {
	registry *prometheus.Registry

	RequestDuration *prometheus.HistogramVec
	InFlight        prometheus.Gauge
	PetWrites       *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "busca_pet_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method", "status"},
		),
		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "busca_pet_requests_in_flight",
			Help: "Number of HTTP requests being served",
		}),
		PetWrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "busca_pet_pet_writes_total",
				Help: "Pet aggregate write operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
	}

	reg.MustRegister(
		m.RequestDuration,
		m.InFlight,
		m.PetWrites,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveWrite registra el resultado de una operación de escritura.
// Seguro con receiver nil (servicio sin métricas).
func (m *Metrics) ObserveWrite(operation, outcome string) {
	if m == nil {
		return
	}
	m.PetWrites.WithLabelValues(operation, outcome).Inc()
}
