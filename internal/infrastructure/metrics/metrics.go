package metrics

import (
	"net/http"
	"time"

	"github.com/hilthontt/pipeline-demo/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const uptimeMetricName = "process_uptime_seconds"

// Metrics owns a private registry so only the uptime gauge is exported,
// not the default Go and process collectors.
type Metrics struct {
	registry *prometheus.Registry
	uptime   prometheus.GaugeFunc
}

// New reports uptime the same way GET /health does.
func New(startTime time.Time, now domain.Clock) *Metrics {
	registry := prometheus.NewRegistry()

	uptime := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: uptimeMetricName,
		Help: "Seconds since the server was constructed.",
	}, func() float64 {
		return domain.NewHealthSnapshot(startTime, now()).Uptime.Seconds()
	})
	registry.MustRegister(uptime)

	return &Metrics{
		registry: registry,
		uptime:   uptime,
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
