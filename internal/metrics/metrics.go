package metrics

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/example/distance-logger/internal/distance"
)

// Metrics counts received readings on a private registry so tests and
// multiple instances never collide on the global one.
type Metrics struct {
	reg      *prometheus.Registry
	readings *prometheus.CounterVec
	last     prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		readings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "distance_readings_total",
			Help: "Readings received on GET /, by kind (present, empty, absent).",
		}, []string{"kind"}),
		last: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "distance_last_cm",
			Help: "Last reading that parsed as a number, in centimeters.",
		}),
	}
	m.reg.MustRegister(
		m.readings,
		m.last,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	// expose all kinds from the first scrape
	for _, k := range []string{"present", "empty", "absent"} {
		m.readings.WithLabelValues(k)
	}
	return m
}

// Observe implements distance.Recorder.
func (m *Metrics) Observe(r distance.Reading) {
	m.readings.WithLabelValues(r.Kind()).Inc()
	if cm, ok := r.Centimeters(); ok {
		m.last.Set(cm)
	}
}

// Handler serves the ops listener: /metrics and /healthz.
func (m *Metrics) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context){ c.JSON(200, gin.H{"ok":true}) })
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})))

	return r
}
