package metrics

import (
	"context"
	"net/http"
	"time"

	"embassy-appointment-scheduler/internal/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StatsSource supplies the appointment counts read on every scrape.
type StatsSource interface {
	Stats(ctx context.Context) (*service.AppointmentStats, error)
}

const scrapeTimeout = 5 * time.Second

var (
	totalDesc = prometheus.NewDesc(
		"appointments_total", "Total number of appointments", nil, nil)
	pendingDesc = prometheus.NewDesc(
		"appointments_pending", "Number of pending appointments", nil, nil)
	confirmedDesc = prometheus.NewDesc(
		"appointments_confirmed", "Number of confirmed appointments", nil, nil)
)

// AppointmentCollector queries the store at scrape time, so the exported
// values always match the table.
type AppointmentCollector struct {
	source   StatsSource
	infoDesc *prometheus.Desc
}

func NewAppointmentCollector(source StatsSource, version, environment string) *AppointmentCollector {
	return &AppointmentCollector{
		source: source,
		infoDesc: prometheus.NewDesc(
			"app_info", "Application information", nil,
			prometheus.Labels{"version": version, "environment": environment}),
	}
}

func (c *AppointmentCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- totalDesc
	ch <- pendingDesc
	ch <- confirmedDesc
	ch <- c.infoDesc
}

func (c *AppointmentCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), scrapeTimeout)
	defer cancel()

	stats, err := c.source.Stats(ctx)
	if err != nil {
		ch <- prometheus.NewInvalidMetric(totalDesc, err)
		return
	}

	ch <- prometheus.MustNewConstMetric(totalDesc, prometheus.CounterValue, float64(stats.Total))
	ch <- prometheus.MustNewConstMetric(pendingDesc, prometheus.GaugeValue, float64(stats.Pending))
	ch <- prometheus.MustNewConstMetric(confirmedDesc, prometheus.GaugeValue, float64(stats.Confirmed))
	ch <- prometheus.MustNewConstMetric(c.infoDesc, prometheus.GaugeValue, 1)
}

// Handler serves the collector from a dedicated registry so only the
// application's own series are exposed.
func Handler(collector *AppointmentCollector) (http.Handler, error) {
	registry := prometheus.NewRegistry()
	if err := registry.Register(collector); err != nil {
		return nil, err
	}
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{}), nil
}
