package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/attribution-sync/internal/domain"
)

const namespace = "attribution_sync"

// Metrics reúne as métricas das execuções de sincronização
type Metrics struct {
	registry *prometheus.Registry

	ClientRuns        *prometheus.CounterVec
	RowsPushed        *prometheus.CounterVec
	ClientRunDuration *prometheus.HistogramVec
	LastSuccess       *prometheus.GaugeVec
}

// New cria as métricas num registry próprio
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		ClientRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "client_runs_total",
				Help:      "Total de processamentos de clientes por modo e status",
			},
			[]string{"mode", "status"},
		),
		RowsPushed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rows_pushed_total",
				Help:      "Total de linhas gravadas nas planilhas por política",
			},
			[]string{"policy"},
		),
		ClientRunDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "client_run_duration_seconds",
				Help:      "Tempo de processamento de um cliente",
				Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
			},
			[]string{"mode"},
		),
		LastSuccess: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_success_timestamp_seconds",
				Help:      "Momento da última execução sem falhas por modo",
			},
			[]string{"mode"},
		),
	}

	registry.MustRegister(
		m.ClientRuns,
		m.RowsPushed,
		m.ClientRunDuration,
		m.LastSuccess,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveClient registra o resultado de um cliente
func (m *Metrics) ObserveClient(result domain.ClientResult) {
	if m == nil {
		return
	}

	status := "success"
	if !result.Success {
		status = "failure"
	}

	m.ClientRuns.WithLabelValues(string(result.Mode), status).Inc()
	m.ClientRunDuration.WithLabelValues(string(result.Mode)).Observe(result.Duration().Seconds())
	if result.Success {
		m.RowsPushed.WithLabelValues(string(result.Policy)).Add(float64(result.RowsPushed))
	}
}

// ObserveRun marca o horário da execução quando nenhum cliente falhou
func (m *Metrics) ObserveRun(report *domain.RunReport, finishedAt time.Time) {
	if m == nil || report == nil {
		return
	}
	if report.Total() > 0 && report.Failures() == 0 {
		m.LastSuccess.WithLabelValues(string(report.Mode)).Set(float64(finishedAt.Unix()))
	}
}

func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// Handler expõe as métricas no formato do Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
