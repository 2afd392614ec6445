// Package instrumentation expõe as métricas Prometheus do serviço.
package instrumentation

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campaign_metrics_http_requests_total",
		Help: "Total de requisições HTTP",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "campaign_metrics_http_request_duration_seconds",
		Help:    "Duração das requisições HTTP em segundos",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	}, []string{"method", "path"})

	// ExchangeRateRefreshes conta as tentativas de atualização da cotação por resultado
	ExchangeRateRefreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campaign_metrics_exchange_rate_refresh_total",
		Help: "Tentativas de atualização da cotação USD-BRL",
	}, []string{"result"})

	ExchangeRateValue = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "campaign_metrics_exchange_rate_usd_brl",
		Help: "Cotação USD-BRL em uso",
	})

	ExchangeRateFetchedAt = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "campaign_metrics_exchange_rate_fetched_timestamp_seconds",
		Help: "Momento da última cotação obtida com sucesso",
	})

	CampaignCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campaign_metrics_campaign_cache_lookups_total",
		Help: "Consultas ao cache de campanhas por resultado",
	}, []string{"result"})

	CampaignsDerived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campaign_metrics_campaigns_derived_total",
		Help: "Campanhas processadas pelo motor de métricas",
	})
)

// RecordExchangeRate publica a cotação em uso
func RecordExchangeRate(rate float64, fetchedAt time.Time) {
	ExchangeRateValue.Set(rate)
	if !fetchedAt.IsZero() {
		ExchangeRateFetchedAt.Set(float64(fetchedAt.Unix()))
	}
}

func RecordRefresh(success bool) {
	result := ResultFailure
	if success {
		result = ResultSuccess
	}
	ExchangeRateRefreshes.WithLabelValues(result).Inc()
}

func RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CampaignCacheLookups.WithLabelValues(result).Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}

// InstrumentRoute registra contagem e duração das requisições de uma rota.
// O rótulo path usa o padrão da rota para evitar alta cardinalidade.
func InstrumentRoute(path string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.status)).Inc()
			HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
