package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/aggregating"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/campaign-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-metrics-api/pkg/log"
)

func GetCampaignMetrics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if strings.TrimSpace(id) == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha é obrigatório", nil)
			return
		}

		opts, err := parseDisplayOptions(r.URL.Query())
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": id,
				"error":       err.Error(),
			}).Warn("campaign-metrics: parâmetros de exibição inválidos")

			writeParamError(w, err)
			return
		}

		response, err := service.GetCampaignMetrics(r.Context(), id, opts)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": id,
				"error":       err.Error(),
			}).Error("campaign-metrics: erro ao calcular métricas da campanha")

			writeServiceError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"campaign_id": id,
			"currency":    response.DisplayCurrency,
		}).Info("campaign-metrics: métricas calculadas")

		writeJSON(w, http.StatusOK, response)
	})
}

func ListCampaignMetrics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		query := r.URL.Query()

		opts, err := parseDisplayOptions(query)
		if err != nil {
			writeParamError(w, err)
			return
		}

		filters, err := parseCampaignFilters(query)
		if err != nil {
			writeParamError(w, err)
			return
		}

		response, err := service.ListCampaignMetrics(r.Context(), filters, opts)
		if err != nil {
			logger.WithError(err).Error("campaign-metrics: erro ao listar métricas das campanhas")
			writeServiceError(w, err)
			return
		}

		logger.WithField("campaigns", len(response)).Info("campaign-metrics: lista de métricas calculada")

		writeJSON(w, http.StatusOK, response)
	})
}

func AggregateCampaignMetrics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		query := r.URL.Query()

		metric := strings.TrimSpace(query.Get("metric"))
		if metric == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro metric é obrigatório", nil)
			return
		}

		mode, err := aggregating.ParseMode(query.Get("mode"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		opts, err := parseDisplayOptions(query)
		if err != nil {
			writeParamError(w, err)
			return
		}

		filters, err := parseCampaignFilters(query)
		if err != nil {
			writeParamError(w, err)
			return
		}

		response, err := service.Aggregate(r.Context(), filters, metric, mode, opts)
		if err != nil {
			logger.WithFields(log.Fields{
				"metric": metric,
				"mode":   mode,
				"error":  err.Error(),
			}).Warn("campaign-metrics: erro na agregação")

			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, response)
	})
}

func GetCampaignSummary(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		query := r.URL.Query()

		opts, err := parseDisplayOptions(query)
		if err != nil {
			writeParamError(w, err)
			return
		}

		filters, err := parseCampaignFilters(query)
		if err != nil {
			writeParamError(w, err)
			return
		}

		response, err := service.GetSummary(r.Context(), filters, opts)
		if err != nil {
			logger.WithError(err).Error("campaign-metrics: erro ao montar o resumo")
			writeServiceError(w, err)
			return
		}

		if response.StaleExchangeRate {
			logger.WithField("rate", response.ExchangeRate.Rate).Warn("campaign-metrics: resumo montado com cotação desatualizada")
		}

		writeJSON(w, http.StatusOK, response)
	})
}
