package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/exchanging"
	"github.com/vfg2006/campaign-metrics-api/pkg/log"
)

// GetExchangeRate retorna a cotação USD-BRL em uso e se ela está desatualizada
func GetExchangeRate(provider exchanging.RateProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rate := provider.GetRate()

		response := domain.ExchangeRateResponse{
			ExchangeRate: rate,
			Stale:        provider.IsStale(),
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"rate":   rate.Rate,
			"source": rate.Source,
		}).Debug("exchange-rate: cotação atual")

		writeJSON(w, http.StatusOK, response)
	})
}

// RefreshExchangeRate força a busca de uma nova cotação.
// A falha é consultiva: responde 200 com a cotação anterior e um aviso.
func RefreshExchangeRate(provider exchanging.RateProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		rate, err := provider.Refresh(r.Context())
		refreshed := err == nil

		response := domain.ExchangeRateResponse{
			ExchangeRate: rate,
			Stale:        provider.IsStale(),
			Refreshed:    &refreshed,
		}

		if err != nil {
			logger.WithFields(log.Fields{
				"rate":  rate.Rate,
				"error": err.Error(),
			}).Warn("exchange-rate: falha na atualização, mantendo cotação anterior")

			response.Warning = "Não foi possível atualizar a cotação; usando a última cotação válida"
		} else {
			logger.WithField("rate", rate.Rate).Info("exchange-rate: cotação atualizada manualmente")
		}

		writeJSON(w, http.StatusOK, response)
	})
}
