package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/campaign-metrics-api/pkg/log"
)

// GetMetricDefinitions lista o catálogo de métricas na ordem de avaliação
func GetMetricDefinitions(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		definitions := service.Definitions()

		log.ForContext(r.Context()).WithField("definitions", len(definitions)).Debug("metrics: listando definições")

		writeJSON(w, http.StatusOK, definitions)
	})
}
